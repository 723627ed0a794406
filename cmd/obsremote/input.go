package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	obsremote "github.com/MKhiriev/go-obs-remote"
)

var inputCmd = &cobra.Command{
	Use:   "input",
	Short: "List inputs and control mute states",
}

var inputListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all inputs with their kinds",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRemote(cmd, func(ctx context.Context, remote *obsremote.Remote) error {
			inputs, err := remote.Inputs().List(ctx)
			if err != nil {
				return err
			}
			for _, in := range inputs {
				fmt.Printf("%-30s %s\n", in.Name, in.Kind)
			}
			return nil
		})
	},
}

var inputMuteCmd = &cobra.Command{
	Use:   "mute [input]",
	Short: "Mute an input",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRemote(cmd, func(ctx context.Context, remote *obsremote.Remote) error {
			if err := remote.Inputs().Mute(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("muted %q\n", args[0])
			return nil
		})
	},
}

var inputUnmuteCmd = &cobra.Command{
	Use:   "unmute [input]",
	Short: "Unmute an input",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRemote(cmd, func(ctx context.Context, remote *obsremote.Remote) error {
			if err := remote.Inputs().Unmute(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("unmuted %q\n", args[0])
			return nil
		})
	},
}

func init() {
	inputCmd.AddCommand(inputListCmd, inputMuteCmd, inputUnmuteCmd)
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	obsremote "github.com/MKhiriev/go-obs-remote"
)

var sceneCmd = &cobra.Command{
	Use:   "scene",
	Short: "List and switch scenes",
}

var sceneListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all scenes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRemote(cmd, func(ctx context.Context, remote *obsremote.Remote) error {
			scenes, err := remote.Scenes().List(ctx)
			if err != nil {
				return err
			}
			current, err := remote.Scenes().CurrentProgram(ctx)
			if err != nil {
				return err
			}

			for _, s := range scenes {
				marker := "  "
				if s.Name == current {
					marker = "* "
				}
				fmt.Printf("%s%s\n", marker, s.Name)
			}
			return nil
		})
	},
}

var sceneCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Print the current program scene",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRemote(cmd, func(ctx context.Context, remote *obsremote.Remote) error {
			current, err := remote.Scenes().CurrentProgram(ctx)
			if err != nil {
				return err
			}
			fmt.Println(current)
			return nil
		})
	},
}

var sceneSwitchCmd = &cobra.Command{
	Use:   "switch [scene]",
	Short: "Make a scene the program scene",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRemote(cmd, func(ctx context.Context, remote *obsremote.Remote) error {
			if err := remote.Scenes().SwitchTo(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("switched to %q\n", args[0])
			return nil
		})
	},
}

func init() {
	sceneCmd.AddCommand(sceneListCmd, sceneCurrentCmd, sceneSwitchCmd)
}

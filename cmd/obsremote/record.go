package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	obsremote "github.com/MKhiriev/go-obs-remote"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Control the record output",
}

var recordStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start recording",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRemote(cmd, func(ctx context.Context, remote *obsremote.Remote) error {
			if err := remote.Recording().Start(ctx); err != nil {
				return err
			}
			fmt.Println("recording started")
			return nil
		})
	},
}

var recordStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop recording and print the output file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRemote(cmd, func(ctx context.Context, remote *obsremote.Remote) error {
			path, err := remote.Recording().Stop(ctx)
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		})
	},
}

var recordToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle recording and print the new state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRemote(cmd, func(ctx context.Context, remote *obsremote.Remote) error {
			active, err := remote.Recording().Toggle(ctx)
			if err != nil {
				return err
			}
			if active {
				fmt.Println("recording")
			} else {
				fmt.Println("stopped")
			}
			return nil
		})
	},
}

func init() {
	recordCmd.AddCommand(recordStartCmd, recordStopCmd, recordToggleCmd)
}

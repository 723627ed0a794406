package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	obsremote "github.com/MKhiriev/go-obs-remote"
)

var vcamCmd = &cobra.Command{
	Use:   "vcam",
	Short: "Control the virtual camera",
}

var vcamStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the virtual camera",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRemote(cmd, func(ctx context.Context, remote *obsremote.Remote) error {
			if err := remote.VirtualCam().Start(ctx); err != nil {
				return err
			}
			fmt.Println("virtual camera started")
			return nil
		})
	},
}

var vcamStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the virtual camera",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRemote(cmd, func(ctx context.Context, remote *obsremote.Remote) error {
			if err := remote.VirtualCam().Stop(ctx); err != nil {
				return err
			}
			fmt.Println("virtual camera stopped")
			return nil
		})
	},
}

func init() {
	vcamCmd.AddCommand(vcamStartCmd, vcamStopCmd)
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	obsremote "github.com/MKhiriev/go-obs-remote"
)

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Control the stream output",
}

var streamStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start streaming",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRemote(cmd, func(ctx context.Context, remote *obsremote.Remote) error {
			if err := remote.Streaming().Start(ctx); err != nil {
				return err
			}
			fmt.Println("streaming started")
			return nil
		})
	},
}

var streamStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop streaming",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRemote(cmd, func(ctx context.Context, remote *obsremote.Remote) error {
			if err := remote.Streaming().Stop(ctx); err != nil {
				return err
			}
			fmt.Println("streaming stopped")
			return nil
		})
	},
}

func init() {
	streamCmd.AddCommand(streamStartCmd, streamStopCmd)
}

package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	obsremote "github.com/MKhiriev/go-obs-remote"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print a full OBS state summary as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRemote(cmd, func(ctx context.Context, remote *obsremote.Remote) error {
			status, err := remote.Status(ctx)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(status, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal status: %w", err)
			}
			fmt.Println(string(out))
			return nil
		})
	},
}

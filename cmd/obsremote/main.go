// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// obsremote is a command-line front end for the go-obs-remote SDK.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	obsremote "github.com/MKhiriev/go-obs-remote"
	"github.com/MKhiriev/go-obs-remote/config"
	"github.com/MKhiriev/go-obs-remote/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var (
	flagHost     string
	flagPort     int
	flagPassword string
	flagTimeout  time.Duration
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "obsremote",
	Short: "Control OBS Studio over obs-websocket",
	Long: `obsremote drives a running OBS Studio instance over the obs-websocket
v5 protocol: switch scenes, start and stop recording, streaming and the
virtual camera, and inspect inputs.

Connection settings come from OBS_* environment variables or an optional
JSON config file; flags override both.`,
	SilenceUsage: true,
}

func main() {
	printBuildInfo()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func printBuildInfo() {
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", "", "obs-websocket host (default from OBS_HOST)")
	rootCmd.PersistentFlags().IntVar(&flagPort, "port", 0, "obs-websocket port (default from OBS_PORT)")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", "", "obs-websocket password (default from OBS_PASSWORD)")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "request timeout (default from OBS_TIMEOUT)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(statusCmd, sceneCmd, recordCmd, streamCmd, vcamCmd, inputCmd)
}

// loadConfig merges flag overrides on top of the env/JSON/default config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.GetEnv()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("host") {
		cfg.Host = flagHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = flagPort
	}
	if cmd.Flags().Changed("password") {
		cfg.Password = flagPassword
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = flagTimeout
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	return cfg, nil
}

// withRemote connects to OBS, runs fn and disconnects.
func withRemote(cmd *cobra.Command, fn func(ctx context.Context, remote *obsremote.Remote) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logger.New("obsremote")
	logger.SetLevel(cfg.LogLevel)

	remote := obsremote.New(cfg, log)

	ctx := cmd.Context()
	if err := remote.Connect(ctx); err != nil {
		return fmt.Errorf("connect to OBS at %s: %w", cfg.WebSocketURL(), err)
	}
	defer func() {
		if err := remote.Disconnect(); err != nil {
			log.Warn().Err(err).Msg("disconnect")
		}
	}()

	return fn(ctx, remote)
}

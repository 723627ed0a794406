package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-host OBS Studio host name or IP address
//	-port obs-websocket port
//	-password obs-websocket password
//	-timeout request timeout (e.g., "10s", "1m")
//	-max-retries transport retry attempts
//	-c/-config json file path with configs
func ParseFlags() *Config {
	var host string
	var port int
	var password string
	var timeout time.Duration
	var maxRetries int
	var jsonConfigPath string

	flag.StringVar(&host, "host", "", "OBS Studio host")
	flag.IntVar(&port, "port", 0, "obs-websocket port")
	flag.StringVar(&password, "password", "", "obs-websocket password")
	flag.DurationVar(&timeout, "timeout", 0, "Request timeout (e.g., 10s, 1m)")
	flag.IntVar(&maxRetries, "max-retries", 0, "Transport retry attempts")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &Config{
		Host:         host,
		Port:         port,
		Password:     password,
		Timeout:      timeout,
		MaxRetries:   maxRetries,
		JSONFilePath: jsonConfigPath,
	}
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type jsonConfig struct {
	Host               string   `json:"host"`
	Port               int      `json:"port"`
	Password           string   `json:"password"`
	Timeout            Duration `json:"timeout"`
	MaxRetries         int      `json:"max_retries"`
	EventSubscriptions int      `json:"event_subscriptions"`
	LogLevel           string   `json:"log_level"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		Host:               jsonCfg.Host,
		Port:               jsonCfg.Port,
		Password:           jsonCfg.Password,
		Timeout:            time.Duration(jsonCfg.Timeout),
		MaxRetries:         jsonCfg.MaxRetries,
		EventSubscriptions: jsonCfg.EventSubscriptions,
		LogLevel:           jsonCfg.LogLevel,
		JSONFilePath:       "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

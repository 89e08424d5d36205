package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/depeter/couchcontrols/internal/config"
)

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the config file (default: $XDG_CONFIG_HOME/couchcontrols/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

var rootCmd = &cobra.Command{
	Use:           "couchcontrols",
	Short:         "TV-style playback controls for mpv, driven by a remote or keyboard",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFrom(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", configPath, err)
		}
		return cfg, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

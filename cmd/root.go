// Package cmd assembles the command line interface.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tphakala/gonotify/cmd/send"
	"github.com/tphakala/gonotify/cmd/services"
	"github.com/tphakala/gonotify/internal/conf"
	"github.com/tphakala/gonotify/internal/logging"
	"github.com/tphakala/gonotify/internal/notify"
)

// RootCommand creates and returns the root command.
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gonotify",
		Short: "Send notifications to services addressed by URL",
	}

	// Set up the global flags for the root command.
	setupFlags(rootCmd, settings)

	rootCmd.AddCommand(
		send.Command(settings),
		services.Command(),
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logging.Init(settings.Debug)
		return initialize(settings)
	}

	return rootCmd
}

// initialize runs before any subcommand, once flags and config agree.
func initialize(settings *conf.Settings) error {
	notify.SetLogger(logging.ForService("notify"))

	if settings.Log.File == "" {
		return nil
	}
	fileLogger, _, err := logging.NewFileLogger(settings.Log.File, "notify", &logging.FileConfig{
		Rotation:  settings.Log.Rotation,
		MaxSizeMB: settings.Log.MaxSizeMB,
	})
	if err != nil {
		return fmt.Errorf("failed to set up delivery log: %w", err)
	}
	notify.SetLogger(fileLogger)
	return nil
}

// setupFlags defines flags that are global to the command line interface.
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", settings.Debug, "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&settings.AppID, "appid", settings.AppID, "Application identifier sent to notification services")
	rootCmd.PersistentFlags().StringVar(&settings.Asset.Dir, "asset-dir", settings.Asset.Dir, "Directory holding notification icon assets")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		cobra.CheckErr(fmt.Errorf("error binding flags: %w", err))
	}
}

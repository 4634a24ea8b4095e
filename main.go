package main

import (
	"fmt"
	"os"

	"github.com/tphakala/gonotify/cmd"
	"github.com/tphakala/gonotify/internal/conf"
	"github.com/tphakala/gonotify/internal/logging"
)

func main() {
	logging.Init(false)

	settings, err := conf.Load(os.Getenv("GONOTIFY_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading configuration: %v\n", err)
		os.Exit(1)
	}

	rootCmd := cmd.RootCommand(settings)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

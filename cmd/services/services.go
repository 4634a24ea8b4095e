// Package services implements the services subcommand.
package services

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tphakala/gonotify/internal/notify"
)

// Command creates the services subcommand, which lists the registered
// notification providers and the URL schemes they claim.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "List the supported notification services",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, svc := range notify.Services() {
				schemes := make([]string, 0, len(svc.Schemes))
				for _, scheme := range svc.Schemes {
					schemes = append(schemes, scheme+"://")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", svc.Name, strings.Join(schemes, ", "))
			}
			return nil
		},
	}
}

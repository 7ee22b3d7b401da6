// Command dashboard runs the Spearit admin dashboard.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spearit/dashboard/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		errors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "The Spearit admin dashboard",
		Long: `Dashboard serves the Spearit admin pages.

Pages are rendered on the server and kept live over a WebSocket;
the browser runs a small client that forwards events and applies
the HTML it gets back.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "dashboard.yaml", "Path to the configuration file")

	cmd.AddCommand(
		serveCmd(&configPath),
		configCmd(&configPath),
		versionCmd(),
	)
	return cmd
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

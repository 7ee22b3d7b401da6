package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/spearit/dashboard/internal/config"
	"github.com/spearit/dashboard/internal/errors"
)

func configCmd(path *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after the file and DASHBOARD_* environment
overrides have been applied.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*path)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(*path); err == nil && !force {
				return errors.New(errors.CodeInvalidConfig).
					WithDetailf("%s already exists", *path).
					WithSuggestion("Pass --force to overwrite it")
			}
			if err := config.Default().Save(*path); err != nil {
				return err
			}
			success("Wrote %s", *path)
			info("Edit it, then run: dashboard serve --config %s", *path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig(path, addr string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if addr != "" {
		cfg.Server.Addr = addr
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

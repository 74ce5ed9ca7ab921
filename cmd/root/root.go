// Package root implements the command line interface for gitlabctl.
package root

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gitlabctl/gitlabctl/cmd/get"
	"github.com/gitlabctl/gitlabctl/cmd/output"
	"github.com/gitlabctl/gitlabctl/cmd/utils"
	"github.com/gitlabctl/gitlabctl/config"
	"github.com/gitlabctl/gitlabctl/internal/app"
	"github.com/gitlabctl/gitlabctl/logging"
	"github.com/spf13/cobra"
)

// Hint is printed when no subcommand is given
const Hint = "Why don't you try the get command?"

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewCmdRoot().ExecuteContext(ctx); err != nil {
		utils.HandleCommandError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func NewCmdRoot() *cobra.Command {
	var configPath string

	logging.LogLevel.Reset()
	output.NoColor.Reset()

	cmd := &cobra.Command{
		Use:     "gitlabctl",
		Short:   "gitlabctl controls gitlab from the command line",
		Version: app.Version,
		Long: `gitlabctl inspects the projects of a GitLab instance and reports which
commit is deployed to each environment, flagging projects whose environments
have drifted apart.

The server URL and access token are read from
$XDG_CONFIG_HOME/gitlabctl/config.yaml (default ~/.config/gitlabctl/config.yaml).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			output.InitColors(output.NoColor.IsSet())
			logging.InitLogging(logging.LogLevel.String())

			// the bare command only prints a hint and needs no configuration
			if !cmd.HasParent() {
				return nil
			}

			// a client injected for testing wins over the configuration file
			if app.IsInitialized() {
				return nil
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			// CLI flags override config
			output.InitColors(!cfg.ColorEnabled || output.NoColor.IsSet())

			logLevel := cfg.LogLevel
			if logging.LogLevel.IsSet() {
				logLevel = logging.LogLevel.String()
			}
			logging.InitLogging(logLevel)

			if err := app.InitializeWithConfig(cfg); err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.Fprint(cmd.OutOrStdout(), output.Plain, Hint)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration file")
	cmd.PersistentFlags().VarP(logging.LogLevel, "log-level", "l", "Set log verbosity level")
	cmd.PersistentFlags().VarP(output.NoColor, "no-color", "c", "Disable colored terminal output")
	cmd.PersistentFlags().Lookup("no-color").NoOptDefVal = "true"

	cmd.AddCommand(get.NewCmdGet())
	return cmd
}

// Package get implements the get command, which reports deployed commits per environment.
package get

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gitlabctl/gitlabctl/cmd/output"
	"github.com/gitlabctl/gitlabctl/drift"
	"github.com/gitlabctl/gitlabctl/internal/app"
	"github.com/spf13/cobra"
)

func NewCmdGet() *cobra.Command {
	var (
		namespace   string
		strict      bool
		concurrency int
		format      = output.FormatText
	)

	cmd := &cobra.Command{
		Use:   "get <resource>",
		Short: "Get resources from GitLab",
		Long: `Report which commit is deployed to every environment of every project.

For each project the table lists its environments with:
- The latest deployment and who triggered it
- The short SHA of the deployed commit
- How long ago the deployment happened

Projects whose environments all run the same commit are printed in green,
projects whose environments disagree are printed in red. Environments that
were never deployed are left out.`,
		Example: `  gitlabctl get environments
  gitlabctl get environments -n payments
  gitlabctl get environments -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := app.GetPlatformClient()
			if client == nil {
				return fmt.Errorf("GitLab client is not initialized")
			}

			if !cmd.Flags().Changed("concurrency") {
				if cfg := app.GetConfig(); cfg != nil {
					concurrency = cfg.Concurrency
				}
			}

			// every resource currently maps to the environment report
			slog.Debug("Running environment report",
				"layer", "cmd",
				"operation", "get",
				"resource", args[0],
				"namespace", namespace,
				"format", format)

			pipeline := &drift.Pipeline{
				Client:      client,
				Policy:      drift.Policy{StrictListing: strict},
				Concurrency: concurrency,
				Progress:    cmd.ErrOrStderr(),
				Logger:      slog.Default(),
			}

			report, err := pipeline.Run(cmd.Context(), namespace)
			if err != nil {
				return fmt.Errorf("building environment report: %w", err)
			}

			return writeReport(cmd.OutOrStdout(), format, report)
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "Filters the resources to the given namespace/group")
	cmd.Flags().VarP(&format, "output", "o", "Output format")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when projects or environments cannot be listed")
	cmd.Flags().IntVar(&concurrency, "concurrency", drift.DefaultConcurrency, "Maximum number of concurrent GitLab requests per stage")

	return cmd
}

func writeReport(w io.Writer, format output.Format, report *drift.Report) error {
	switch format {
	case output.FormatTable:
		out, err := output.PrintDriftTable(report.Groups)
		if err != nil {
			return fmt.Errorf("failed to format report: %w", err)
		}
		if _, err := io.WriteString(w, out); err != nil {
			return fmt.Errorf("failed to print report: %w", err)
		}
		return nil
	case output.FormatYAML:
		return output.EncodeYAML(w, report.Groups)
	case output.FormatJSON:
		return output.EncodeJSON(w, report.Groups)
	default:
		if err := output.RenderDriftTable(w, report.Groups); err != nil {
			return fmt.Errorf("failed to print report: %w", err)
		}
		return nil
	}
}

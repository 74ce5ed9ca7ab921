package drift

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gitlabctl/gitlabctl/domain"
	"golang.org/x/sync/errgroup"
)

// listEnvironments fetches the environments of every project concurrently.
// The result has one entry per project, in project order.
func (p *Pipeline) listEnvironments(ctx context.Context, logger *slog.Logger, refs []domain.ProjectRef, stats *Stats) ([][]domain.ProjectEnvironment, error) {
	start := time.Now()

	results := make([][]domain.ProjectEnvironment, len(refs))
	outcomes := make([]Outcome, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency())

	for i, ref := range refs {
		g.Go(func() error {
			envs, err := p.Client.ListEnvironments(gctx, ref.ID)
			outcomes[i] = p.Policy.ListingOutcome(gctx, err)
			switch outcomes[i] {
			case OutcomeFailed:
				return fmt.Errorf("listing environments of project %s (%d): %w", ref.Name, ref.ID, err)
			case OutcomeDegraded:
				logger.Warn("Listing environments failed, treating project as having none",
					"layer", "drift",
					"operation", "list_environments",
					"project", ref.Name,
					"project_id", ref.ID,
					"error", err)
				envs = nil
			}

			scoped := make([]domain.ProjectEnvironment, len(envs))
			for j, env := range envs {
				scoped[j] = domain.ProjectEnvironment{
					ProjectName: ref.Name,
					ProjectID:   ref.ID,
					Environment: env,
				}
			}
			results[i] = scoped
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for i := range results {
		total += len(results[i])
		if outcomes[i] == OutcomeDegraded {
			stats.EnvironmentListingsDegraded++
		}
	}
	stats.Environments = total

	p.progress("Retrieved %d environments      [%s]", total, elapsed(start))

	return results, nil
}

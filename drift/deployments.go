package drift

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gitlabctl/gitlabctl/domain"
	"golang.org/x/sync/errgroup"
)

// Resolution is the deployment state derived from an environment detail
type Resolution struct {
	EnvironmentName string
	DeployerLabel   string
	CommitSHA       string
	UpdatedLabel    string
}

// Resolve derives the display labels of an environment's latest deployment.
// now is the reference time for the relative "updated" label.
func Resolve(detail *domain.EnvironmentDetail, now time.Time) Resolution {
	if detail == nil {
		return Resolution{}
	}

	res := Resolution{EnvironmentName: detail.Name}

	d := detail.LastDeployment
	if d == nil {
		return res
	}

	res.DeployerLabel = DeployerLabel(d)
	res.CommitSHA = d.CommitShortSHA
	res.UpdatedLabel = UpdatedLabel(d.CreatedAt, now)
	return res
}

// DeployerLabel renders "<iid> by <username>"
func DeployerLabel(d *domain.Deployment) string {
	if d == nil {
		return ""
	}
	return strconv.Itoa(d.IID) + " by " + d.DeployerUsername
}

// UpdatedLabel renders the time between createdAt and now in human terms,
// e.g. "3 hours ago". Empty or unparsable timestamps yield "".
func UpdatedLabel(createdAt string, now time.Time) string {
	if createdAt == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return ""
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// resolveDetails fetches every environment's detail concurrently (one call per
// environment) and builds the rows. Output order follows project order, then
// environment order within the project, regardless of completion order.
func (p *Pipeline) resolveDetails(ctx context.Context, logger *slog.Logger, envs [][]domain.ProjectEnvironment, now time.Time, stats *Stats) ([]domain.EnvironmentRow, error) {
	start := time.Now()

	var flat []domain.ProjectEnvironment
	for _, perProject := range envs {
		flat = append(flat, perProject...)
	}

	rows := make([]domain.EnvironmentRow, len(flat))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency())

	for i, pe := range flat {
		g.Go(func() error {
			detail, err := p.Client.GetEnvironment(gctx, pe.ProjectID, pe.Environment.ID)
			if p.Policy.DetailOutcome(err) == OutcomeFailed {
				if gctx.Err() != nil {
					// run already aborted, the first error is reported
					return err
				}
				logger.Error("Fetching environment detail failed",
					"layer", "drift",
					"operation", "get_environment",
					"project", pe.ProjectName,
					"environment", pe.Environment.Name,
					"error", err)
				return fmt.Errorf("fetching environment %s of project %s: %w",
					pe.Environment.Name, pe.ProjectName, err)
			}

			rows[i] = BuildRow(pe, Resolve(detail, now))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.Rows = len(rows)
	p.progress("Retrieved environments details [%s]", elapsed(start))

	return rows, nil
}

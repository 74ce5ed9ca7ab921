// Package drift resolves which commit is deployed to each GitLab environment
// and flags projects whose environments disagree.
//
// The pipeline runs in strict stages: projects, then environments of every
// project, then the detail of every environment, then classification. Each
// stage completes entirely before the next begins.
package drift

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gitlabctl/gitlabctl/domain"
	"github.com/google/uuid"
)

// DefaultConcurrency bounds the fan-out width of a stage
const DefaultConcurrency = 8

// PlatformClient is the read-only view of the GitLab API the pipeline needs.
// One client is shared by all concurrent fetches of a run.
type PlatformClient interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListEnvironments(ctx context.Context, projectID int) ([]domain.Environment, error)
	GetEnvironment(ctx context.Context, projectID, environmentID int) (*domain.EnvironmentDetail, error)
}

// Stats counts what each stage produced
type Stats struct {
	Projects                    int
	Environments                int
	Rows                        int
	ProjectListingDegraded      bool
	EnvironmentListingsDegraded int
}

// Report is the classified output of a run
type Report struct {
	RunID  string
	Groups []domain.Classified
	Stats  Stats
}

// Empty reports whether no row survived filtering
func (r *Report) Empty() bool {
	return len(r.Groups) == 0
}

// Pipeline wires the stages together
type Pipeline struct {
	Client      PlatformClient
	Policy      Policy
	Concurrency int
	// Now is sampled once per run; defaults to time.Now
	Now func() time.Time
	// Progress receives the per-stage timing lines; nil discards them
	Progress io.Writer
	Logger   *slog.Logger
}

// Run executes all stages for the given namespace filter.
// A Pipeline holds no run state, so Run may be called concurrently.
func (p *Pipeline) Run(ctx context.Context, namespace string) (*Report, error) {
	if p.Client == nil {
		return nil, fmt.Errorf("pipeline has no platform client")
	}

	runID := uuid.NewString()
	base := p.Logger
	if base == nil {
		base = slog.Default()
	}
	logger := base.With("run_id", runID)

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	runStart := now()

	report := &Report{RunID: runID}

	refs, err := p.listProjects(ctx, logger, namespace, &report.Stats)
	if err != nil {
		return nil, err
	}

	envs, err := p.listEnvironments(ctx, logger, refs, &report.Stats)
	if err != nil {
		return nil, err
	}

	rows, err := p.resolveDetails(ctx, logger, envs, runStart, &report.Stats)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run interrupted: %w", err)
	}

	report.Groups = Classify(rows)

	logger.Info("Drift report ready",
		"layer", "drift",
		"operation", "run",
		"projects", report.Stats.Projects,
		"environments", report.Stats.Environments,
		"groups", len(report.Groups),
		"degraded_project_listing", report.Stats.ProjectListingDegraded,
		"degraded_environment_listings", report.Stats.EnvironmentListingsDegraded)

	return report, nil
}

func (p *Pipeline) concurrency() int {
	if p.Concurrency < 1 {
		return DefaultConcurrency
	}
	return p.Concurrency
}

func (p *Pipeline) progress(format string, a ...any) {
	if p.Progress == nil {
		return
	}
	fmt.Fprintf(p.Progress, format+"\n", a...) // nolint:errcheck
}

func elapsed(start time.Time) time.Duration {
	return time.Since(start).Round(10 * time.Microsecond)
}

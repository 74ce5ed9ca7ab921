package drift

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gitlabctl/gitlabctl/domain"
)

// FilterByNamespace keeps projects whose namespace equals namespace ignoring case.
// An empty namespace keeps everything.
func FilterByNamespace(projects []domain.Project, namespace string) []domain.ProjectRef {
	refs := make([]domain.ProjectRef, 0, len(projects))
	for _, p := range projects {
		if namespace == "" || strings.EqualFold(p.Namespace, namespace) {
			refs = append(refs, p.Ref())
		}
	}
	return refs
}

func (p *Pipeline) listProjects(ctx context.Context, logger *slog.Logger, namespace string, stats *Stats) ([]domain.ProjectRef, error) {
	start := time.Now()

	projects, err := p.Client.ListProjects(ctx)
	switch p.Policy.ListingOutcome(ctx, err) {
	case OutcomeFailed:
		return nil, fmt.Errorf("listing projects: %w", err)
	case OutcomeDegraded:
		logger.Warn("Listing projects failed, continuing without projects",
			"layer", "drift",
			"operation", "list_projects",
			"error", err)
		stats.ProjectListingDegraded = true
		projects = nil
	}

	refs := FilterByNamespace(projects, namespace)
	stats.Projects = len(refs)

	p.progress("Retrieved %d projects          [%s]", len(refs), elapsed(start))
	logger.Debug("Projects listed",
		"layer", "drift",
		"operation", "list_projects",
		"namespace", namespace,
		"total", len(projects),
		"selected", len(refs))

	return refs, nil
}

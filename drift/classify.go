package drift

import "github.com/gitlabctl/gitlabctl/domain"

// FilterCommitted drops rows without a commit; they carry no comparable state
func FilterCommitted(rows []domain.EnvironmentRow) []domain.EnvironmentRow {
	kept := make([]domain.EnvironmentRow, 0, len(rows))
	for _, r := range rows {
		if r.HasCommit() {
			kept = append(kept, r)
		}
	}
	return kept
}

// GroupContiguous groups maximal runs of adjacent rows sharing a project name.
// A project whose rows are not adjacent yields more than one group.
func GroupContiguous(rows []domain.EnvironmentRow) []domain.ProjectGroup {
	var groups []domain.ProjectGroup
	for _, r := range rows {
		if n := len(groups); n > 0 && groups[n-1].ProjectName == r.ProjectName {
			groups[n-1].Rows = append(groups[n-1].Rows, r)
			continue
		}
		groups = append(groups, domain.ProjectGroup{
			ProjectName: r.ProjectName,
			Rows:        []domain.EnvironmentRow{r},
		})
	}
	return groups
}

// IsConsistent reports whether every row of the group has the same commit
func IsConsistent(group domain.ProjectGroup) bool {
	commits := make(map[string]struct{}, len(group.Rows))
	for _, r := range group.Rows {
		commits[r.CommitSHA] = struct{}{}
	}
	return len(commits) <= 1
}

// Classify filters, groups and labels rows as consistent or drifted
func Classify(rows []domain.EnvironmentRow) []domain.Classified {
	groups := GroupContiguous(FilterCommitted(rows))

	classified := make([]domain.Classified, len(groups))
	for i, g := range groups {
		classified[i] = domain.Classified{
			Group:      g,
			Consistent: IsConsistent(g),
		}
	}
	return classified
}

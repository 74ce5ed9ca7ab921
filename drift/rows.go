package drift

import "github.com/gitlabctl/gitlabctl/domain"

// BuildRow combines a project-scoped environment with its resolved deployment
func BuildRow(pe domain.ProjectEnvironment, res Resolution) domain.EnvironmentRow {
	name := res.EnvironmentName
	if name == "" {
		name = pe.Environment.Name
	}

	return domain.EnvironmentRow{
		ProjectName:     pe.ProjectName,
		EnvironmentName: name,
		DeploymentLabel: res.DeployerLabel,
		CommitSHA:       res.CommitSHA,
		UpdatedLabel:    res.UpdatedLabel,
	}
}

package gitlab

import (
	"time"

	gl "gitlab.com/gitlab-org/api/client-go"

	"github.com/gitlabctl/gitlabctl/domain"
)

// Conversions from API client types. Nullable objects are pointers there.

func toProject(p *gl.Project) domain.Project {
	project := domain.Project{ID: p.ID, Name: p.Name}
	if p.Namespace != nil {
		project.Namespace = p.Namespace.Name
	}
	return project
}

func toEnvironment(e *gl.Environment) domain.Environment {
	return domain.Environment{ID: e.ID, Name: e.Name}
}

func toDetail(e *gl.Environment) *domain.EnvironmentDetail {
	detail := &domain.EnvironmentDetail{Environment: toEnvironment(e)}

	d := e.LastDeployment
	if d == nil {
		return detail
	}

	deployment := &domain.Deployment{IID: d.IID}
	if d.CreatedAt != nil {
		deployment.CreatedAt = d.CreatedAt.Format(time.RFC3339)
	}
	if d.User != nil {
		deployment.DeployerUsername = d.User.Username
	}
	if d.Deployable.Commit != nil {
		deployment.CommitShortSHA = d.Deployable.Commit.ShortID
	}
	detail.LastDeployment = deployment
	return detail
}

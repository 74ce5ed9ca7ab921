// Package domain provides the core types shared by the gitlabctl pipeline.
package domain

// Project is a GitLab project as returned by the projects listing.
type Project struct {
	ID        int
	Name      string
	Namespace string
}

// ProjectRef identifies a selected project for the environment stage.
type ProjectRef struct {
	Name string
	ID   int
}

// Ref returns the name/id pair used by later pipeline stages.
func (p Project) Ref() ProjectRef {
	return ProjectRef{Name: p.Name, ID: p.ID}
}

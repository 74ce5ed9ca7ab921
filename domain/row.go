package domain

// EnvironmentRow is one line of the drift report.
type EnvironmentRow struct {
	ProjectName     string `json:"-" yaml:"-"`
	EnvironmentName string `json:"environment" yaml:"environment"`
	DeploymentLabel string `json:"deployment" yaml:"deployment"`
	CommitSHA       string `json:"commit" yaml:"commit"`
	UpdatedLabel    string `json:"updated" yaml:"updated"`
}

// HasCommit reports whether the row carries a comparable deployment state.
func (r EnvironmentRow) HasCommit() bool {
	return r.CommitSHA != ""
}

// ProjectGroup is a contiguous run of rows sharing the same project name.
type ProjectGroup struct {
	ProjectName string
	Rows        []EnvironmentRow
}

// Classified is a project group together with its drift verdict.
type Classified struct {
	Group      ProjectGroup
	Consistent bool
}

// Drifted is the inverse of Consistent.
func (c Classified) Drifted() bool {
	return !c.Consistent
}

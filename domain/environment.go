package domain

// Environment is a named deployment target within a project.
type Environment struct {
	ID   int
	Name string
}

// ProjectEnvironment scopes an environment to the project it was listed for.
type ProjectEnvironment struct {
	ProjectName string
	ProjectID   int
	Environment Environment
}

// EnvironmentDetail is the full environment as returned by the single-environment endpoint.
// LastDeployment is nil when the environment was never deployed.
type EnvironmentDetail struct {
	Environment
	LastDeployment *Deployment
}

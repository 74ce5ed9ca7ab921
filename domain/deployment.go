package domain

// Deployment is the latest deployment recorded for an environment.
// CommitShortSHA is empty when the deployable carries no commit.
// CreatedAt is kept as the raw API string; it is parsed when rows are built.
type Deployment struct {
	IID              int
	DeployerUsername string
	CommitShortSHA   string
	CreatedAt        string
}

package root

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gitlabctl/gitlabctl/domain"
	"github.com/gitlabctl/gitlabctl/internal/app"
	"github.com/gitlabctl/gitlabctl/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(app.Reset)

	cmd := NewCmdRoot()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestRoot_NoSubcommandPrintsHint(t *testing.T) {
	app.Reset()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, Hint+"\n", out)
}

func TestRoot_MissingConfigIsFatal(t *testing.T) {
	app.Reset()
	dir := t.TempDir()

	_, err := execute(t, "get", "environments", "--config", filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestRoot_MalformedConfigIsFatal(t *testing.T) {
	app.Reset()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [\n"), 0o600))

	_, err := execute(t, "get", "environments", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing configuration file")
}

func TestRoot_GetWithInjectedClient(t *testing.T) {
	app.SetPlatformClientForTesting(&mocks.MockPlatformClient{
		ListProjectsFunc: func(ctx context.Context) ([]domain.Project, error) {
			return []domain.Project{{ID: 1, Name: "A"}}, nil
		},
		ListEnvironmentsFunc: func(ctx context.Context, projectID int) ([]domain.Environment, error) {
			return []domain.Environment{{ID: 11, Name: "prod"}}, nil
		},
		GetEnvironmentFunc: func(ctx context.Context, projectID, environmentID int) (*domain.EnvironmentDetail, error) {
			return &domain.EnvironmentDetail{
				Environment:    domain.Environment{ID: 11, Name: "prod"},
				LastDeployment: &domain.Deployment{IID: 5, DeployerUsername: "bob", CommitShortSHA: "abc123"},
			}, nil
		},
	})

	out, err := execute(t, "get", "environments", "--no-color", "--log-level", "silent")
	require.NoError(t, err)
	assert.Contains(t, out, "5 by bob")
	assert.NotContains(t, out, "\x1b[")
}

func TestRoot_VersionFlag(t *testing.T) {
	app.Reset()

	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "gitlabctl version "+app.Version+"\n", out)
}

func TestRoot_InterruptedRunFails(t *testing.T) {
	t.Cleanup(app.Reset)
	app.SetPlatformClientForTesting(&mocks.MockPlatformClient{
		ListProjectsFunc: func(ctx context.Context) ([]domain.Project, error) {
			return nil, ctx.Err()
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := NewCmdRoot()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"get", "environments"})

	err := cmd.ExecuteContext(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, buf.String(), "There is nothing to show")
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	app.Reset()

	_, err := execute(t, "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value 'loud'")
}

func TestNewCmdRoot(t *testing.T) {
	cmd := NewCmdRoot()

	assert.Equal(t, "gitlabctl", cmd.Use)
	names := []string{}
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "get")
	assert.NotNil(t, cmd.PersistentFlags().ShorthandLookup("c"))
	assert.NotNil(t, cmd.PersistentFlags().ShorthandLookup("l"))
}

// Package app holds the application context shared by CLI commands: the loaded
// configuration and the GitLab client used for the run.
package app

import (
	"fmt"

	"github.com/gitlabctl/gitlabctl/config"
	"github.com/gitlabctl/gitlabctl/drift"
	"github.com/gitlabctl/gitlabctl/gitlab"
)

var (
	// Version is set at build time via -ldflags
	Version = "dev"

	appConfig      *config.Config
	platformClient drift.PlatformClient
)

// InitializeWithConfig creates the GitLab client from a loaded config
func InitializeWithConfig(cfg *config.Config) error {
	client, err := gitlab.NewClient(gitlab.ClientConfig{
		BaseURL:           cfg.Server,
		Token:             cfg.AccessToken,
		Timeout:           cfg.Timeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
	})
	if err != nil {
		return fmt.Errorf("creating GitLab client: %w", err)
	}

	appConfig = cfg
	platformClient = client
	return nil
}

// IsInitialized reports whether a client is available, real or injected
func IsInitialized() bool {
	return platformClient != nil
}

func GetConfig() *config.Config {
	return appConfig
}

func GetPlatformClient() drift.PlatformClient {
	return platformClient
}

// SetPlatformClientForTesting replaces the client used by commands
func SetPlatformClientForTesting(client drift.PlatformClient) {
	platformClient = client
}

// SetConfigForTesting replaces the loaded configuration
func SetConfigForTesting(cfg *config.Config) {
	appConfig = cfg
}

// Reset drops the application context
func Reset() {
	appConfig = nil
	platformClient = nil
}

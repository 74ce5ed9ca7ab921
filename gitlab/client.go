// Package gitlab adapts the GitLab v4 API client to the read-only view gitlabctl needs.
package gitlab

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gl "gitlab.com/gitlab-org/api/client-go"
	"golang.org/x/time/rate"

	"github.com/gitlabctl/gitlabctl/domain"
)

// DefaultPageSize is the largest page GitLab serves
const DefaultPageSize = 100

// ClientConfig holds the connection settings for a Client
type ClientConfig struct {
	BaseURL           string
	Token             string
	Timeout           time.Duration
	RequestsPerSecond float64
}

// Client talks to a single GitLab instance. It holds no per-request state
// and is safe for concurrent use by the pipeline's fan-out stages.
type Client struct {
	api      *gl.Client
	limiter  *rate.Limiter
	pageSize int
}

// NewClient creates a client that authenticates with a bearer access token
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("access token is required")
	}
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout})
}

// NewClientWithHTTP creates a client sending its requests through httpClient
func NewClientWithHTTP(cfg ClientConfig, httpClient *http.Client) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing server URL %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("server URL %q must be absolute", cfg.BaseURL)
	}

	// an explicit limiter also stops the API client from probing the server for its limits
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), max(1, int(cfg.RequestsPerSecond)))
	}

	api, err := gl.NewOAuthClient(cfg.Token,
		gl.WithBaseURL(base.String()),
		gl.WithHTTPClient(httpClient),
		gl.WithCustomLimiter(limiter),
		gl.WithCustomRetryMax(0),
	)
	if err != nil {
		return nil, fmt.Errorf("creating GitLab API client: %w", err)
	}

	return &Client{
		api:      api,
		limiter:  limiter,
		pageSize: DefaultPageSize,
	}, nil
}

// ListProjects returns every project visible to the token.
// The v4 API cannot filter by namespace name, so callers filter locally.
func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	opt := &gl.ListProjectsOptions{ListOptions: c.firstPage()}

	glProjects, err := paginate(ctx, "list_projects", &opt.ListOptions, func() ([]*gl.Project, *gl.Response, error) {
		return c.api.Projects.ListProjects(opt, gl.WithContext(ctx))
	})
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	projects := make([]domain.Project, len(glProjects))
	for i, p := range glProjects {
		projects[i] = toProject(p)
	}
	return projects, nil
}

// ListEnvironments returns the environments of a project. The list endpoint
// does not embed deployments; use GetEnvironment for those.
func (c *Client) ListEnvironments(ctx context.Context, projectID int) ([]domain.Environment, error) {
	opt := &gl.ListEnvironmentsOptions{ListOptions: c.firstPage()}

	glEnvs, err := paginate(ctx, "list_environments", &opt.ListOptions, func() ([]*gl.Environment, *gl.Response, error) {
		return c.api.Environments.ListEnvironments(projectID, opt, gl.WithContext(ctx))
	})
	if err != nil {
		return nil, fmt.Errorf("listing environments of project %d: %w", projectID, err)
	}

	envs := make([]domain.Environment, len(glEnvs))
	for i, e := range glEnvs {
		envs[i] = toEnvironment(e)
	}
	return envs, nil
}

// GetEnvironment returns a single environment including its last deployment
func (c *Client) GetEnvironment(ctx context.Context, projectID, environmentID int) (*domain.EnvironmentDetail, error) {
	start := time.Now()
	glEnv, resp, err := c.api.Environments.GetEnvironment(projectID, environmentID, gl.WithContext(ctx))
	logResponse("get_environment", resp, start)
	if err != nil {
		return nil, fmt.Errorf("getting environment %d of project %d: %w", environmentID, projectID, toAPIError(resp, err))
	}

	return toDetail(glEnv), nil
}

func (c *Client) firstPage() gl.ListOptions {
	return gl.ListOptions{PerPage: c.pageSize, Page: 1}
}

// paginate calls fetch until GitLab reports no further page. fetch reads the
// page to request from opts, which paginate advances between calls.
func paginate[T any](ctx context.Context, operation string, opts *gl.ListOptions, fetch func() ([]T, *gl.Response, error)) ([]T, error) {
	var all []T
	for {
		start := time.Now()
		batch, resp, err := fetch()
		logResponse(operation, resp, start)
		if err != nil {
			return nil, toAPIError(resp, err)
		}
		all = append(all, batch...)

		if resp == nil || resp.NextPage == 0 {
			return all, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		opts.Page = resp.NextPage
	}
}

func logResponse(operation string, resp *gl.Response, start time.Time) {
	status := 0
	if resp != nil && resp.Response != nil {
		status = resp.StatusCode
	}
	slog.Debug("GitLab request completed",
		"layer", "gitlab",
		"operation", operation,
		"status", status,
		"duration", time.Since(start))
}

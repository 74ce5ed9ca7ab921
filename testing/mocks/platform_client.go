package mocks

import (
	"context"

	"github.com/gitlabctl/gitlabctl/domain"
)

// MockPlatformClient implements drift.PlatformClient for testing.
// Function fields must be safe for concurrent calls.
type MockPlatformClient struct {
	ListProjectsFunc     func(ctx context.Context) ([]domain.Project, error)
	ListEnvironmentsFunc func(ctx context.Context, projectID int) ([]domain.Environment, error)
	GetEnvironmentFunc   func(ctx context.Context, projectID, environmentID int) (*domain.EnvironmentDetail, error)
}

func (m *MockPlatformClient) ListProjects(ctx context.Context) ([]domain.Project, error) {
	if m.ListProjectsFunc != nil {
		return m.ListProjectsFunc(ctx)
	}
	return []domain.Project{}, nil
}

func (m *MockPlatformClient) ListEnvironments(ctx context.Context, projectID int) ([]domain.Environment, error) {
	if m.ListEnvironmentsFunc != nil {
		return m.ListEnvironmentsFunc(ctx, projectID)
	}
	return []domain.Environment{}, nil
}

func (m *MockPlatformClient) GetEnvironment(ctx context.Context, projectID, environmentID int) (*domain.EnvironmentDetail, error) {
	if m.GetEnvironmentFunc != nil {
		return m.GetEnvironmentFunc(ctx, projectID, environmentID)
	}
	return &domain.EnvironmentDetail{Environment: domain.Environment{ID: environmentID}}, nil
}

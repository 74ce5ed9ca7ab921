package drift

import (
	"testing"

	"github.com/gitlabctl/gitlabctl/domain"
	"github.com/stretchr/testify/assert"
)

func TestFilterByNamespace(t *testing.T) {
	projects := []domain.Project{
		{ID: 1, Name: "api", Namespace: "Payments"},
		{ID: 2, Name: "worker", Namespace: "payments"},
		{ID: 3, Name: "old-api", Namespace: "payments-legacy"},
		{ID: 4, Name: "web", Namespace: "frontend"},
	}

	tests := []struct {
		name      string
		namespace string
		want      []domain.ProjectRef
	}{
		{
			name:      "case insensitive exact match",
			namespace: "payments",
			want: []domain.ProjectRef{
				{Name: "api", ID: 1},
				{Name: "worker", ID: 2},
			},
		},
		{
			name:      "upper case filter",
			namespace: "PAYMENTS",
			want: []domain.ProjectRef{
				{Name: "api", ID: 1},
				{Name: "worker", ID: 2},
			},
		},
		{
			name:      "empty filter keeps everything",
			namespace: "",
			want: []domain.ProjectRef{
				{Name: "api", ID: 1},
				{Name: "worker", ID: 2},
				{Name: "old-api", ID: 3},
				{Name: "web", ID: 4},
			},
		},
		{
			name:      "no substring match",
			namespace: "pay",
			want:      []domain.ProjectRef{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterByNamespace(projects, tt.namespace))
		})
	}
}

package gitlab

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	gl "gitlab.com/gitlab-org/api/client-go"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is returned for any non-2xx response
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: API returned status %d", e.Method, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: API returned status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// Is lets callers match status classes with errors.Is
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	}
	return false
}

// toAPIError maps an API client failure onto APIError when GitLab answered
// with an error status. A 2xx answer that still failed could not be decoded.
// Transport and context errors pass through unchanged.
func toAPIError(resp *gl.Response, err error) error {
	if resp == nil || resp.Response == nil {
		return err
	}

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return fmt.Errorf("decoding response: %w", err)
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	if req := resp.Request; req != nil {
		apiErr.Method = req.Method
		if req.URL != nil {
			apiErr.URL = req.URL.Path
		}
	}

	var errResp *gl.ErrorResponse
	if errors.As(err, &errResp) {
		apiErr.Body = strings.TrimSpace(string(errResp.Body))
	}
	return apiErr
}

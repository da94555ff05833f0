package mocks

import (
	"context"
	"strings"

	"github.com/ai-blog-api/internal/completion"
)

// MockCompleter is a stub completion client. It records every request and
// returns Response (or queued Responses in order). FailWhenContains makes
// calls whose prompt contains the substring fail with FailErr, which is how
// tests simulate a single platform's upstream call failing.
type MockCompleter struct {
	Response         string
	Responses        []string
	Err              error
	FailWhenContains string
	FailErr          error

	Calls []completion.Request
}

func (m *MockCompleter) Complete(ctx context.Context, req completion.Request) (string, error) {
	m.Calls = append(m.Calls, req)

	if m.Err != nil {
		return "", m.Err
	}
	if m.FailWhenContains != "" && strings.Contains(req.Prompt, m.FailWhenContains) {
		err := m.FailErr
		if err == nil {
			err = &completion.UpstreamError{StatusCode: 500, Status: "500 Internal Server Error"}
		}
		return "", err
	}

	if len(m.Responses) > 0 {
		resp := m.Responses[0]
		m.Responses = m.Responses[1:]
		return resp, nil
	}
	return m.Response, nil
}

// CallCount returns the number of completion calls issued
func (m *MockCompleter) CallCount() int {
	return len(m.Calls)
}

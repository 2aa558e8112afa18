package interview

import (
	"context"
	"errors"

	"github.com/hireloop/interviewd/internal/providers/llm"
)

// fakeProvider scripts model responses and records every request it served.
type fakeProvider struct {
	response string
	err      error
	calls    int
	requests []llm.Request
}

func (f *fakeProvider) Complete(_ context.Context, req llm.Request) (string, error) {
	f.calls++
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeProvider) Close() error { return nil }

var errProviderDown = errors.New("model backend unavailable")

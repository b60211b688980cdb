// Package testutil provides an in-memory harness for running the full
// generation pipeline in tests without touching the file system.
package testutil

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oplcutils/gluegen/internal/app"
)

// Generate runs the pipeline over src with default settings and returns
// the generated source, failing the test on any pipeline error.
func Generate(t *testing.T, src string) string {
	t.Helper()
	out, err := TryGenerate(t, src, app.Config{})
	require.NoError(t, err)
	return out
}

// TryGenerate runs the pipeline over src with the given configuration
// overrides and returns the generated source together with any pipeline
// error. Diagnostics are forwarded to the test log.
func TryGenerate(t *testing.T, src string, cfg app.Config) (string, error) {
	t.Helper()
	if cfg.LogLevel == "" {
		cfg.LogLevel = "error"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	validated, err := app.NewConfig(cfg)
	require.NoError(t, err)

	var logs bytes.Buffer
	a, err := app.New(&logs, validated)
	require.NoError(t, err)

	var out bytes.Buffer
	genErr := a.Generate(context.Background(), strings.NewReader(src), &out)
	if logs.Len() > 0 {
		t.Log(logs.String())
	}
	return out.String(), genErr
}

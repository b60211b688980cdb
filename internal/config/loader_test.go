package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "gluegen.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := writeSettings(t, `
generator {
  input             = "vars.h"
  buffer_size       = defaults.buffer_size * 2
  on_slot_collision = "error"
}
`)

	model, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "vars.h", model.InputPath)
	assert.Equal(t, DefaultOutputPath, model.OutputPath)
	assert.Equal(t, 2048, model.BufferSize)
	assert.Equal(t, PolicyError, model.OnSlotCollision)
	assert.Equal(t, PolicyWarn, model.OnMinorOverflow)
}

func TestLoad_DirectoryResolvesSettingsFile(t *testing.T) {
	path := writeSettings(t, `
generator {
  output = "out.cpp"
}
`)

	model, err := Load(context.Background(), filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, "out.cpp", model.OutputPath)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		contents string
		errPart  string
	}{
		{
			name:     "invalid syntax",
			contents: `generator {`,
			errPart:  "failed to parse",
		},
		{
			name:     "missing generator block",
			contents: `other {}`,
			errPart:  "no generator block",
		},
		{
			name: "invalid policy",
			contents: `
generator {
  on_minor_overflow = "ignore"
}
`,
			errPart: "on_minor_overflow",
		},
		{
			name: "non-positive buffer size",
			contents: `
generator {
  buffer_size = 0
}
`,
			errPart: "buffer_size must be positive",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSettings(t, tc.contents)
			_, err := Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errPart)
		})
	}
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
}

func TestDefault_MatchesOriginalGenerator(t *testing.T) {
	model := Default()
	assert.Equal(t, "LOCATED_VARIABLES.h", model.InputPath)
	assert.Equal(t, "glueVars.cpp", model.OutputPath)
	assert.Equal(t, 1024, model.BufferSize)
	require.NoError(t, model.Validate())
}

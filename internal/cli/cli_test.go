package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/featstore/internal/app"
)

func TestParse_ApplyWithDefaults(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg, done, err := Parse([]string{"apply"}, &out)

	require.NoError(t, err)
	require.False(t, done)
	assert.Equal(t, app.CommandApply, cfg.Command)
	assert.Equal(t, ".", cfg.RepoPath)
	assert.False(t, cfg.SkipSourceValidation)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_AllFlagsAndRepoPath(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg, done, err := Parse([]string{
		"-skip-source-validation",
		"-log-format", "JSON",
		"-log-level", "DEBUG",
		"teardown",
		"/srv/repo",
	}, &out)

	require.NoError(t, err)
	require.False(t, done)
	assert.Equal(t, app.CommandTeardown, cfg.Command)
	assert.Equal(t, "/srv/repo", cfg.RepoPath)
	assert.True(t, cfg.SkipSourceValidation)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_NoArgumentsPrintsUsageAndExitsClean(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg, done, err := Parse(nil, &out)

	require.NoError(t, err)
	assert.True(t, done)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "registry-dump")
}

func TestParse_HelpFlagExitsClean(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg, done, err := Parse([]string{"-h"}, &out)

	require.NoError(t, err)
	assert.True(t, done)
	assert.Nil(t, cfg)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{
			name:    "unknown command",
			args:    []string{"deploy"},
			message: `unknown command "deploy"`,
		},
		{
			name:    "unknown flag",
			args:    []string{"-frobnicate", "apply"},
			message: "flag provided but not defined",
		},
		{
			name:    "invalid log format",
			args:    []string{"-log-format", "xml", "apply"},
			message: "invalid log-format",
		},
		{
			name:    "invalid log level",
			args:    []string{"-log-level", "trace", "apply"},
			message: "invalid log-level",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			cfg, done, err := Parse(tc.args, &out)

			assert.Nil(t, cfg)
			assert.False(t, done)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.message)
		})
	}
}

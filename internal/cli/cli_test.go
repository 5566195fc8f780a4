package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/rainflow/internal/app"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want *app.Config
	}{
		{
			name: "steps only",
			args: []string{"3"},
			want: &app.Config{Steps: 3, Overrides: map[string]string{}, LogFormat: "text", LogLevel: "warn"},
		},
		{
			name: "zero steps",
			args: []string{"0"},
			want: &app.Config{Steps: 0, Overrides: map[string]string{}, LogFormat: "text", LogLevel: "warn"},
		},
		{
			name: "files and logging",
			args: []string{"-config", "rain.hcl", "-input", "heights.txt", "-log-level", "DEBUG", "-log-format", "json", "5"},
			want: &app.Config{
				Steps: 5, ConfigPath: "rain.hcl", InputPath: "heights.txt",
				Overrides: map[string]string{}, LogFormat: "json", LogLevel: "debug",
			},
		},
		{
			name: "setting flags become overrides",
			args: []string{"-precision", "0.5", "-order", "input", "-backend", "decimal", "-max-passes", "10", "-monitor", "-rain", "index", "2"},
			want: &app.Config{
				Steps: 2,
				Overrides: map[string]string{
					"precision": "0.5", "order": "input", "backend": "decimal",
					"max_passes": "10", "monitor": "true", "rain": "index",
				},
				LogFormat: "text", LogLevel: "warn",
			},
		},
		{
			name: "explicit flags beat -set",
			args: []string{"-set", "precision=0.1", "-set", "monitor=true", "-precision", "0.2", "1"},
			want: &app.Config{
				Steps:     1,
				Overrides: map[string]string{"precision": "0.2", "monitor": "true"},
				LogFormat: "text", LogLevel: "warn",
			},
		},
		{
			name: "-set value may contain equals",
			args: []string{"-set", "rain=index == 0 ? 1 : 0", "1"},
			want: &app.Config{
				Steps:     1,
				Overrides: map[string]string{"rain": "index == 0 ? 1 : 0"},
				LogFormat: "text", LogLevel: "warn",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, shouldExit, err := Parse(tc.args, &out)
			require.NoError(t, err)
			assert.False(t, shouldExit)
			assert.Equal(t, tc.want, cfg)
		})
	}
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	cfg, shouldExit, err := Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "max_passes")
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		args        []string
		contains    string
		expectUsage bool
	}{
		{name: "missing N", args: []string{}, contains: "missing required argument N", expectUsage: true},
		{name: "N not a number", args: []string{"many"}, contains: `invalid N "many"`},
		{name: "negative N", args: []string{"--", "-1"}, contains: `invalid N "-1"`},
		{name: "extra arguments", args: []string{"1", "2"}, contains: "unexpected arguments"},
		{name: "unknown flag", args: []string{"-workers", "4", "1"}, contains: "flag provided but not defined"},
		{name: "bad -set", args: []string{"-set", "monitor", "1"}, contains: "expected key=value"},
		{name: "bad precision", args: []string{"-precision", "fine", "1"}, contains: "invalid value"},
		{name: "bad log format", args: []string{"-log-format", "xml", "1"}, contains: "invalid log-format"},
		{name: "bad log level", args: []string{"-log-level", "trace", "1"}, contains: "invalid log-level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg, shouldExit, err := Parse(tc.args, &out)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.False(t, shouldExit)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.contains)
			if tc.expectUsage {
				assert.Contains(t, out.String(), "Usage:")
			}
		})
	}
}

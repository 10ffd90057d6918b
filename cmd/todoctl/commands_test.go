package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := execute(t, "parse", "--engine", "datemath", "--now", "2024-05-01T15:30:00Z",
		"Buy", "milk", "tomorrow", "at", "5pm", "p:high", "#groceries")
	require.NoError(t, err)

	var got parseOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Buy milk", got.Title)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, "2024-05-02T17:00:00Z", *got.DueDate)
	require.NotNil(t, got.Priority)
	assert.Equal(t, "HIGH", *got.Priority)
	require.NotNil(t, got.Labels)
	assert.Equal(t, "groceries", *got.Labels)
}

func TestParseCommand_PlainText(t *testing.T) {
	out, err := execute(t, "parse", "--engine", "datemath", "Call mom")
	require.NoError(t, err)
	assert.Contains(t, out, `"due_date": null`)
	assert.Contains(t, out, `"priority": null`)
	assert.Contains(t, out, `"labels": null`)
}

func TestParseCommand_YAML(t *testing.T) {
	out, err := execute(t, "parse", "-o", "yaml", "--engine", "datemath", "Call mom @home")
	require.NoError(t, err)

	var got parseOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Call mom", got.Title)
	require.NotNil(t, got.Labels)
	assert.Equal(t, "home", *got.Labels)
	assert.Nil(t, got.Priority)
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no text", []string{"parse"}},
		{"unknown engine", []string{"parse", "--engine", "chrono", "x"}},
		{"bad timezone", []string{"parse", "--tz", "Mars/Olympus", "x"}},
		{"bad output", []string{"parse", "-o", "xml", "x"}},
		{"bad now", []string{"parse", "--engine", "datemath", "--now", "yesterday", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "todoctl version"))
}

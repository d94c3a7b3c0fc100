package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestTestsCommand(t *testing.T) {
	out, err := run(t, "tests")
	require.NoError(t, err)
	for _, id := range []string{"english-fluency", "jvdt-2", "jvdt-4", "jvdt-7"} {
		assert.Contains(t, out, id)
	}
}

func TestTestsCommand_Markdown(t *testing.T) {
	out, err := run(t, "tests", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "| ID")
}

func TestArchetypesCommand(t *testing.T) {
	out, err := run(t, "archetypes")
	require.NoError(t, err)
	assert.Contains(t, out, "The Inventive Maker")
}

func TestScoreCommand(t *testing.T) {
	answers := writeFile(t, "answers.yaml", "p1: 5\np2: 4\np3: 5\n")

	out, err := run(t, "score", "--test", "jvdt-7", "--answers", answers)
	require.NoError(t, err)
	assert.Contains(t, out, "Perception")
	assert.Contains(t, out, "Integration index:")
}

func TestScoreCommand_JSONAnswersAndOutput(t *testing.T) {
	answers := writeFile(t, "answers.json", `{"p1": 5, "p2": 1}`)

	out, err := run(t, "score", "--test", "jvdt-7", "--answers", answers, "--json")
	require.NoError(t, err)

	var got struct {
		TestID      string `json:"testId"`
		Methodology string `json:"methodology"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "jvdt-7", got.TestID)
	assert.NotEmpty(t, got.Methodology)
}

func TestScoreCommand_Errors(t *testing.T) {
	answers := writeFile(t, "answers.yaml", "p1: 5\n")
	empty := writeFile(t, "empty.yaml", "")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown test", []string{"score", "--test", "nope", "--answers", answers}, "unknown test"},
		{"missing answers flag", []string{"score", "--test", "jvdt-7"}, "answers"},
		{"no instrument", []string{"score", "--answers", answers}, "test"},
		{"both instruments", []string{"score", "--test", "jvdt-7", "--definition", answers, "--answers", answers}, "definition"},
		{"missing file", []string{"score", "--test", "jvdt-7", "--answers", filepath.Join(t.TempDir(), "none.yaml")}, "read answers"},
		{"empty file", []string{"score", "--test", "jvdt-7", "--answers", empty}, "empty"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestValidateCommand_Embedded(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.GreaterOrEqual(t, len(lines), 4)
	assert.Contains(t, out, "jvdt-7:")
}

func TestValidateCommand_File(t *testing.T) {
	def := writeFile(t, "custom.yaml", `
id: custom
title: Custom
description: A definition with an untagged scale question.
questions:
  - id: q1
    question: "Anything?"
    type: scale
categories: []
scoring:
  method: jvdt_axes
`)

	out, err := run(t, "validate", def)
	require.NoError(t, err)
	assert.Contains(t, out, "custom:")
	assert.Contains(t, out, "warning")

	_, err = run(t, "validate", "--strict", def)
	require.Error(t, err)
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "lambdalogger.properties")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestLevelsForNames(t *testing.T) {
	p := writeConfig(t, "lambda.rootLogger=WARN\nlambda.logger.a.b=INFO\n")

	out, _, err := run(t, "levels", "--config", p, "a.b.c", "x")
	require.NoError(t, err)
	assert.Equal(t, "a.b.c\tINFO\nx\tWARN\n", out)
}

func TestLevelsTable(t *testing.T) {
	p := writeConfig(t, "lambda.rootLogger=error\nlambda.logger.z=debug\nlambda.logger.a=off\n")

	out, _, err := run(t, "levels", "--config", p)
	require.NoError(t, err)
	assert.Equal(t, "<root>\tERROR\na\tOFF\nz\tDEBUG\n", out)
}

func TestCheckReportsProblems(t *testing.T) {
	p := writeConfig(t, "lambda.rootLogger=LOUD\n")

	_, stderr, err := run(t, "check", "--config", p)
	require.Error(t, err)
	assert.Contains(t, stderr, "lambda.rootLogger")

	ok := writeConfig(t, "lambda.rootLogger=INFO\n")
	out, _, err := run(t, "check", "--config", ok)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestSimulateReplaysQueuedLineFirst(t *testing.T) {
	p := writeConfig(t, "lambda.rootLogger=INFO\nlambda.logger.sim=DEBUG\n")

	out, _, err := run(t, "simulate", "--config", p, "--invocations", "2", "--concurrency", "2", "--logger", "sim")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	byRequest := map[string][]string{}
	for _, line := range lines {
		require.True(t, strings.HasPrefix(line, "RequestId: "), line)
		id := strings.Fields(line)[1]
		byRequest[id] = append(byRequest[id], line)
	}
	require.Len(t, byRequest, 2)
	for _, ls := range byRequest {
		assert.Contains(t, ls[0], "DEBUG  invocation")
		assert.Contains(t, ls[0], "queued before sink")
		assert.Contains(t, ls[4], "ERROR  invocation")
	}
}

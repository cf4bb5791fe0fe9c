package acceptance_test

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runNanoid executes the nanoid binary in dir with a clean NANOID_*
// environment and returns stdout, stderr, and exit code.
func runNanoid(t *testing.T, dir string, env []string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(nanoidBinary, args...)
	cmd.Dir = dir
	cmd.Env = append(cleanEnv(), env...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			require.FailNow(t, "failed to run nanoid", err.Error())
		}
	}
	return stdout.String(), stderr.String(), exitCode
}

// runNanoidSuccess runs nanoid expecting exit code 0 and returns stdout.
func runNanoidSuccess(t *testing.T, dir string, args ...string) string {
	t.Helper()
	stdout, stderr, exitCode := runNanoid(t, dir, nil, args...)
	require.Equal(t, 0, exitCode, "args: %v\nstdout: %s\nstderr: %s", args, stdout, stderr)
	return stdout
}

// cleanEnv returns the process environment without NANOID_* variables.
func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "NANOID_") {
			env = append(env, kv)
		}
	}
	return env
}

// decodeJSON parses stdout into v.
func decodeJSON(t *testing.T, stdout string, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(stdout), v), "output: %s", stdout)
}

// writeFile creates a file with the given content.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// readLines reads a file and returns its non-empty lines.
func readLines(t *testing.T, dir, name string) []string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return strings.Fields(string(content))
}

// assertIDs checks that every id has size symbols drawn from alphabet.
func assertIDs(t *testing.T, ids []string, alphabet string, size int) {
	t.Helper()
	for _, id := range ids {
		assert.Len(t, []rune(id), size, "ID %q", id)
		for _, r := range id {
			assert.True(t, strings.ContainsRune(alphabet, r), "ID %q contains %q outside %q", id, r, alphabet)
		}
	}
}

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mailbox(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for name, body := range map[string]string{
		"alice/1.": "From: alice@enron.com\nTo: bob@enron.com\n",
		"bob/1.":   "From: bob@enron.com\nTo: carol@enron.com\n",
	} {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	return root
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "want *ExitError, got %v", err)
	return exitErr.Code
}

func TestRun_Connectors(t *testing.T) {
	var out, errW bytes.Buffer
	in := strings.NewReader("bob@enron.com\nEXIT\n")
	saved := filepath.Join(t.TempDir(), "connectors.txt")

	err := run(context.Background(), []string{mailbox(t), saved, "--log-level", "error", "--workers", "2"}, in, &out, &errW)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.String(), "Connectors:\nbob@enron.com\n\n"))
	assert.Contains(t, out.String(), "* bob@enron.com is in a team with 3 individuals\n")
	data, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Equal(t, "bob@enron.com\n", string(data))
}

func TestRun_UsageErrors(t *testing.T) {
	root := mailbox(t)
	file := filepath.Join(root, "alice", "1.")
	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"too many args", []string{root, "a", "b"}},
		{"unknown flag", []string{root, "--bogus"}},
		{"missing root", []string{filepath.Join(root, "nope")}},
		{"root is file", []string{file}},
		{"bad level", []string{root, "--log-level", "loud"}},
		{"bad domain", []string{root, "--domain", "not a domain"}},
		{"missing config", []string{root, "--config", filepath.Join(root, "nope.yaml")}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out, errW bytes.Buffer
			err := run(context.Background(), tc.args, strings.NewReader(""), &out, &errW)
			require.Error(t, err)
			assert.Equal(t, 2, exitCode(t, err))
			assert.Empty(t, out.String())
		})
	}
}

func TestRun_ConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "commgraph.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("interactive: false\nlog:\n  level: error\n"), 0o600))
	var out, errW bytes.Buffer

	// EXIT is never read: the file turns the prompt off.
	err := run(context.Background(), []string{mailbox(t), "--config", cfgPath}, strings.NewReader("EXIT\n"), &out, &errW)
	require.NoError(t, err)
	assert.Equal(t, "Connectors:\nbob@enron.com\n\n", out.String())
}

func TestRun_Path(t *testing.T) {
	var out, errW bytes.Buffer
	err := run(context.Background(),
		[]string{"path", mailbox(t), "alice@enron.com", "carol@enron.com", "--log-level", "error"},
		strings.NewReader(""), &out, &errW)
	require.NoError(t, err)
	assert.Equal(t, "alice@enron.com -> bob@enron.com -> carol@enron.com\n2 hops\n", out.String())

	err = run(context.Background(), []string{"path", mailbox(t), "alice@enron.com"}, strings.NewReader(""), &out, &errW)
	assert.Equal(t, 2, exitCode(t, err))
}

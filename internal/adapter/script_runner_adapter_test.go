package adapter

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

// These tests drive the adapter with /bin/sh so they do not depend on a
// Python installation.

func writeScript(t *testing.T, body string) (m.Path, m.Path) {
	t.Helper()

	dir := t.TempDir()
	script := filepath.Join(dir, "script.sh")
	writeTestFile(t, script, body)

	return m.Path(dir), m.Path(script)
}

func TestLocalScriptRunnerAdapter_RunScript_Success(t *testing.T) {
	adapter := NewLocalScriptRunnerAdapter("sh", time.Second)
	dir, script := writeScript(t, "echo out\necho err 1>&2\npwd\n")

	out, err := adapter.RunScript(context.Background(), dir, script)
	require.NoError(t, err)
	assert.Zero(t, out.ExitCode)
	assert.True(t, strings.HasPrefix(out.Stdout, "out\n"))
	assert.Contains(t, out.Stdout, filepath.Base(string(dir)))
	assert.Equal(t, "err\n", out.Stderr)
}

func TestLocalScriptRunnerAdapter_RunScript_NonZeroExit(t *testing.T) {
	adapter := NewLocalScriptRunnerAdapter("sh", time.Second)
	dir, script := writeScript(t, "echo boom 1>&2\nexit 3\n")

	out, err := adapter.RunScript(context.Background(), dir, script)
	require.NoError(t, err)
	assert.Equal(t, 3, out.ExitCode)
	assert.Equal(t, "boom\n", out.Stderr)
}

func TestLocalScriptRunnerAdapter_RunScript_Timeout(t *testing.T) {
	adapter := NewLocalScriptRunnerAdapter("sh", 100*time.Millisecond)
	dir, script := writeScript(t, "exec sleep 5\n")

	start := time.Now()
	_, err := adapter.RunScript(context.Background(), dir, script)
	require.ErrorIs(t, err, ErrScriptTimeout)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestLocalScriptRunnerAdapter_RunScript_MissingInterpreter(t *testing.T) {
	adapter := NewLocalScriptRunnerAdapter("codeqg-no-such-interpreter", time.Second)
	dir, script := writeScript(t, "")

	_, err := adapter.RunScript(context.Background(), dir, script)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrScriptTimeout)
}

func TestNewLocalScriptRunnerAdapter_DefaultTimeout(t *testing.T) {
	adapter := NewLocalScriptRunnerAdapter("python3", 0)
	assert.Equal(t, DefaultScriptTimeout, adapter.timeout)
}

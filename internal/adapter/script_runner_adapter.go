package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

// DefaultScriptTimeout bounds a single script run.
const DefaultScriptTimeout = 5 * time.Second

// ErrScriptTimeout is returned when a script exceeds its time budget.
var ErrScriptTimeout = errors.New("script timed out")

// ScriptOutput is what a finished script wrote.
type ScriptOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// ScriptRunnerAdapter abstracts running a script file in an interpreter.
type ScriptRunnerAdapter interface {
	// RunScript runs script inside workDir. A non-zero exit is reported in
	// ScriptOutput.ExitCode, not as an error; errors mean the script could
	// not run to completion.
	RunScript(ctx context.Context, workDir, script m.Path) (ScriptOutput, error)
}

// LocalScriptRunnerAdapter provides a concrete implementation using os/exec.
type LocalScriptRunnerAdapter struct {
	interpreter string
	timeout     time.Duration
}

// NewLocalScriptRunnerAdapter constructs a LocalScriptRunnerAdapter. A
// non-positive timeout falls back to DefaultScriptTimeout.
func NewLocalScriptRunnerAdapter(interpreter string, timeout time.Duration) *LocalScriptRunnerAdapter {
	if timeout <= 0 {
		timeout = DefaultScriptTimeout
	}

	return &LocalScriptRunnerAdapter{
		interpreter: interpreter,
		timeout:     timeout,
	}
}

// RunScript runs '<interpreter> <script>' in workDir.
func (a *LocalScriptRunnerAdapter) RunScript(ctx context.Context, workDir, script m.Path) (ScriptOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	// #nosec G204 - the interpreter comes from configuration
	cmd := exec.CommandContext(ctx, a.interpreter, string(script))
	cmd.Dir = string(workDir)
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	output := ScriptOutput{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return output, fmt.Errorf("%w after %s", ErrScriptTimeout, a.timeout)
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return output, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		output.ExitCode = exitErr.ExitCode()
		return output, nil
	}

	if err != nil {
		return output, fmt.Errorf("run %s: %w", a.interpreter, err)
	}

	return output, nil
}

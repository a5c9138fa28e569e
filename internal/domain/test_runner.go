package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"github.com/jalshboul/template-based-question-generation/internal/adapter"
	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

// Result messages of the test runner.
const (
	msgInvalidCase = "Invalid test case: missing function name or expected output"
	msgPassed      = "Test passed successfully"
	msgTimeout     = "Test timed out (possibly infinite loop)"
)

const (
	subjectFile = "subject.py"
	harnessFile = "harness.py"
)

// harnessTemplate imports the code under test as a module, so a trailing
// `if __name__ == "__main__":` block does not run, and prints the result
// as json on the last line of stdout.
const harnessTemplate = `import json
import sys

try:
    import subject
    result = getattr(subject, %s)(*json.loads(%s))
    print(json.dumps(result))
except Exception as e:
    print(f"ERROR: {type(e).__name__}: {e}")
    sys.exit(1)
`

// TestRunner executes unit-test cases against a code snippet. Every case
// runs in its own subprocess and scratch directory; a failing case never
// aborts the run.
type TestRunner interface {
	RunTests(ctx context.Context, code string, cases []m.TestCase) m.TestReport
}

type testRunner struct {
	fs       adapter.SourceFSAdapter
	scripts  adapter.ScriptRunnerAdapter
	parallel int
}

// NewTestRunner constructs a TestRunner running up to parallel cases at a
// time.
func NewTestRunner(fs adapter.SourceFSAdapter, scripts adapter.ScriptRunnerAdapter, parallel int) TestRunner {
	return &testRunner{
		fs:       fs,
		scripts:  scripts,
		parallel: max(1, parallel),
	}
}

func (r *testRunner) RunTests(ctx context.Context, code string, cases []m.TestCase) m.TestReport {
	lang := DetectLanguage(code)

	report := m.TestReport{
		Language: lang,
		Total:    len(cases),
		Results:  []m.TestResult{},
	}

	if lang != m.LanguagePython {
		report.Error = fmt.Sprintf("Automated testing for %s is not implemented yet.", lang)
		return report
	}

	results := make([]m.TestResult, len(cases))

	var group errgroup.Group
	group.SetLimit(r.parallel)

	for i, tc := range cases {
		group.Go(func() error {
			results[i] = r.runCase(ctx, code, tc)
			return nil
		})
	}

	_ = group.Wait()

	for _, result := range results {
		report.Add(result)
	}

	slog.Debug("test run finished", "total", report.Total, "passed", report.Passed,
		"failed", report.Failed, "errors", report.Errors, "timeouts", report.Timeouts)

	return report
}

func (r *testRunner) runCase(ctx context.Context, code string, tc m.TestCase) m.TestResult {
	id := tc.ID
	if id == "" {
		id = "unknown"
	}

	if tc.FunctionName == "" || tc.ExpectedOutput == nil {
		return m.TestResult{TestID: id, Status: m.TestError, Message: msgInvalidCase}
	}

	inputs := tc.Inputs
	if inputs == nil {
		inputs = []any{}
	}

	args, err := json.Marshal(inputs)
	if err != nil {
		return m.TestResult{TestID: id, Status: m.TestError, Message: fmt.Sprintf("Invalid test inputs: %v", err)}
	}

	expected, err := normalizeJSON(tc.ExpectedOutput)
	if err != nil {
		return m.TestResult{TestID: id, Status: m.TestError, Message: fmt.Sprintf("Invalid expected output: %v", err)}
	}

	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return m.TestResult{TestID: id, Status: m.TestTimeout, Message: msgTimeout}
		}

		return m.TestResult{TestID: id, Status: m.TestError, Message: fmt.Sprintf("Test run aborted: %v", err)}
	}

	out, err := r.execute(ctx, code, tc.FunctionName, string(args))

	switch {
	case errors.Is(err, adapter.ErrScriptTimeout), errors.Is(err, context.DeadlineExceeded):
		return m.TestResult{TestID: id, Status: m.TestTimeout, Message: msgTimeout}
	case err != nil:
		slog.Error("test case did not run", "test", id, "error", err)
		return m.TestResult{TestID: id, Status: m.TestError, Message: fmt.Sprintf("Unexpected error: %v", err)}
	case out.ExitCode != 0:
		msg := strings.TrimSpace(out.Stderr)
		if msg == "" {
			msg = strings.TrimSpace(out.Stdout)
		}

		return m.TestResult{TestID: id, Status: m.TestError, Message: msg}
	}

	raw := lastLine(out.Stdout)

	var actual any
	if err := json.Unmarshal([]byte(raw), &actual); err != nil {
		return m.TestResult{TestID: id, Status: m.TestError, Message: fmt.Sprintf("Error evaluating output: %v", err)}
	}

	if cmp.Equal(expected, actual) {
		return m.TestResult{TestID: id, Status: m.TestPassed, Message: msgPassed}
	}

	return m.TestResult{TestID: id, Status: m.TestFailed, Message: mismatchMessage(expected, actual)}
}

// execute writes the code and a harness calling function with the json
// encoded args into a scratch directory and runs the harness.
func (r *testRunner) execute(ctx context.Context, code, function, args string) (adapter.ScriptOutput, error) {
	dir, err := r.fs.CreateTempDir(ctx, "codeqg-test-*")
	if err != nil {
		return adapter.ScriptOutput{}, fmt.Errorf("create temp dir: %w", err)
	}

	defer func() {
		if err := r.fs.RemoveAll(ctx, dir); err != nil {
			slog.Error("failed to cleanup temp dir", "tmpDir", dir, "error", err)
		}
	}()

	subject := r.fs.JoinPath(ctx, string(dir), subjectFile)
	if err := r.fs.WriteFile(ctx, subject, []byte(code), 0o600); err != nil {
		return adapter.ScriptOutput{}, fmt.Errorf("write code: %w", err)
	}

	harness := r.fs.JoinPath(ctx, string(dir), harnessFile)
	script := fmt.Sprintf(harnessTemplate, strconv.Quote(function), strconv.Quote(args))

	if err := r.fs.WriteFile(ctx, harness, []byte(script), 0o600); err != nil {
		return adapter.ScriptOutput{}, fmt.Errorf("write harness: %w", err)
	}

	return r.scripts.RunScript(ctx, dir, harness)
}

// normalizeJSON maps v onto the types encoding/json decodes into, so that
// expected values loaded from yaml compare equal to decoded output.
func normalizeJSON(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

func compactJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}

	return string(data)
}

func indentedJSON(v any) string {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}

	return strings.TrimSuffix(buf.String(), "\n")
}

// mismatchMessage reports a failed comparison with a unified diff of the
// indented json renderings.
func mismatchMessage(expected, actual any) string {
	msg := fmt.Sprintf("Expected %s, but got %s", compactJSON(expected), compactJSON(actual))

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(indentedJSON(expected)),
		B:        difflib.SplitLines(indentedJSON(actual)),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil || diff == "" {
		return msg
	}

	return msg + "\n" + diff
}

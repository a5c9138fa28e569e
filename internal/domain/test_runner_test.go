package domain

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jalshboul/template-based-question-generation/internal/adapter"
	adaptermocks "github.com/jalshboul/template-based-question-generation/internal/adapter/mocks"
	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

const addCode = "def add(a, b):\n    return a + b\n"

func TestTestRunner_NonPythonIsNotImplemented(t *testing.T) {
	scripts := adaptermocks.NewMockScriptRunnerAdapter(t)
	runner := NewTestRunner(adapter.NewLocalSourceFSAdapter(), scripts, 1)

	report := runner.RunTests(context.Background(), "public class A {}", []m.TestCase{
		{ID: "t1", FunctionName: "f", ExpectedOutput: 1},
	})

	assert.Equal(t, m.LanguageJava, report.Language)
	assert.Equal(t, 1, report.Total)
	assert.Equal(t, "Automated testing for java is not implemented yet.", report.Error)
	assert.Empty(t, report.Results)
	scripts.AssertNotCalled(t, "RunScript", mock.Anything, mock.Anything, mock.Anything)
}

func TestTestRunner_InvalidCasesDoNotRun(t *testing.T) {
	scripts := adaptermocks.NewMockScriptRunnerAdapter(t)
	runner := NewTestRunner(adapter.NewLocalSourceFSAdapter(), scripts, 2)

	report := runner.RunTests(context.Background(), addCode, []m.TestCase{
		{ID: "no-name", Inputs: []any{1, 2}, ExpectedOutput: 3},
		{FunctionName: "add", Inputs: []any{1, 2}},
	})

	require.Len(t, report.Results, 2)
	assert.Equal(t, 2, report.Errors)
	assert.Equal(t, m.TestResult{TestID: "no-name", Status: m.TestError, Message: msgInvalidCase}, report.Results[0])
	assert.Equal(t, "unknown", report.Results[1].TestID)
}

func TestTestRunner_Classification(t *testing.T) {
	scripts := adaptermocks.NewMockScriptRunnerAdapter(t)
	runner := NewTestRunner(adapter.NewLocalSourceFSAdapter(), scripts, 1)

	var harnesses []string

	capture := func(_ context.Context, workDir, script m.Path) {
		data, err := os.ReadFile(string(script))
		require.NoError(t, err)
		harnesses = append(harnesses, string(data))

		subject, err := os.ReadFile(filepath.Join(string(workDir), subjectFile))
		require.NoError(t, err)
		assert.Equal(t, addCode, string(subject))
	}

	scripts.EXPECT().RunScript(mock.Anything, mock.Anything, mock.Anything).Run(capture).
		Return(adapter.ScriptOutput{Stdout: "debug noise\n3\n"}, nil).Once()
	scripts.EXPECT().RunScript(mock.Anything, mock.Anything, mock.Anything).Run(capture).
		Return(adapter.ScriptOutput{Stdout: "[1, 2]\n"}, nil).Once()
	scripts.EXPECT().RunScript(mock.Anything, mock.Anything, mock.Anything).Run(capture).
		Return(adapter.ScriptOutput{Stdout: "ERROR: TypeError: bad operand\n", ExitCode: 1}, nil).Once()
	scripts.EXPECT().RunScript(mock.Anything, mock.Anything, mock.Anything).Run(capture).
		Return(adapter.ScriptOutput{}, adapter.ErrScriptTimeout).Once()
	scripts.EXPECT().RunScript(mock.Anything, mock.Anything, mock.Anything).Run(capture).
		Return(adapter.ScriptOutput{Stdout: "not json\n"}, nil).Once()
	scripts.EXPECT().RunScript(mock.Anything, mock.Anything, mock.Anything).Run(capture).
		Return(adapter.ScriptOutput{}, errors.New("exec: python3 not found")).Once()

	report := runner.RunTests(context.Background(), addCode, []m.TestCase{
		{ID: "pass", FunctionName: "add", Inputs: []any{1, 2}, ExpectedOutput: 3},
		{ID: "fail", FunctionName: "add", Inputs: []any{[]any{1}, []any{2}}, ExpectedOutput: []any{1, 3}},
		{ID: "error", FunctionName: "add", Inputs: []any{1, "x"}, ExpectedOutput: 3},
		{ID: "timeout", FunctionName: "add", Inputs: []any{1, 2}, ExpectedOutput: 3},
		{ID: "garbage", FunctionName: "add", Inputs: []any{1, 2}, ExpectedOutput: 3},
		{ID: "broken", FunctionName: "add", Inputs: []any{1, 2}, ExpectedOutput: 3},
	})

	assert.Equal(t, 6, report.Total)
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 3, report.Errors)
	assert.Equal(t, 1, report.Timeouts)

	statuses := make([]m.TestStatus, len(report.Results))
	for i, r := range report.Results {
		statuses[i] = r.Status
	}

	assert.Equal(t, []m.TestStatus{m.TestPassed, m.TestFailed, m.TestError, m.TestTimeout, m.TestError, m.TestError}, statuses)
	assert.Equal(t, msgPassed, report.Results[0].Message)
	assert.True(t, strings.HasPrefix(report.Results[1].Message, "Expected [1,3], but got [1,2]\n--- expected\n+++ actual\n"))
	assert.Equal(t, "ERROR: TypeError: bad operand", report.Results[2].Message)
	assert.Equal(t, msgTimeout, report.Results[3].Message)
	assert.True(t, strings.HasPrefix(report.Results[4].Message, "Error evaluating output: "))
	assert.Equal(t, "Unexpected error: exec: python3 not found", report.Results[5].Message)

	require.Len(t, harnesses, 6)
	assert.Contains(t, harnesses[0], `getattr(subject, "add")(*json.loads("[1,2]"))`)
	assert.Contains(t, harnesses[2], `json.loads("[1,\"x\"]")`)
}

func TestTestRunner_CancelledContext(t *testing.T) {
	scripts := adaptermocks.NewMockScriptRunnerAdapter(t)
	runner := NewTestRunner(adapter.NewLocalSourceFSAdapter(), scripts, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := runner.RunTests(ctx, addCode, []m.TestCase{{ID: "t", FunctionName: "add", ExpectedOutput: 0}})
	require.Len(t, report.Results, 1)
	assert.Equal(t, m.TestError, report.Results[0].Status)
	assert.Contains(t, report.Results[0].Message, context.Canceled.Error())
	assert.Equal(t, 0, report.Timeouts)
}

func TestTestRunner_ExpiredDeadline(t *testing.T) {
	scripts := adaptermocks.NewMockScriptRunnerAdapter(t)
	runner := NewTestRunner(adapter.NewLocalSourceFSAdapter(), scripts, 1)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	report := runner.RunTests(ctx, addCode, []m.TestCase{{ID: "t", FunctionName: "add", ExpectedOutput: 0}})
	require.Len(t, report.Results, 1)
	assert.Equal(t, m.TestTimeout, report.Results[0].Status)
	assert.Equal(t, msgTimeout, report.Results[0].Message)
}

func TestMismatchMessage(t *testing.T) {
	msg := mismatchMessage(map[string]any{"a": 1.0}, map[string]any{"a": 2.0})

	assert.Equal(t, "Expected {\"a\":1}, but got {\"a\":2}\n"+
		"--- expected\n"+
		"+++ actual\n"+
		"@@ -1,3 +1,3 @@\n"+
		" {\n"+
		"-  \"a\": 1\n"+
		"+  \"a\": 2\n"+
		" }\n", msg)
}

func TestLastLine(t *testing.T) {
	assert.Equal(t, "3", lastLine("noise\n3\n"))
	assert.Equal(t, "", lastLine(""))
	assert.Equal(t, "x", lastLine("  x  \n\n"))
}

// TestTestRunner_Python runs real subprocesses when python3 is installed.
func TestTestRunner_Python(t *testing.T) {
	if _, err := exec.LookPath("python3"); err != nil {
		t.Skip("python3 not available")
	}

	code := `def bubble_sort(arr):
    n = len(arr)
    for i in range(n):
        for j in range(0, n - i - 1):
            if arr[j] > arr[j + 1]:
                arr[j], arr[j + 1] = arr[j + 1], arr[j]
    return arr


def spin():
    while True:
        pass


if __name__ == "__main__":
    print(bubble_sort([3, 2, 1]))
`

	runner := NewTestRunner(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewLocalScriptRunnerAdapter("python3", 2*time.Second),
		4,
	)

	report := runner.RunTests(context.Background(), code, []m.TestCase{
		{ID: "sorts", FunctionName: "bubble_sort", Inputs: []any{[]any{5, 2, 9, 1}}, ExpectedOutput: []any{1, 2, 5, 9}},
		{ID: "wrong", FunctionName: "bubble_sort", Inputs: []any{[]any{2, 1}}, ExpectedOutput: []any{2, 1}},
		{ID: "missing", FunctionName: "quick_sort", Inputs: []any{[]any{1}}, ExpectedOutput: []any{1}},
		{ID: "spins", FunctionName: "spin", ExpectedOutput: true},
	})

	require.Len(t, report.Results, 4)
	assert.Equal(t, m.TestPassed, report.Results[0].Status, report.Results[0].Message)
	assert.Equal(t, m.TestFailed, report.Results[1].Status, report.Results[1].Message)
	assert.Equal(t, m.TestError, report.Results[2].Status)
	assert.Contains(t, report.Results[2].Message, "AttributeError")
	assert.Equal(t, m.TestTimeout, report.Results[3].Status)
}

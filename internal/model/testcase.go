package model

// TestCase is a single unit test for a function in a snippet.
type TestCase struct {
	ID             string `json:"id" yaml:"id"`
	FunctionName   string `json:"function_name" yaml:"function_name"`
	Inputs         []any  `json:"inputs" yaml:"inputs"`
	ExpectedOutput any    `json:"expected_output" yaml:"expected_output"`
}

// TestStatus classifies the outcome of one test case.
type TestStatus int

const (
	// TestPassed means the function returned the expected output.
	TestPassed TestStatus = iota
	// TestFailed means the function returned something else.
	TestFailed
	// TestError means the case could not be executed or its output read.
	TestError
	// TestTimeout means the subprocess exceeded its time budget.
	TestTimeout
)

func (s TestStatus) String() string {
	switch s {
	case TestPassed:
		return "passed"
	case TestFailed:
		return "failed"
	case TestError:
		return "error"
	case TestTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// MarshalText renders the status by name in json and yaml reports.
func (s TestStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// TestResult is the outcome of one test case.
type TestResult struct {
	TestID  string     `json:"test_id" yaml:"test_id"`
	Status  TestStatus `json:"status" yaml:"status"`
	Message string     `json:"message" yaml:"message"`
}

// TestReport aggregates the results of a test run.
type TestReport struct {
	Language Language     `json:"language" yaml:"language"`
	Total    int          `json:"total_tests" yaml:"total_tests"`
	Passed   int          `json:"passed" yaml:"passed"`
	Failed   int          `json:"failed" yaml:"failed"`
	Errors   int          `json:"errors" yaml:"errors"`
	Timeouts int          `json:"timeouts" yaml:"timeouts"`
	Results  []TestResult `json:"test_results" yaml:"test_results"`
	Error    string       `json:"error,omitempty" yaml:"error,omitempty"`
}

// Add records a result and updates the counters.
func (r *TestReport) Add(result TestResult) {
	r.Results = append(r.Results, result)

	switch result.Status {
	case TestPassed:
		r.Passed++
	case TestFailed:
		r.Failed++
	case TestTimeout:
		r.Timeouts++
	case TestError:
		r.Errors++
	}
}

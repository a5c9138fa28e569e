package model

// Quiz is a question set together with what was detected about the code.
type Quiz struct {
	Language     Language   `json:"language" yaml:"language"`
	Algorithm    string     `json:"algorithm" yaml:"algorithm"`
	NumQuestions int        `json:"num_questions" yaml:"num_questions"`
	Questions    []Question `json:"questions" yaml:"questions"`
}

// Complexity labels for Metrics.Complexity.
const (
	ComplexitySimple      = "Simple"
	ComplexityModerate    = "Moderate"
	ComplexityComplex     = "Complex"
	ComplexityVeryComplex = "Very Complex"
)

// Metrics is a coarse code-quality summary of a snippet.
type Metrics struct {
	Language        Language `json:"language" yaml:"language"`
	NumFunctions    int      `json:"num_functions" yaml:"num_functions"`
	NumLoops        int      `json:"num_loops" yaml:"num_loops"`
	NumConditionals int      `json:"num_conditionals" yaml:"num_conditionals"`
	NumVariables    int      `json:"num_variables" yaml:"num_variables"`
	LineCount       int      `json:"line_count" yaml:"line_count"`
	Complexity      string   `json:"complexity" yaml:"complexity"`
}

// LevelCount is one row of a Distribution.
type LevelCount struct {
	Level   CognitiveLevel `json:"bloom" yaml:"bloom"`
	Count   int            `json:"count" yaml:"count"`
	Percent float64        `json:"percent" yaml:"percent"`
}

// Distribution counts questions per cognitive level. Rows follow
// CognitiveLevels order; unexpected labels are appended after them.
type Distribution struct {
	Files int          `json:"files" yaml:"files"`
	Total int          `json:"total" yaml:"total"`
	Rows  []LevelCount `json:"rows" yaml:"rows"`
}

// SampleReport is the outcome of generating questions for one sample in a
// batch run. Questions is dropped once the set has been persisted; the count
// survives in NumQuestions.
type SampleReport struct {
	Sample       Sample
	Language     Language
	Algorithm    string
	Questions    []Question
	NumQuestions int
	Saved        []Path
	Err          string
}

package model

// LoopKind is the keyword that opened a loop.
type LoopKind string

const (
	// LoopFor is a for loop.
	LoopFor LoopKind = "for"
	// LoopWhile is a while loop.
	LoopWhile LoopKind = "while"
)

// Function is a function or method declaration found in a snippet.
type Function struct {
	Name        string   `json:"name" yaml:"name"`
	Params      []string `json:"params" yaml:"params"`
	ParamTypes  []string `json:"param_types,omitempty" yaml:"param_types,omitempty"`
	Line        int      `json:"line_num" yaml:"line_num"`
	IsRecursive bool     `json:"is_recursive" yaml:"is_recursive"`
	HasReturn   bool     `json:"has_return,omitempty" yaml:"has_return,omitempty"`
	Complexity  string   `json:"complexity" yaml:"complexity"`
	Doc         string   `json:"docstring,omitempty" yaml:"docstring,omitempty"`
}

// Loop is a for or while loop. For loops carry Variable and, when the
// header could be read, Start and End. While loops carry Condition.
type Loop struct {
	Kind      LoopKind `json:"type" yaml:"type"`
	Line      int      `json:"line_num" yaml:"line_num"`
	Variable  string   `json:"variable,omitempty" yaml:"variable,omitempty"`
	Start     string   `json:"start_value,omitempty" yaml:"start_value,omitempty"`
	End       string   `json:"end_condition,omitempty" yaml:"end_condition,omitempty"`
	IterKind  string   `json:"iter_type,omitempty" yaml:"iter_type,omitempty"`
	Condition string   `json:"condition,omitempty" yaml:"condition,omitempty"`
	Depth     int      `json:"nested_level" yaml:"nested_level"`
}

// Conditional is an if (or elif) statement.
type Conditional struct {
	Line      int    `json:"line_num" yaml:"line_num"`
	Condition string `json:"condition" yaml:"condition"`
	HasElse   bool   `json:"has_else" yaml:"has_else"`
	Depth     int    `json:"nested_level" yaml:"nested_level"`
}

// Variable is a named value. Modifications holds every line the name is
// assigned on, starting with the declaration line.
type Variable struct {
	Name          string `json:"name" yaml:"name"`
	Line          int    `json:"line_num" yaml:"line_num"`
	DataType      string `json:"data_type" yaml:"data_type"`
	Modifications []int  `json:"modifications" yaml:"modifications"`
}

// Structure groups everything extracted from one snippet.
type Structure struct {
	Language     Language      `json:"language" yaml:"language"`
	Functions    []Function    `json:"functions" yaml:"functions"`
	Loops        []Loop        `json:"loops" yaml:"loops"`
	Conditionals []Conditional `json:"conditionals" yaml:"conditionals"`
	Variables    []Variable    `json:"variables" yaml:"variables"`
	Algorithm    string        `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
}

// IsEmpty reports whether nothing at all was extracted.
func (s Structure) IsEmpty() bool {
	return len(s.Functions) == 0 && len(s.Loops) == 0 && len(s.Conditionals) == 0 && len(s.Variables) == 0
}

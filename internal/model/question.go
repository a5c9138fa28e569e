package model

import "fmt"

// Tier is the proficiency tier a question is written for.
type Tier string

const (
	// TierBeginner selects the introductory templates.
	TierBeginner Tier = "beginner"
	// TierIntermediate selects the intermediate templates.
	TierIntermediate Tier = "intermediate"
	// TierAdvanced selects the advanced templates.
	TierAdvanced Tier = "advanced"
)

// Tiers lists all tiers in ascending order.
var Tiers = []Tier{TierBeginner, TierIntermediate, TierAdvanced}

// ParseTier converts a string to a Tier.
func ParseTier(s string) (Tier, error) {
	switch t := Tier(s); t {
	case TierBeginner, TierIntermediate, TierAdvanced:
		return t, nil
	default:
		return "", fmt.Errorf("unknown tier: %q", s)
	}
}

// Category is the kind of element a question is about.
type Category string

const (
	CategoryFunction  Category = "function"
	CategoryLoop      Category = "loop"
	CategoryCondition Category = "condition"
	CategoryVariable  Category = "variable"
	CategoryAlgorithm Category = "algorithm"
	// CategoryGeneral is only used by the syntax-error diagnostic question.
	CategoryGeneral Category = "general"
)

// Categories lists the element categories in instantiation order.
var Categories = []Category{CategoryFunction, CategoryLoop, CategoryCondition, CategoryVariable, CategoryAlgorithm}

// CognitiveLevel is one of the six ascending levels of cognitive demand.
type CognitiveLevel string

const (
	LevelRemember   CognitiveLevel = "remember"
	LevelUnderstand CognitiveLevel = "understand"
	LevelApply      CognitiveLevel = "apply"
	LevelAnalyze    CognitiveLevel = "analyze"
	LevelEvaluate   CognitiveLevel = "evaluate"
	LevelCreate     CognitiveLevel = "create"
)

// CognitiveLevels lists the levels in ascending order of demand.
var CognitiveLevels = []CognitiveLevel{LevelRemember, LevelUnderstand, LevelApply, LevelAnalyze, LevelEvaluate, LevelCreate}

// Rank returns the 1-based position of the level, or 0 for an unknown level.
func (l CognitiveLevel) Rank() int {
	for i, level := range CognitiveLevels {
		if level == l {
			return i + 1
		}
	}

	return 0
}

// Template is an immutable question template. Placeholders are written as
// {field}.
type Template struct {
	Category Category
	Tier     Tier
	Text     string
	Level    CognitiveLevel
}

// Question is a realized template plus the metadata that traces it back to
// the element it was generated from.
type Question struct {
	ID            string         `json:"id" yaml:"id"`
	Text          string         `json:"question" yaml:"question"`
	Tier          Tier           `json:"difficulty" yaml:"difficulty"`
	Category      Category       `json:"category" yaml:"category"`
	Level         CognitiveLevel `json:"bloom,omitempty" yaml:"bloom,omitempty"`
	FunctionName  string         `json:"function_name,omitempty" yaml:"function_name,omitempty"`
	LoopType      string         `json:"loop_type,omitempty" yaml:"loop_type,omitempty"`
	Line          int            `json:"line_num,omitempty" yaml:"line_num,omitempty"`
	VariableName  string         `json:"variable_name,omitempty" yaml:"variable_name,omitempty"`
	AlgorithmName string         `json:"algorithm_name,omitempty" yaml:"algorithm_name,omitempty"`
}

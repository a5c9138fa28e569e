package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jalshboul/template-based-question-generation/internal/domain/templates"
	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// questionNamespace seeds the name-based question IDs.
var questionNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("codeqg/question"))

// Instantiator fills templates with the fields of extracted elements.
type Instantiator struct {
	library *templates.Library
}

// NewInstantiator returns an Instantiator over lib, or over the built-in
// library when lib is nil.
func NewInstantiator(lib *templates.Library) *Instantiator {
	if lib == nil {
		lib = templates.Default()
	}

	return &Instantiator{library: lib}
}

// render substitutes every {field} in text. It reports false when a
// placeholder names a field that is absent, in which case the template does
// not apply. Empty values are substituted as is.
func render(text string, fields map[string]string) (string, bool) {
	ok := true

	out := placeholderPattern.ReplaceAllStringFunc(text, func(ph string) string {
		value, found := fields[ph[1:len(ph)-1]]
		if !found {
			ok = false
		}

		return value
	})

	return out, ok
}

// setField adds key to fields unless value is empty.
func setField(fields map[string]string, key, value string) {
	if value != "" {
		fields[key] = value
	}
}

func questionID(q m.Question) string {
	name := strings.Join([]string{
		string(q.Category), string(q.Tier), string(q.Level), q.Text,
		q.FunctionName, q.LoopType, strconv.Itoa(q.Line), q.VariableName, q.AlgorithmName,
	}, "\x00")

	return uuid.NewSHA1(questionNamespace, []byte(name)).String()
}

// fill instantiates every template of (category, tier) against fields and
// stamps each result with meta.
func (in *Instantiator) fill(category m.Category, tier m.Tier, fields map[string]string, meta m.Question) []m.Question {
	var questions []m.Question

	for _, tpl := range in.library.Lookup(category, tier) {
		text, ok := render(tpl.Text, fields)
		if !ok {
			continue
		}

		q := meta
		q.Text = text
		q.Tier = tier
		q.Category = category
		q.Level = tpl.Level
		q.ID = questionID(q)
		questions = append(questions, q)
	}

	return questions
}

// Functions instantiates function templates for every function.
func (in *Instantiator) Functions(tier m.Tier, functions []m.Function) []m.Question {
	var questions []m.Question

	for _, f := range functions {
		fields := map[string]string{
			"name":           f.Name,
			"params_example": ParamsExample(f.Params),
			"line_num":       strconv.Itoa(f.Line),
			"complexity":     f.Complexity,
		}
		questions = append(questions, in.fill(m.CategoryFunction, tier, fields, m.Question{FunctionName: f.Name})...)
	}

	return questions
}

// Loops instantiates loop templates for every loop. Only the attributes a
// loop kind carries become fields, so templates that need a loop variable
// are skipped for while loops.
func (in *Instantiator) Loops(tier m.Tier, loops []m.Loop) []m.Question {
	var questions []m.Question

	for _, l := range loops {
		fields := map[string]string{
			"type":     string(l.Kind),
			"line_num": strconv.Itoa(l.Line),
		}
		setField(fields, "variable", l.Variable)
		setField(fields, "start_value", l.Start)
		setField(fields, "end_condition", l.End)
		setField(fields, "condition", l.Condition)
		setField(fields, "iter_type", l.IterKind)

		meta := m.Question{LoopType: string(l.Kind), Line: l.Line}
		questions = append(questions, in.fill(m.CategoryLoop, tier, fields, meta)...)
	}

	return questions
}

// Conditionals instantiates condition templates for every conditional.
func (in *Instantiator) Conditionals(tier m.Tier, conditionals []m.Conditional) []m.Question {
	var questions []m.Question

	for _, c := range conditionals {
		fields := map[string]string{
			"line_num":  strconv.Itoa(c.Line),
			"condition": c.Condition,
		}
		questions = append(questions, in.fill(m.CategoryCondition, tier, fields, m.Question{Line: c.Line})...)
	}

	return questions
}

// Variables instantiates variable templates for every variable.
func (in *Instantiator) Variables(tier m.Tier, variables []m.Variable) []m.Question {
	var questions []m.Question

	for _, v := range variables {
		fields := map[string]string{
			"name":      v.Name,
			"line_num":  strconv.Itoa(v.Line),
			"data_type": v.DataType,
		}
		questions = append(questions, in.fill(m.CategoryVariable, tier, fields, m.Question{VariableName: v.Name})...)
	}

	return questions
}

// Algorithm instantiates algorithm templates once for the snippet. Nothing
// is produced when no algorithm was identified.
func (in *Instantiator) Algorithm(tier m.Tier, algorithm string) []m.Question {
	if algorithm == "" {
		return nil
	}

	fields := map[string]string{
		"algorithm":     algorithm,
		"example_input": ExampleInput(algorithm),
	}

	return in.fill(m.CategoryAlgorithm, tier, fields, m.Question{AlgorithmName: algorithm})
}

// Instantiate produces the candidates of one category.
func (in *Instantiator) Instantiate(category m.Category, tier m.Tier, s m.Structure) ([]m.Question, error) {
	switch category {
	case m.CategoryFunction:
		return in.Functions(tier, s.Functions), nil
	case m.CategoryLoop:
		return in.Loops(tier, s.Loops), nil
	case m.CategoryCondition:
		return in.Conditionals(tier, s.Conditionals), nil
	case m.CategoryVariable:
		return in.Variables(tier, s.Variables), nil
	case m.CategoryAlgorithm:
		return in.Algorithm(tier, s.Algorithm), nil
	default:
		return nil, fmt.Errorf("no templates for category %q", category)
	}
}

// Pool concatenates the candidates of every category in a fixed order.
func (in *Instantiator) Pool(tier m.Tier, s m.Structure) []m.Question {
	pool := []m.Question{}
	pool = append(pool, in.Functions(tier, s.Functions)...)
	pool = append(pool, in.Loops(tier, s.Loops)...)
	pool = append(pool, in.Conditionals(tier, s.Conditionals)...)
	pool = append(pool, in.Variables(tier, s.Variables)...)
	pool = append(pool, in.Algorithm(tier, s.Algorithm)...)

	return pool
}

// ParamsExample builds an example argument list from parameter names.
func ParamsExample(params []string) string {
	if len(params) == 0 {
		return "()"
	}

	examples := make([]string, 0, len(params))

	for _, param := range params {
		p := strings.ToLower(param)

		switch {
		case strings.Contains(p, "index"), strings.Contains(p, "idx"), strings.Contains(p, "position"):
			examples = append(examples, "0")
		case strings.Contains(p, "list"), strings.Contains(p, "array"), strings.Contains(p, "[]"):
			examples = append(examples, "[1, 2, 3]")
		case strings.Contains(p, "str"), strings.Contains(p, "name"), strings.Contains(p, "text"):
			examples = append(examples, "'example'")
		case strings.Contains(p, "num"), strings.Contains(p, "count"), strings.Contains(p, "size"):
			examples = append(examples, "5")
		case strings.Contains(p, "bool"), strings.Contains(p, "flag"):
			examples = append(examples, "True")
		case strings.Contains(p, "map"), strings.Contains(p, "dict"):
			examples = append(examples, "{key: value}")
		default:
			examples = append(examples, "x")
		}
	}

	return strings.Join(examples, ", ")
}

// ExampleInput picks a sample input literal for an algorithm label.
func ExampleInput(algorithm string) string {
	switch {
	case strings.Contains(algorithm, "sort"):
		return "[5, 2, 9, 1, 7]"
	case strings.Contains(algorithm, "search"):
		return "[1, 2, 3, 4, 5], target=3"
	case strings.Contains(algorithm, "path"):
		return "graph={'A': ['B', 'C'], 'B': ['D'], 'C': ['D']}, start='A', end='D'"
	default:
		return "[1, 3, 5, 7, 9]"
	}
}

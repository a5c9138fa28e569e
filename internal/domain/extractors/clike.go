package extractors

import (
	"context"
	"regexp"
	"strings"

	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

var (
	clikeForPattern   = regexp.MustCompile(`\bfor\s*\(\s*(?:\w+\s+)?(\w+)\s*=\s*(\w+|[0-9]+)\s*;\s*(\w+)\s*(?:<|<=|>|>=|!=)\s*(\w+|[0-9]+)\s*;`)
	clikeWhilePattern = regexp.MustCompile(`\bwhile\s*\(\s*(.+?)\s*\)`)
	clikeIfPattern    = regexp.MustCompile(`\bif\s*\(\s*(.+?)\s*\)`)
	clikeLoopOpener   = regexp.MustCompile(`\bfor\s*\(|\bwhile\s*\(`)
)

// elseLookahead is how many lines after an if are searched for an else.
const elseLookahead = 9

// Control-flow keywords that the declaration patterns would otherwise take
// for function names (`} else if (x) {`, `while (i < n) {`).
var clikeKeywords = map[string]bool{
	"if": true, "for": true, "while": true, "switch": true, "catch": true,
	"return": true, "sizeof": true, "else": true, "do": true,
}

// dialect holds the per-language tables of a pattern extractor.
type dialect struct {
	language   m.Language
	function   *regexp.Regexp
	params     func(raw string) (names, types []string)
	varInit    *regexp.Regexp
	varDecl    *regexp.Regexp
	signatures signatureTable
}

// patternExtractor is a line-oriented regex scanner shared by the
// brace-delimited languages.
type patternExtractor struct {
	dialect
}

func (p *patternExtractor) Language() m.Language {
	return p.language
}

// Parse never fails; a canceled context is the only error.
func (p *patternExtractor) Parse(ctx context.Context, code string) (Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &lineTree{
		dialect: &p.dialect,
		code:    code,
		lines:   strings.Split(code, "\n"),
	}, nil
}

func (p *patternExtractor) IdentifyAlgorithm(code string) string {
	return p.signatures.identify(code)
}

type lineTree struct {
	*dialect
	code  string
	lines []string
}

func (t *lineTree) Functions() []m.Function {
	functions := []m.Function{}
	offset := 0

	for i, line := range t.lines {
		lineStart := offset
		offset += len(line) + 1

		loc := t.function.FindStringSubmatchIndex(line)
		if loc == nil {
			continue
		}

		name := line[loc[2]:loc[3]]
		if clikeKeywords[name] {
			continue
		}

		names, types := t.params(line[loc[4]:loc[5]])
		body := t.body(i)
		rest := ""

		if end := lineStart + loc[1]; end < len(t.code) {
			rest = t.code[end:]
		}

		functions = append(functions, m.Function{
			Name:        name,
			Params:      names,
			ParamTypes:  types,
			Line:        i + 1,
			IsRecursive: strings.Contains(rest, name),
			HasReturn:   strings.Contains(strings.Join(body, "\n"), "return"),
			Complexity:  ComplexityClass(maxLoopDepth(body)),
		})
	}

	return functions
}

// body returns the lines from start through the line that closes the first
// brace opened at or after start. Without any brace only the start line is
// returned.
func (t *lineTree) body(start int) []string {
	depth := 0
	opened := false

	for i := start; i < len(t.lines); i++ {
		for _, r := range t.lines[i] {
			switch r {
			case '{':
				depth++
				opened = true
			case '}':
				depth--
			}
		}

		if opened && depth <= 0 {
			return t.lines[start : i+1]
		}
	}

	if !opened {
		return t.lines[start : start+1]
	}

	return t.lines[start:]
}

// loopDepths returns, for each line, how many loops are open before it.
// A loop keyword opens a level and any later line holding a closing brace
// closes one, so the result depends on formatting.
func loopDepths(lines []string) []int {
	depths := make([]int, len(lines))
	current := 0

	for i, line := range lines {
		depths[i] = current

		if clikeLoopOpener.MatchString(line) {
			current++
		} else if strings.Contains(line, "}") && current > 0 {
			current--
		}
	}

	return depths
}

func maxLoopDepth(lines []string) int {
	maxDepth := 0
	for i, d := range loopDepths(lines) {
		if clikeLoopOpener.MatchString(lines[i]) && d+1 > maxDepth {
			maxDepth = d + 1
		}
	}

	return maxDepth
}

func (t *lineTree) Loops() []m.Loop {
	loops := []m.Loop{}
	depths := loopDepths(t.lines)

	for i, line := range t.lines {
		if loop, ok := matchForLoop(line); ok {
			loop.Line = i + 1
			loop.Depth = depths[i]
			loops = append(loops, loop)

			continue
		}

		if match := clikeWhilePattern.FindStringSubmatch(line); match != nil {
			loops = append(loops, m.Loop{
				Kind:      m.LoopWhile,
				Line:      i + 1,
				Condition: match[1],
				Depth:     depths[i],
			})
		}
	}

	return loops
}

// matchForLoop finds a counted for header whose condition tests the same
// variable it initializes.
func matchForLoop(line string) (m.Loop, bool) {
	for _, match := range clikeForPattern.FindAllStringSubmatch(line, -1) {
		if match[1] != match[3] {
			continue
		}

		return m.Loop{
			Kind:     m.LoopFor,
			Variable: match[1],
			Start:    match[2],
			End:      match[4],
		}, true
	}

	return m.Loop{}, false
}

func (t *lineTree) Conditionals() []m.Conditional {
	conditionals := []m.Conditional{}

	// Brace levels of the if blocks that are still open.
	var open []int

	depth := 0
	pending := false

	for i, line := range t.lines {
		loc := clikeIfPattern.FindStringSubmatchIndex(line)
		if pending && !strings.HasPrefix(strings.TrimSpace(line), "{") {
			pending = false
		}

		for pos, r := range line {
			if loc != nil && pos == loc[0] {
				conditionals = append(conditionals, m.Conditional{
					Line:      i + 1,
					Condition: line[loc[2]:loc[3]],
					HasElse:   t.elseFollows(i),
					Depth:     len(open),
				})
				pending = true
			}

			switch r {
			case '{':
				depth++

				if pending {
					open = append(open, depth)
					pending = false
				}
			case '}':
				depth--

				for len(open) > 0 && open[len(open)-1] > depth {
					open = open[:len(open)-1]
				}
			}
		}
	}

	return conditionals
}

func (t *lineTree) elseFollows(i int) bool {
	end := min(i+1+elseLookahead, len(t.lines))
	for j := i + 1; j < end; j++ {
		if strings.Contains(t.lines[j], "else") {
			return true
		}
	}

	return false
}

// Variables keys declarations by type keyword and name. A name keeps the
// type of its first declaration; later declarations only add lines.
func (t *lineTree) Variables() []m.Variable {
	variables := []m.Variable{}
	index := map[string]int{}

	for i, line := range t.lines {
		match := t.varInit.FindStringSubmatch(line)
		if match == nil {
			match = t.varDecl.FindStringSubmatch(line)
		}

		if match == nil {
			continue
		}

		dataType, name := match[1], match[2]
		if pos, ok := index[name]; ok {
			variables[pos].Modifications = append(variables[pos].Modifications, i+1)
			continue
		}

		index[name] = len(variables)
		variables = append(variables, m.Variable{
			Name:          name,
			Line:          i + 1,
			DataType:      dataType,
			Modifications: []int{i + 1},
		})
	}

	return variables
}

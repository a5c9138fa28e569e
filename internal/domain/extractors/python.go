package extractors

import (
	"context"
	"fmt"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

// pythonExtractor parses with the tree-sitter python grammar. Parsers are
// not safe for concurrent use, so every Parse call builds its own.
type pythonExtractor struct{}

// NewPython returns the Python extractor.
func NewPython() Extractor {
	return &pythonExtractor{}
}

func (p *pythonExtractor) Language() m.Language {
	return m.LanguagePython
}

// Parse returns a *ParseError when the grammar reports any error or missing
// node. Empty input parses to an empty module.
func (p *pythonExtractor) Parse(ctx context.Context, code string) (Tree, error) {
	src := []byte(code)

	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse python: %w", err)
	}

	root := tree.RootNode()
	if root.HasError() {
		return nil, &ParseError{Language: m.LanguagePython, Line: firstErrorLine(root)}
	}

	return &pythonTree{root: root, src: src}, nil
}

func (p *pythonExtractor) IdentifyAlgorithm(code string) string {
	return pythonSignatures.identify(code)
}

func firstErrorLine(n *sitter.Node) int {
	if n.Type() == "ERROR" || n.IsMissing() {
		return int(n.StartPoint().Row) + 1
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child != nil && child.HasError() {
			return firstErrorLine(child)
		}
	}

	return int(n.StartPoint().Row) + 1
}

type pythonTree struct {
	root *sitter.Node
	src  []byte
}

// scope is what the breadth-first walk knows about a node's ancestors.
type scope struct {
	ifDepth   int // enclosing if/elif bodies
	loopDepth int // enclosing loop bodies
}

// walk visits every node breadth first, the order in which a module's
// statements are reported.
func (t *pythonTree) walk(visit func(n *sitter.Node, s scope)) {
	type item struct {
		node *sitter.Node
		scope
	}

	queue := []item{{node: t.root}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		visit(cur.node, cur.scope)

		for i := 0; i < int(cur.node.ChildCount()); i++ {
			child := cur.node.Child(i)
			if child == nil {
				continue
			}

			next := cur.scope
			field := cur.node.FieldNameForChild(i)

			switch cur.node.Type() {
			case "if_statement", "elif_clause":
				if field == "consequence" {
					next.ifDepth++
				}
			case "for_statement", "while_statement":
				if field == "body" {
					next.loopDepth++
				}
			}

			queue = append(queue, item{node: child, scope: next})
		}
	}
}

// anyNode reports whether pred holds for n or one of its descendants.
func anyNode(n *sitter.Node, pred func(*sitter.Node) bool) bool {
	if pred(n) {
		return true
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		if child := n.Child(i); child != nil && anyNode(child, pred) {
			return true
		}
	}

	return false
}

func isAsync(n *sitter.Node) bool {
	first := n.Child(0)
	return first != nil && first.Type() == "async"
}

func isLoop(n *sitter.Node) bool {
	return n.Type() == "for_statement" || n.Type() == "while_statement"
}

func maxNesting(n *sitter.Node) int {
	deepest := 0

	for i := 0; i < int(n.ChildCount()); i++ {
		if child := n.Child(i); child != nil {
			deepest = max(deepest, maxNesting(child))
		}
	}

	if isLoop(n) {
		deepest++
	}

	return deepest
}

func (t *pythonTree) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}

	return n.Content(t.src)
}

func line(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}

func (t *pythonTree) Functions() []m.Function {
	functions := []m.Function{}

	t.walk(func(n *sitter.Node, _ scope) {
		if n.Type() != "function_definition" || isAsync(n) {
			return
		}

		name := t.text(n.ChildByFieldName("name"))
		functions = append(functions, m.Function{
			Name:   name,
			Params: t.positionalParams(n.ChildByFieldName("parameters")),
			Line:   line(n),
			IsRecursive: anyNode(n, func(c *sitter.Node) bool {
				if c.Type() != "call" {
					return false
				}

				callee := c.ChildByFieldName("function")

				return callee != nil && callee.Type() == "identifier" && t.text(callee) == name
			}),
			HasReturn: anyNode(n, func(c *sitter.Node) bool {
				return c.Type() == "return_statement"
			}),
			Complexity: ComplexityClass(maxNesting(n)),
			Doc:        t.docstring(n.ChildByFieldName("body")),
		})
	})

	return functions
}

// positionalParams returns the names of the ordinary positional parameters:
// positional-only names before "/" and everything from "*" on are excluded.
func (t *pythonTree) positionalParams(params *sitter.Node) []string {
	names := []string{}
	if params == nil {
		return names
	}

	for i := 0; i < int(params.NamedChildCount()); i++ {
		param := params.NamedChild(i)

		switch param.Type() {
		case "identifier":
			names = append(names, t.text(param))
		case "default_parameter", "typed_default_parameter":
			if name := param.ChildByFieldName("name"); name != nil && name.Type() == "identifier" {
				names = append(names, t.text(name))
			}
		case "typed_parameter":
			first := param.NamedChild(0)
			if first == nil {
				continue
			}

			if first.Type() == "list_splat_pattern" {
				return names
			}

			if first.Type() == "identifier" {
				names = append(names, t.text(first))
			}
		case "positional_separator":
			names = names[:0]
		case "list_splat_pattern", "keyword_separator":
			return names
		}
	}

	return names
}

func (t *pythonTree) docstring(body *sitter.Node) string {
	if body == nil || body.NamedChildCount() == 0 {
		return ""
	}

	stmt := body.NamedChild(0)
	if stmt.Type() != "expression_statement" || stmt.NamedChildCount() != 1 {
		return ""
	}

	lit := stmt.NamedChild(0)
	if lit.Type() != "string" {
		return ""
	}

	prefix, value := splitStringLiteral(t.text(lit))
	if strings.ContainsAny(prefix, "bBfF") {
		return ""
	}

	return cleandoc(value)
}

// splitStringLiteral separates the prefix letters of a string literal from
// its unquoted body. Escapes are left as written.
func splitStringLiteral(lit string) (string, string) {
	body := strings.TrimLeft(lit, "rRuUbBfF")
	prefix := lit[:len(lit)-len(body)]

	for _, quote := range []string{`"""`, `'''`, `"`, `'`} {
		if len(body) >= 2*len(quote) && strings.HasPrefix(body, quote) && strings.HasSuffix(body, quote) {
			return prefix, body[len(quote) : len(body)-len(quote)]
		}
	}

	return prefix, body
}

// cleandoc strips the uniform indentation of a docstring and the blank lines
// around it.
func cleandoc(doc string) string {
	lines := strings.Split(strings.ReplaceAll(doc, "\t", "        "), "\n")

	margin := -1

	for _, l := range lines[1:] {
		trimmed := strings.TrimLeft(l, " ")
		if trimmed == "" {
			continue
		}

		if indent := len(l) - len(trimmed); margin < 0 || indent < margin {
			margin = indent
		}
	}

	lines[0] = strings.TrimLeft(lines[0], " ")

	for i := 1; i < len(lines) && margin > 0; i++ {
		if len(lines[i]) >= margin {
			lines[i] = lines[i][margin:]
		} else {
			lines[i] = strings.TrimLeft(lines[i], " ")
		}
	}

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}

func (t *pythonTree) Loops() []m.Loop {
	loops := []m.Loop{}

	t.walk(func(n *sitter.Node, s scope) {
		switch n.Type() {
		case "for_statement":
			if isAsync(n) {
				return
			}

			loops = append(loops, m.Loop{
				Kind:     m.LoopFor,
				Line:     line(n),
				Variable: t.text(n.ChildByFieldName("left")),
				IterKind: nodeClass(n.ChildByFieldName("right")),
				Depth:    s.loopDepth,
			})
		case "while_statement":
			loops = append(loops, m.Loop{
				Kind:      m.LoopWhile,
				Line:      line(n),
				Condition: t.condition(n.ChildByFieldName("condition")),
				Depth:     s.loopDepth,
			})
		}
	})

	return loops
}

var nodeClasses = map[string]string{
	"identifier":               "Name",
	"call":                     "Call",
	"attribute":                "Attribute",
	"subscript":                "Subscript",
	"list":                     "List",
	"tuple":                    "Tuple",
	"dictionary":               "Dict",
	"set":                      "Set",
	"string":                   "Constant",
	"concatenated_string":      "Constant",
	"integer":                  "Constant",
	"float":                    "Constant",
	"true":                     "Constant",
	"false":                    "Constant",
	"none":                     "Constant",
	"ellipsis":                 "Constant",
	"binary_operator":          "BinOp",
	"unary_operator":           "UnaryOp",
	"not_operator":             "UnaryOp",
	"boolean_operator":         "BoolOp",
	"comparison_operator":      "Compare",
	"lambda":                   "Lambda",
	"conditional_expression":   "IfExp",
	"list_comprehension":       "ListComp",
	"dictionary_comprehension": "DictComp",
	"set_comprehension":        "SetComp",
	"generator_expression":     "GeneratorExp",
	"await":                    "Await",
	"named_expression":         "NamedExpr",
}

// nodeClass names an expression the way the interpreter's own syntax tree
// would.
func nodeClass(n *sitter.Node) string {
	if n == nil {
		return ""
	}

	if n.Type() == "parenthesized_expression" && n.NamedChildCount() > 0 {
		return nodeClass(n.NamedChild(0))
	}

	if class, ok := nodeClasses[n.Type()]; ok {
		return class
	}

	return "Expr"
}

// condition renders a test expression. Comparisons and boolean operators
// are spelled out, names and literals are kept, anything else is reduced to
// its expression class.
func (t *pythonTree) condition(n *sitter.Node) string {
	if n == nil {
		return ""
	}

	switch n.Type() {
	case "parenthesized_expression":
		if n.NamedChildCount() > 0 {
			return t.condition(n.NamedChild(0))
		}
	case "comparison_operator":
		var operands, ops, pending []string

		// "not in" and "is not" may arrive as two tokens.
		for i := 0; i < int(n.ChildCount()); i++ {
			child := n.Child(i)
			if child == nil || child.Type() == "comment" {
				continue
			}

			if !child.IsNamed() {
				pending = append(pending, strings.Fields(t.text(child))...)
				continue
			}

			if len(pending) > 0 {
				ops = append(ops, strings.Join(pending, " "))
				pending = nil
			}

			operands = append(operands, t.condition(child))
		}

		parts := make([]string, 0, len(ops))
		for i, op := range ops {
			if i+1 < len(operands) {
				parts = append(parts, operands[0]+" "+op+" "+operands[i+1])
			}
		}

		return strings.Join(parts, " and ")
	case "boolean_operator":
		op := t.text(n.ChildByFieldName("operator"))
		return t.condition(n.ChildByFieldName("left")) + " " + op + " " + t.condition(n.ChildByFieldName("right"))
	case "identifier":
		return t.text(n)
	case "true":
		return "True"
	case "false":
		return "False"
	case "none":
		return "None"
	case "integer", "float":
		return t.text(n)
	case "string":
		prefix, value := splitStringLiteral(t.text(n))
		if strings.ContainsAny(prefix, "fF") {
			return "JoinedStr"
		}

		if strings.ContainsAny(prefix, "bB") {
			return "b'" + value + "'"
		}

		return "'" + value + "'"
	}

	return nodeClass(n)
}

func (t *pythonTree) Conditionals() []m.Conditional {
	conditionals := []m.Conditional{}

	t.walk(func(n *sitter.Node, s scope) {
		var hasElse bool

		switch n.Type() {
		case "if_statement":
			hasElse = n.ChildByFieldName("alternative") != nil
		case "elif_clause":
			for sib := n.NextNamedSibling(); sib != nil; sib = sib.NextNamedSibling() {
				if sib.Type() == "elif_clause" || sib.Type() == "else_clause" {
					hasElse = true
					break
				}
			}
		default:
			return
		}

		conditionals = append(conditionals, m.Conditional{
			Line:      line(n),
			Condition: t.condition(n.ChildByFieldName("condition")),
			HasElse:   hasElse,
			Depth:     s.ifDepth,
		})
	})

	return conditionals
}

var pythonConstructors = map[string]bool{
	"int": true, "float": true, "str": true, "list": true, "dict": true, "set": true, "tuple": true,
}

func (t *pythonTree) inferType(n *sitter.Node) string {
	if n == nil {
		return "unknown"
	}

	switch n.Type() {
	case "parenthesized_expression":
		if n.NamedChildCount() > 0 {
			return t.inferType(n.NamedChild(0))
		}
	case "list":
		return "list"
	case "dictionary":
		return "dict"
	case "set":
		return "set"
	case "tuple":
		return "tuple"
	case "integer":
		return "int"
	case "float":
		return "float"
	case "true", "false":
		return "bool"
	case "none":
		return "NoneType"
	case "string", "concatenated_string":
		prefix, _ := splitStringLiteral(t.text(n))
		if n.Type() == "concatenated_string" && n.NamedChildCount() > 0 {
			prefix, _ = splitStringLiteral(t.text(n.NamedChild(0)))
		}

		switch {
		case strings.ContainsAny(prefix, "fF"):
			return "unknown"
		case strings.ContainsAny(prefix, "bB"):
			return "bytes"
		default:
			return "str"
		}
	case "call":
		callee := n.ChildByFieldName("function")
		if callee != nil && callee.Type() == "identifier" && pythonConstructors[t.text(callee)] {
			return t.text(callee)
		}

		return "object"
	}

	return "unknown"
}

// Variables reports plain name assignments, chained ones included. A name
// is typed by its earliest assignment.
func (t *pythonTree) Variables() []m.Variable {
	type assignment struct {
		name     string
		line     int
		dataType string
	}

	var found []assignment

	t.walk(func(n *sitter.Node, _ scope) {
		if n.Type() != "assignment" || n.ChildByFieldName("type") != nil {
			return
		}

		if parent := n.Parent(); parent != nil && parent.Type() == "assignment" {
			return
		}

		var targets []string

		value := n
		for value != nil && value.Type() == "assignment" {
			if left := value.ChildByFieldName("left"); left != nil && left.Type() == "identifier" {
				targets = append(targets, t.text(left))
			}

			value = value.ChildByFieldName("right")
		}

		dataType := t.inferType(value)
		for _, name := range targets {
			found = append(found, assignment{name: name, line: line(n), dataType: dataType})
		}
	})

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].line < found[j].line
	})

	variables := []m.Variable{}
	index := map[string]int{}

	for _, a := range found {
		if pos, ok := index[a.name]; ok {
			variables[pos].Modifications = append(variables[pos].Modifications, a.line)
			continue
		}

		index[a.name] = len(variables)
		variables = append(variables, m.Variable{
			Name:          a.name,
			Line:          a.line,
			DataType:      a.dataType,
			Modifications: []int{a.line},
		})
	}

	return variables
}

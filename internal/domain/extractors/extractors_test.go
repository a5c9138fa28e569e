package extractors

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

func loadSnippets(t *testing.T) map[string]string {
	t.Helper()

	archive, err := txtar.ParseFile("testdata/snippets.txtar")
	require.NoError(t, err)

	snippets := make(map[string]string, len(archive.Files))
	for _, f := range archive.Files {
		snippets[f.Name] = string(f.Data)
	}

	return snippets
}

func extract(t *testing.T, e Extractor, code string) m.Structure {
	t.Helper()

	s, err := Extract(context.Background(), e, code)
	require.NoError(t, err)

	return s
}

func TestComplexityClass(t *testing.T) {
	tests := []struct {
		depth int
		want  string
	}{
		{0, "O(1)"},
		{1, "O(n)"},
		{2, "O(n²)"},
		{3, "O(n³)"},
		{4, "O(n^4)"},
		{-1, "O(1)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ComplexityClass(tt.depth))
	}
}

func TestPython_Factorial(t *testing.T) {
	s := extract(t, NewPython(), loadSnippets(t)["factorial.py"])

	want := []m.Function{{
		Name:        "factorial",
		Params:      []string{"n"},
		Line:        1,
		IsRecursive: true,
		HasReturn:   true,
		Complexity:  "O(1)",
		Doc:         "Return n!.",
	}}
	if diff := cmp.Diff(want, s.Functions); diff != "" {
		t.Errorf("functions mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, s.Loops)
	assert.Equal(t, []m.Conditional{{Line: 3, Condition: "n <= 1"}}, s.Conditionals)
	assert.Empty(t, s.Variables)
}

func TestPython_Nested(t *testing.T) {
	s := extract(t, NewPython(), loadSnippets(t)["nested.py"])

	require.Len(t, s.Functions, 1)
	assert.Equal(t, []string{"items", "count"}, s.Functions[0].Params)
	assert.False(t, s.Functions[0].IsRecursive)
	assert.Equal(t, "O(n²)", s.Functions[0].Complexity)
	assert.Empty(t, s.Functions[0].Doc)

	wantLoops := []m.Loop{
		{Kind: m.LoopFor, Line: 3, Variable: "i", IterKind: "Call"},
		{Kind: m.LoopWhile, Line: 12, Condition: "total > 100"},
		{Kind: m.LoopFor, Line: 4, Variable: "j", IterKind: "Name", Depth: 1},
	}
	if diff := cmp.Diff(wantLoops, s.Loops); diff != "" {
		t.Errorf("loops mismatch (-want +got):\n%s", diff)
	}

	wantConds := []m.Conditional{
		{Line: 5, Condition: "i < j and j != 0", HasElse: true},
		{Line: 8, Condition: "i == j", HasElse: true},
		{Line: 6, Condition: "j > 10", Depth: 1},
	}
	if diff := cmp.Diff(wantConds, s.Conditionals); diff != "" {
		t.Errorf("conditionals mismatch (-want +got):\n%s", diff)
	}

	wantVars := []m.Variable{
		{Name: "total", Line: 2, DataType: "int", Modifications: []int{2, 7, 9, 13}},
	}
	if diff := cmp.Diff(wantVars, s.Variables); diff != "" {
		t.Errorf("variables mismatch (-want +got):\n%s", diff)
	}
}

func TestPython_PositionalParams(t *testing.T) {
	s := extract(t, NewPython(), loadSnippets(t)["params.py"])

	require.Len(t, s.Functions, 2)
	assert.Equal(t, "f", s.Functions[0].Name)
	assert.Equal(t, []string{"a", "b"}, s.Functions[0].Params)
	assert.Equal(t, "g", s.Functions[1].Name)
	assert.Equal(t, []string{"y", "z"}, s.Functions[1].Params)
	assert.False(t, s.Functions[1].HasReturn)
}

func TestPython_Variables(t *testing.T) {
	s := extract(t, NewPython(), loadSnippets(t)["straight.py"])

	want := []m.Variable{
		{Name: "x", Line: 1, DataType: "int", Modifications: []int{1}},
		{Name: "y", Line: 2, DataType: "str", Modifications: []int{2}},
		{Name: "z", Line: 3, DataType: "list", Modifications: []int{3}},
	}
	if diff := cmp.Diff(want, s.Variables); diff != "" {
		t.Errorf("variables mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, s.Loops)
	assert.Empty(t, s.Conditionals)
	assert.Empty(t, s.Functions)
}

func TestPython_InferType(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"v = {}", "dict"},
		{"v = {1, 2}", "set"},
		{"v = (1, 2)", "tuple"},
		{"v = 1.5", "float"},
		{"v = True", "bool"},
		{"v = None", "NoneType"},
		{"v = b'raw'", "bytes"},
		{"v = int('3')", "int"},
		{"v = sorted(a)", "object"},
		{"v = a + b", "unknown"},
		{"v = w = []", "list"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			s := extract(t, NewPython(), tt.code+"\n")
			require.NotEmpty(t, s.Variables)
			assert.Equal(t, "v", s.Variables[0].Name)
			assert.Equal(t, tt.want, s.Variables[0].DataType)
		})
	}
}

func TestPython_ChainedAssignment(t *testing.T) {
	s := extract(t, NewPython(), "a = b = 0\na: int = 3\na += 1\nc, d = 1, 2\n")

	require.Len(t, s.Variables, 2)
	assert.Equal(t, "a", s.Variables[0].Name)
	assert.Equal(t, []int{1}, s.Variables[0].Modifications)
	assert.Equal(t, "b", s.Variables[1].Name)
}

func TestPython_ConditionRendering(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"if x:\n    pass\n", "x"},
		{"if (a > b):\n    pass\n", "a > b"},
		{"if a < b < c:\n    pass\n", "a < b and a < c"},
		{"if a is not None:\n    pass\n", "a is not None"},
		{"if k not in seen:\n    pass\n", "k not in seen"},
		{"if a or b and c:\n    pass\n", "a or b and c"},
		{"if name == 'x':\n    pass\n", "name == 'x'"},
		{"if len(xs) > 0:\n    pass\n", "Call > 0"},
		{"if not done:\n    pass\n", "UnaryOp"},
		{"if self.ready:\n    pass\n", "Attribute"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			s := extract(t, NewPython(), tt.code)
			require.Len(t, s.Conditionals, 1)
			assert.Equal(t, tt.want, s.Conditionals[0].Condition)
		})
	}
}

func TestPython_Docstring(t *testing.T) {
	code := "def f():\n    '''\n    First line.\n\n        indented\n    '''\n    return 1\n"
	s := extract(t, NewPython(), code)

	require.Len(t, s.Functions, 1)
	assert.Equal(t, "First line.\n\n    indented", s.Functions[0].Doc)
}

func TestPython_ParseFailure(t *testing.T) {
	_, err := Extract(context.Background(), NewPython(), loadSnippets(t)["broken.py"])

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParseFailure))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, m.LanguagePython, parseErr.Language)
	assert.Positive(t, parseErr.Line)
}

func TestEmptyInput(t *testing.T) {
	for _, e := range []Extractor{NewPython(), NewJava(), NewCPP(), NewC()} {
		t.Run(e.Language().String(), func(t *testing.T) {
			s := extract(t, e, "")
			assert.True(t, s.IsEmpty())
			assert.Empty(t, s.Algorithm)
		})
	}
}

func TestExtract_Idempotent(t *testing.T) {
	snippets := loadSnippets(t)

	cases := map[string]Extractor{
		"nested.py":          NewPython(),
		"counter.java":       NewJava(),
		"binary_search.c":    NewC(),
		"bubble_sort.cpp":    NewCPP(),
		"binary_search.py":   NewPython(),
		"binary_search.java": NewJava(),
	}

	for name, e := range cases {
		t.Run(name, func(t *testing.T) {
			first := extract(t, e, snippets[name])
			second := extract(t, e, snippets[name])

			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("second extraction differs (-first +second):\n%s", diff)
			}
		})
	}
}

func TestJava_Counter(t *testing.T) {
	s := extract(t, NewJava(), loadSnippets(t)["counter.java"])

	wantFuncs := []m.Function{
		{
			Name:        "count",
			Params:      []string{"values", "limit"},
			ParamTypes:  []string{"int[]", "int"},
			Line:        2,
			IsRecursive: true, // the name reappears in main
			HasReturn:   true,
			Complexity:  "O(n)",
		},
		{
			Name:       "main",
			Params:     []string{"args"},
			ParamTypes: []string{"String[]"},
			Line:       18,
			Complexity: "O(1)",
		},
	}
	if diff := cmp.Diff(wantFuncs, s.Functions); diff != "" {
		t.Errorf("functions mismatch (-want +got):\n%s", diff)
	}

	wantLoops := []m.Loop{
		{Kind: m.LoopFor, Line: 5, Variable: "i", Start: "0", End: "limit"},
		{Kind: m.LoopWhile, Line: 12, Condition: "total > 100"},
	}
	if diff := cmp.Diff(wantLoops, s.Loops); diff != "" {
		t.Errorf("loops mismatch (-want +got):\n%s", diff)
	}

	wantConds := []m.Conditional{
		{Line: 6, Condition: "values[i] > 0", HasElse: true},
		{Line: 7, Condition: "limit > 1", HasElse: true, Depth: 1},
	}
	if diff := cmp.Diff(wantConds, s.Conditionals); diff != "" {
		t.Errorf("conditionals mismatch (-want +got):\n%s", diff)
	}

	wantVars := []m.Variable{
		{Name: "total", Line: 3, DataType: "int", Modifications: []int{3, 19}},
		{Name: "i", Line: 4, DataType: "int", Modifications: []int{4}},
	}
	if diff := cmp.Diff(wantVars, s.Variables); diff != "" {
		t.Errorf("variables mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, s.Algorithm)
}

func TestCPP_BubbleSort(t *testing.T) {
	s := extract(t, NewCPP(), loadSnippets(t)["bubble_sort.cpp"])

	names := make([]string, 0, len(s.Functions))
	for _, f := range s.Functions {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{"bubbleSort", "printArray", "main"}, names)
	assert.Equal(t, []string{"arr"}, s.Functions[0].Params)
	assert.Equal(t, []string{"std::vector<int>"}, s.Functions[0].ParamTypes)
	assert.Equal(t, "O(n²)", s.Functions[0].Complexity)
	assert.Equal(t, []string{"arr"}, s.Functions[1].Params)
	assert.Equal(t, "O(n)", s.Functions[1].Complexity)
	assert.Empty(t, s.Functions[2].Params)

	// Only the header with a plain bound is recognized as a counted loop.
	require.Len(t, s.Loops, 1)
	assert.Equal(t, "i", s.Loops[0].Variable)
	assert.Equal(t, "n", s.Loops[0].End)

	types := map[string]string{}
	for _, v := range s.Variables {
		types[v.Name] = v.DataType
	}

	assert.Equal(t, "int", types["n"])
	assert.Equal(t, "bool", types["swapped"])
}

func TestC_BinarySearch(t *testing.T) {
	s := extract(t, NewC(), loadSnippets(t)["binary_search.c"])

	require.Len(t, s.Functions, 2)
	assert.Equal(t, "binarySearch", s.Functions[0].Name)
	assert.Equal(t, []string{"arr[]", "left", "right", "target"}, s.Functions[0].Params)
	assert.True(t, s.Functions[0].IsRecursive)
	assert.Equal(t, "O(n)", s.Functions[0].Complexity)
	assert.Equal(t, "main", s.Functions[1].Name)
	assert.False(t, s.Functions[1].IsRecursive)

	assert.Equal(t, AlgoBinarySearch, s.Algorithm)
}

func TestPattern_ControlFlowHeadersAreNotFunctions(t *testing.T) {
	code := `static int clamp(int x, int lo, int hi) {
    if (x < lo) {
        return lo;
    } else if (x > hi) {
        return hi;
    }
    for (int i = 0; i < 3; i++) {
        while (x > hi) {
            x--;
        }
    }
    switch (x) {
    default:
        return x;
    }
}
`

	for _, e := range []Extractor{NewC(), NewCPP(), NewJava()} {
		t.Run(e.Language().String(), func(t *testing.T) {
			s := extract(t, e, code)

			names := make([]string, 0, len(s.Functions))
			for _, f := range s.Functions {
				names = append(names, f.Name)
			}

			assert.Equal(t, []string{"clamp"}, names)
			assert.Len(t, s.Conditionals, 2)
		})
	}
}

func TestIdentifyAlgorithm(t *testing.T) {
	snippets := loadSnippets(t)

	tests := []struct {
		name string
		e    Extractor
		code string
		want string
	}{
		{"python binary search", NewPython(), snippets["binary_search.py"], AlgoBinarySearch},
		{"java binary search", NewJava(), snippets["binary_search.java"], AlgoBinarySearch},
		{"c binary search", NewC(), snippets["binary_search.c"], AlgoBinarySearch},
		{"case insensitive", NewPython(), "# Greedy choice\n", AlgoGreedy},
		{"python dfs", NewPython(), "stack.append(n); stack.pop()", AlgoDFS},
		{"java bfs", NewJava(), "queue.offer(s); queue.poll();", AlgoBFS},
		{"c dp", NewC(), "dp[i][j] = 0;", AlgoDynamicProgramming},
		{"first match wins", NewPython(), "mid low high partition pivot", AlgoBinarySearch},
		{"none", NewCPP(), "int main() { return 0; }", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.e.IdentifyAlgorithm(tt.code))
		})
	}
}

func signatureNames(table signatureTable) []string {
	names := make([]string, len(table))
	for i, sig := range table {
		names[i] = sig.name
	}

	return names
}

func TestSignatureTables_ShareVocabulary(t *testing.T) {
	assert.Equal(t, signatureNames(pythonSignatures), signatureNames(javaSignatures))
	assert.Equal(t, signatureNames(pythonSignatures), signatureNames(clikeSignatures))
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()

	assert.Equal(t, []m.Language{m.LanguageCPP, m.LanguageC, m.LanguageJava, m.LanguagePython}, r.Languages())

	for _, lang := range r.Languages() {
		e, ok := r.Get(lang)
		require.True(t, ok)
		assert.Equal(t, lang, e.Language())
	}

	_, ok := r.Get(m.LanguageUnknown)
	assert.False(t, ok)
}

func TestPatternParse_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewJava().Parse(ctx, "int x = 1;")
	assert.ErrorIs(t, err, context.Canceled)
}

package extractors

import (
	"regexp"
	"strings"

	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

var (
	cppFunctionPattern = regexp.MustCompile(`(?:(?:inline|static|constexpr|virtual)\s+)?(?:\w+\s+)?(\w+)\s*\((.*?)\)\s*(?:const)?\s*{`)
	cppVarInitPattern  = regexp.MustCompile(`\b(int|float|double|long|string|bool|char|auto|size_t|unsigned|short)\s+(\w+)\s*(?:\[\s*\d+\s*\])?\s*=\s*(.+?);`)
	cppVarDeclPattern  = regexp.MustCompile(`\b(int|float|double|long|string|bool|char|auto|size_t|unsigned|short)\s+(\w+)\s*(?:\[\s*\d+\s*\])?\s*;`)
)

// NewCPP returns the C++ extractor.
func NewCPP() Extractor {
	return &patternExtractor{dialect{
		language:   m.LanguageCPP,
		function:   cppFunctionPattern,
		params:     func(raw string) ([]string, []string) { return clikeParams(raw, "*&") },
		varInit:    cppVarInitPattern,
		varDecl:    cppVarDeclPattern,
		signatures: clikeSignatures,
	}}
}

// clikeParams takes the last field of each declaration as the name, minus
// the pointer/reference markers in strip. The fields before it form the type.
func clikeParams(raw, strip string) ([]string, []string) {
	names, types := []string{}, []string{}
	if strings.TrimSpace(raw) == "" || raw == "void" {
		return names, types
	}

	for _, param := range strings.Split(raw, ",") {
		fields := strings.Fields(param)
		if len(fields) < 2 {
			continue
		}

		last := len(fields) - 1
		name := strings.Map(func(r rune) rune {
			if strings.ContainsRune(strip, r) {
				return -1
			}

			return r
		}, fields[last])

		names = append(names, name)
		types = append(types, strings.Join(fields[:last], " "))
	}

	return names, types
}

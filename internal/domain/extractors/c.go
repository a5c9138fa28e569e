package extractors

import (
	"regexp"

	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

var (
	cFunctionPattern = regexp.MustCompile(`(?:static\s+)?(?:\w+\s+)?(\w+)\s*\((.*?)\)\s*{`)
	cVarInitPattern  = regexp.MustCompile(`\b(int|float|double|long|char|unsigned|short|size_t)\s+(\w+)\s*(?:\[\s*\d+\s*\])?\s*=\s*(.+?);`)
	cVarDeclPattern  = regexp.MustCompile(`\b(int|float|double|long|char|unsigned|short|size_t)\s+(\w+)\s*(?:\[\s*\d+\s*\])?\s*;`)
)

// NewC returns the C extractor.
func NewC() Extractor {
	return &patternExtractor{dialect{
		language:   m.LanguageC,
		function:   cFunctionPattern,
		params:     func(raw string) ([]string, []string) { return clikeParams(raw, "*") },
		varInit:    cVarInitPattern,
		varDecl:    cVarDeclPattern,
		signatures: clikeSignatures,
	}}
}

package extractors

import (
	"regexp"
	"strings"

	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

var (
	javaMethodPattern  = regexp.MustCompile(`(?:public|private|protected)?\s+(?:static\s+)?(?:\w+(?:<.+>)?)\s+(\w+)\s*\((.*?)\)`)
	javaVarInitPattern = regexp.MustCompile(`\b(int|float|double|long|String|boolean|char|byte|short)\s+(\w+)\s*=\s*(.+?);`)
	javaVarDeclPattern = regexp.MustCompile(`\b(int|float|double|long|String|boolean|char|byte|short)\s+(\w+)\s*;`)
)

// NewJava returns the Java extractor.
func NewJava() Extractor {
	return &patternExtractor{dialect{
		language:   m.LanguageJava,
		function:   javaMethodPattern,
		params:     javaParams,
		varInit:    javaVarInitPattern,
		varDecl:    javaVarDeclPattern,
		signatures: javaSignatures,
	}}
}

// javaParams reads "type name" pairs; anything shorter is dropped.
func javaParams(raw string) ([]string, []string) {
	names, types := []string{}, []string{}
	if strings.TrimSpace(raw) == "" {
		return names, types
	}

	for _, param := range strings.Split(raw, ",") {
		fields := strings.Fields(param)
		if len(fields) < 2 {
			continue
		}

		types = append(types, fields[0])
		names = append(names, fields[1])
	}

	return names, types
}

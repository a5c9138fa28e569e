package domain

import (
	"strings"

	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

var (
	cppMarkers  = []string{"std::", "namespace", "class ", "cout", "cin", "vector<", "template <", "<iostream>"}
	cMarkers    = []string{"<stdio.h>", "<stdlib.h>", "<string.h>", "typedef struct", "printf", "scanf", "#define"}
	javaMarkers = []string{"public class", "public static void main", "extends", "implements"}
)

func containsAny(code string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(code, marker) {
			return true
		}
	}

	return false
}

// DetectLanguage guesses the language of code from keyword and include
// markers. Rules are checked in a fixed order and the first match wins, so
// C++ is tried before C and Java before Python.
func DetectLanguage(code string) m.Language {
	hasInclude := strings.Contains(code, "#include")

	switch {
	case hasInclude && containsAny(code, cppMarkers):
		return m.LanguageCPP
	case hasInclude && containsAny(code, cMarkers):
		return m.LanguageC
	case containsAny(code, javaMarkers):
		return m.LanguageJava
	case strings.Contains(code, "def ") && strings.Contains(code, ":"),
		strings.Contains(code, "import "),
		strings.Contains(code, "class ") && strings.Contains(code, ":"):
		return m.LanguagePython
	default:
		return m.LanguageUnknown
	}
}

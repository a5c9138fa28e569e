package model

import "fmt"

// Language identifies the source language of a code snippet.
type Language string

const (
	// LanguagePython is parsed into a real syntax tree.
	LanguagePython Language = "python"
	// LanguageJava is scanned line by line with regular expressions.
	LanguageJava Language = "java"
	// LanguageCPP is scanned line by line with regular expressions.
	LanguageCPP Language = "cpp"
	// LanguageC is scanned line by line with regular expressions.
	LanguageC Language = "c"
	// LanguageUnknown is returned when no detection rule matched.
	LanguageUnknown Language = "unknown"
)

// Languages lists the supported languages in detection priority order.
var Languages = []Language{LanguageCPP, LanguageC, LanguageJava, LanguagePython}

// IsValid reports whether the language has an extractor.
func (l Language) IsValid() bool {
	switch l {
	case LanguagePython, LanguageJava, LanguageCPP, LanguageC:
		return true
	default:
		return false
	}
}

func (l Language) String() string {
	return string(l)
}

// ParseLanguage converts a string to a Language.
func ParseLanguage(s string) (Language, error) {
	lang := Language(s)
	if !lang.IsValid() {
		return LanguageUnknown, fmt.Errorf("unsupported language: %s", s)
	}

	return lang, nil
}

// LanguageForExtension maps a file extension (with the leading dot) to a
// language. Unknown extensions map to LanguageUnknown.
func LanguageForExtension(ext string) Language {
	switch ext {
	case ".py":
		return LanguagePython
	case ".java":
		return LanguageJava
	case ".cpp", ".cc", ".cxx", ".hpp":
		return LanguageCPP
	case ".c", ".h":
		return LanguageC
	default:
		return LanguageUnknown
	}
}

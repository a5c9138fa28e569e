// Package extractors turns raw source code into structural records:
// functions, loops, conditionals, variables and a best-guess algorithm label.
//
// Python is parsed into a concrete syntax tree. Java, C++ and C are scanned
// line by line with regular expressions, which is approximate by nature: a
// malformed snippet yields fewer elements, never an error.
package extractors

import (
	"context"
	"errors"
	"fmt"

	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

// ErrParseFailure is matched by every *ParseError.
var ErrParseFailure = errors.New("parse failure")

// ParseError reports a syntax error found by a grammar-aware extractor.
type ParseError struct {
	Language m.Language
	Line     int
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: syntax error near line %d", e.Language, e.Line)
	}

	return fmt.Sprintf("%s: syntax error", e.Language)
}

// Is makes errors.Is(err, ErrParseFailure) true for any *ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParseFailure
}

// Tree is the parsed form of one snippet. Every accessor derives a fresh
// slice; callers may keep or modify what they get back.
type Tree interface {
	Functions() []m.Function
	Loops() []m.Loop
	Conditionals() []m.Conditional
	Variables() []m.Variable
}

// Extractor is the capability set implemented once per language.
type Extractor interface {
	Language() m.Language
	Parse(ctx context.Context, code string) (Tree, error)
	// IdentifyAlgorithm returns the first algorithm whose signature matches
	// code, or "" when none does.
	IdentifyAlgorithm(code string) string
}

// Extract parses code with e and collects every structural element.
func Extract(ctx context.Context, e Extractor, code string) (m.Structure, error) {
	tree, err := e.Parse(ctx, code)
	if err != nil {
		return m.Structure{Language: e.Language()}, err
	}

	return m.Structure{
		Language:     e.Language(),
		Functions:    tree.Functions(),
		Loops:        tree.Loops(),
		Conditionals: tree.Conditionals(),
		Variables:    tree.Variables(),
		Algorithm:    e.IdentifyAlgorithm(code),
	}, nil
}

// Package controller renders generator results on the terminal and asks
// the user to choose samples.
package controller

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

// Pick errors.
var (
	ErrNoOptions        = errors.New("nothing to choose from")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrPickCancelled    = errors.New("selection cancelled")
)

// UI defines how workflow results reach the user. Implementations can use
// different output methods (plain text, interactive terminal).
type UI interface {
	DisplayQuestions(ctx context.Context, title string, questions []m.Question) error
	DisplayQuiz(ctx context.Context, quiz m.Quiz) error
	DisplayExplanation(ctx context.Context, explanation string) error
	DisplayMetrics(ctx context.Context, metrics m.Metrics) error
	DisplayBatch(ctx context.Context, reports []m.SampleReport) error
	DisplayDistribution(ctx context.Context, distribution m.Distribution) error
	DisplayTestReport(ctx context.Context, report m.TestReport) error
	DisplaySaved(ctx context.Context, paths []m.Path)
	// Pick asks the user to choose one of options and returns its index.
	Pick(ctx context.Context, title string, options []string) (int, error)
}

// NewUI returns the interactive UI on a terminal and the plain one
// otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewInteractiveUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

package controller

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

// SimpleUI implements UI by printing through the cobra command.
type SimpleUI struct {
	cmd *cobra.Command
	in  *bufio.Reader
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	passColor    = color.New(color.FgGreen)
	failColor    = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow)
)

func tierColor(tier m.Tier) *color.Color {
	switch tier {
	case m.TierBeginner:
		return color.New(color.FgGreen)
	case m.TierIntermediate:
		return color.New(color.FgYellow)
	case m.TierAdvanced:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgWhite)
	}
}

// DisplayQuestions prints a numbered question list.
func (s *SimpleUI) DisplayQuestions(ctx context.Context, title string, questions []m.Question) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if title != "" {
		s.printf("%s\n", headingColor.Sprintf("====== %s ======", title))
	}

	if len(questions) == 0 {
		s.printf("%s\n", warnColor.Sprint("No questions could be generated."))
		return nil
	}

	for i, q := range questions {
		s.printf("%d. [%s] %s\n", i+1, tierColor(q.Tier).Sprint(q.Tier), q.Text)
	}

	return nil
}

// DisplayQuiz prints the quiz header and its questions.
func (s *SimpleUI) DisplayQuiz(ctx context.Context, quiz m.Quiz) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Language: %s\nAlgorithm: %s\nQuestions: %d\n\n", quiz.Language, quiz.Algorithm, quiz.NumQuestions)

	return s.DisplayQuestions(ctx, "Quiz", quiz.Questions)
}

// DisplayExplanation prints a code explanation.
func (s *SimpleUI) DisplayExplanation(ctx context.Context, explanation string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n%s\n", headingColor.Sprint("====== Code Explanation ======"), strings.TrimRight(explanation, "\n"))

	return nil
}

// DisplayMetrics prints code-quality metrics as a two-column table.
func (s *SimpleUI) DisplayMetrics(ctx context.Context, metrics m.Metrics) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n%s", headingColor.Sprint("====== Code Quality Metrics ======"), renderMetricsTable(metrics))

	return nil
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func renderMetricsTable(metrics m.Metrics) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Metric", "Value"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	table.AppendBulk([][]string{
		{"language", string(metrics.Language)},
		{"num_functions", strconv.Itoa(metrics.NumFunctions)},
		{"num_loops", strconv.Itoa(metrics.NumLoops)},
		{"num_conditionals", strconv.Itoa(metrics.NumConditionals)},
		{"num_variables", strconv.Itoa(metrics.NumVariables)},
		{"line_count", strconv.Itoa(metrics.LineCount)},
		{"complexity", metrics.Complexity},
	})
	table.Render()

	return tableBuffer.String()
}

// DisplayBatch prints one row per processed sample.
func (s *SimpleUI) DisplayBatch(ctx context.Context, reports []m.SampleReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderBatchTable(reports))

	return nil
}

func renderBatchTable(reports []m.SampleReport) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Sample", "Algorithm", "Language", "Questions", "Status"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
	})

	total := 0
	failed := 0

	for _, r := range reports {
		status := "ok"
		if r.Err != "" {
			status = r.Err
			failed++
		}

		total += r.NumQuestions

		table.Append([]string{
			filepath.Base(string(r.Sample.Path)), r.Algorithm, string(r.Language),
			strconv.Itoa(r.NumQuestions), status,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Samples %d", len(reports)), "", "",
		strconv.Itoa(total), fmt.Sprintf("%d failed", failed),
	})
	table.Render()

	return tableBuffer.String()
}

// DisplayDistribution prints the questions per cognitive level.
func (s *SimpleUI) DisplayDistribution(ctx context.Context, distribution m.Distribution) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Bloom's level distribution over %d file(s):\n\n%s", distribution.Files, renderDistributionTable(distribution))

	return nil
}

func renderDistributionTable(distribution m.Distribution) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Bloom Level", "Count", "Percent"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, row := range distribution.Rows {
		table.Append([]string{string(row.Level), strconv.Itoa(row.Count), fmt.Sprintf("%.1f%%", row.Percent)})
	}

	table.SetFooter([]string{"Total", strconv.Itoa(distribution.Total), ""})
	table.Render()

	return tableBuffer.String()
}

// DisplayTestReport prints one line per test case and a summary.
func (s *SimpleUI) DisplayTestReport(ctx context.Context, report m.TestReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if report.Error != "" {
		s.printf("%s\n", failColor.Sprint(report.Error))
		return nil
	}

	for _, r := range report.Results {
		mark := passColor.Sprint("PASS")
		if r.Status != m.TestPassed {
			mark = failColor.Sprint(strings.ToUpper(r.Status.String()))
		}

		s.printf("%s %s: %s\n", mark, r.TestID, r.Message)
	}

	s.printf("\n%d tests: %d passed, %d failed, %d errors, %d timeouts\n",
		report.Total, report.Passed, report.Failed, report.Errors, report.Timeouts)

	return nil
}

// DisplaySaved lists the files written by a command.
func (s *SimpleUI) DisplaySaved(ctx context.Context, paths []m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	if len(paths) == 0 {
		return
	}

	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = string(p)
	}

	s.printf("\nQuestions saved to: %s\n", strings.Join(names, " and "))
}

// Pick prints the options numbered from 1 and reads the choice from the
// command's input.
func (s *SimpleUI) Pick(ctx context.Context, title string, options []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}

	if len(options) == 0 {
		return -1, ErrNoOptions
	}

	s.printf("\n%s:\n", title)

	for i, option := range options {
		s.printf("  %d. %s\n", i+1, option)
	}

	s.printf("\nEnter a number (1-%d): ", len(options))

	if s.in == nil {
		s.in = bufio.NewReader(s.cmd.InOrStdin())
	}

	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return -1, fmt.Errorf("%w: no input", ErrInvalidSelection)
	}

	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || choice < 1 || choice > len(options) {
		return -1, fmt.Errorf("%w: %q", ErrInvalidSelection, strings.TrimSpace(line))
	}

	return choice - 1, nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

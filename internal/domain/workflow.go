package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jalshboul/template-based-question-generation/internal/adapter"
	"github.com/jalshboul/template-based-question-generation/internal/controller"
	"github.com/jalshboul/template-based-question-generation/internal/domain/extractors"
	m "github.com/jalshboul/template-based-question-generation/internal/model"
	"github.com/jalshboul/template-based-question-generation/pkg"
)

// Workflow errors.
var (
	ErrTestsFailed      = errors.New("tests failed")
	ErrNoTestCases      = errors.New("no test cases found")
	ErrNoSamples        = errors.New("no code samples found")
	ErrNoQuestionFiles  = errors.New("no question files found")
	errNothingGenerated = errors.New("no questions generated")
)

const questionsFileSuffix = "_questions"

// GenerateArgs contains the arguments for generating questions for one file.
type GenerateArgs struct {
	Path    m.Path
	Count   int
	Tier    m.Tier
	Mixed   bool
	Counts  TierCounts
	Seed    int64
	Outputs []m.Path
}

// QuizArgs contains the arguments for building a quiz.
type QuizArgs struct {
	Path   m.Path
	Count  int
	Mixed  bool
	Seed   int64
	Output m.Path
}

// ExplainArgs contains the arguments for explaining a file.
type ExplainArgs struct {
	Path   m.Path
	Output m.Path
}

// BatchArgs contains the arguments for regenerating the questions of every
// sample below a directory.
type BatchArgs struct {
	Root     m.Path
	Count    int
	Tier     m.Tier
	Threads  int
	Formats  []adapter.Format
	Seed     int64
	SpillDir string
}

// StatsArgs contains the arguments for the cognitive-level distribution.
type StatsArgs struct {
	Root   m.Path
	Format adapter.Format
	Output m.Path
}

// TestArgs contains the arguments for running unit tests against a file.
// An empty Cases path selects the <stem>_tests.yaml next to the file.
type TestArgs struct {
	Path   m.Path
	Cases  m.Path
	Output m.Path
}

// PickArgs contains the arguments of the interactive flow.
type PickArgs struct {
	Root    m.Path
	Counts  TierCounts
	Seed    int64
	Formats []adapter.Format
}

// Workflow is the CLI-facing orchestration of the question generator.
type Workflow interface {
	Generate(ctx context.Context, args GenerateArgs) error
	Quiz(ctx context.Context, args QuizArgs) error
	Explain(ctx context.Context, args ExplainArgs) error
	Batch(ctx context.Context, args BatchArgs) error
	Stats(ctx context.Context, args StatsArgs) error
	Test(ctx context.Context, args TestArgs) error
	Pick(ctx context.Context, args PickArgs) error
}

// GeneratorFactory creates a Generator for one unit of work. A zero seed
// means unseeded.
type GeneratorFactory func(seed int64) Generator

// DefaultGeneratorFactory builds generators with the default extractors and
// templates.
func DefaultGeneratorFactory(seed int64) Generator {
	if seed == 0 {
		return NewGenerator()
	}

	return NewGenerator(WithSeed(seed))
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.QuestionStore
	adapter.TestCaseLoader
	controller.UI
	TestRunner

	newGenerator GeneratorFactory
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	questionStore adapter.QuestionStore,
	testCaseLoader adapter.TestCaseLoader,
	ui controller.UI,
	testRunner TestRunner,
	newGenerator GeneratorFactory,
) Workflow {
	if newGenerator == nil {
		newGenerator = DefaultGeneratorFactory
	}

	return &workflow{
		SourceFSAdapter: fsAdapter,
		QuestionStore:   questionStore,
		TestCaseLoader:  testCaseLoader,
		UI:              ui,
		TestRunner:      testRunner,
		newGenerator:    newGenerator,
	}
}

func (w *workflow) readCode(ctx context.Context, path m.Path) (string, error) {
	content, err := w.ReadFile(ctx, path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return string(content), nil
}

func (w *workflow) Generate(ctx context.Context, args GenerateArgs) error {
	code, err := w.readCode(ctx, args.Path)
	if err != nil {
		return err
	}

	generator := w.newGenerator(args.Seed)

	var questions []m.Question
	if args.Mixed {
		questions, err = generator.GenerateMixedTierQuestions(ctx, code, args.Counts)
	} else {
		questions, err = generator.GenerateQuestions(ctx, code, args.Count, args.Tier)
	}

	if err != nil {
		return fmt.Errorf("generate questions for %s: %w", args.Path, err)
	}

	if err := w.DisplayQuestions(ctx, "Generated Questions", questions); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	for _, output := range args.Outputs {
		if err := w.SaveQuestions(ctx, output, questions); err != nil {
			return fmt.Errorf("save questions: %w", err)
		}
	}

	w.DisplaySaved(ctx, args.Outputs)

	return nil
}

func (w *workflow) Quiz(ctx context.Context, args QuizArgs) error {
	code, err := w.readCode(ctx, args.Path)
	if err != nil {
		return err
	}

	quiz, err := w.newGenerator(args.Seed).GenerateQuiz(ctx, code, args.Count, args.Mixed)
	if err != nil {
		return fmt.Errorf("generate quiz for %s: %w", args.Path, err)
	}

	if err := w.DisplayQuiz(ctx, quiz); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if args.Output == "" {
		return nil
	}

	if format, _ := adapter.FormatOf(args.Output); format == adapter.FormatCSV {
		err = w.SaveQuestions(ctx, args.Output, quiz.Questions)
	} else {
		err = w.SaveDocument(ctx, args.Output, quiz)
	}

	if err != nil {
		return fmt.Errorf("save quiz: %w", err)
	}

	w.DisplaySaved(ctx, []m.Path{args.Output})

	return nil
}

type codeExplanation struct {
	Explanation string     `json:"explanation" yaml:"explanation"`
	Metrics     *m.Metrics `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// explain displays the explanation and, when the code parses, its metrics.
func (w *workflow) explain(ctx context.Context, generator Generator, code string) (codeExplanation, error) {
	text, err := generator.ExplainCode(ctx, code)
	if err != nil {
		return codeExplanation{}, fmt.Errorf("explain: %w", err)
	}

	if err := w.DisplayExplanation(ctx, text); err != nil {
		return codeExplanation{}, fmt.Errorf("display: %w", err)
	}

	result := codeExplanation{Explanation: text}

	metrics, err := generator.EvaluateCodeQuality(ctx, code)
	if errors.Is(err, extractors.ErrParseFailure) {
		slog.Warn("Skipping metrics for unparsable code", "error", err)
		return result, nil
	}

	if err != nil {
		return codeExplanation{}, fmt.Errorf("evaluate code quality: %w", err)
	}

	if err := w.DisplayMetrics(ctx, metrics); err != nil {
		return codeExplanation{}, fmt.Errorf("display: %w", err)
	}

	result.Metrics = &metrics

	return result, nil
}

func (w *workflow) Explain(ctx context.Context, args ExplainArgs) error {
	code, err := w.readCode(ctx, args.Path)
	if err != nil {
		return err
	}

	result, err := w.explain(ctx, w.newGenerator(0), code)
	if err != nil {
		return err
	}

	if args.Output == "" {
		return nil
	}

	if err := w.SaveDocument(ctx, args.Output, result); err != nil {
		return fmt.Errorf("save explanation: %w", err)
	}

	w.DisplaySaved(ctx, []m.Path{args.Output})

	return nil
}

// questionsPath names the persisted question set of a sample:
// <dir>/<algorithm>_<stem>_questions.<format>.
func (w *workflow) questionsPath(ctx context.Context, dir, algorithm string, sample m.Path, format adapter.Format) m.Path {
	base := filepath.Base(string(sample))
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	return w.JoinPath(ctx, dir, fmt.Sprintf("%s_%s%s.%s", algorithm, stem, questionsFileSuffix, format))
}

func (w *workflow) saveSampleQuestions(
	ctx context.Context, sample m.Sample, dir string, questions []m.Question, formats []adapter.Format,
) ([]m.Path, error) {
	saved := make([]m.Path, 0, len(formats))

	for _, format := range formats {
		path := w.questionsPath(ctx, dir, sample.Algorithm, sample.Path, format)
		if err := w.SaveQuestions(ctx, path, questions); err != nil {
			return saved, err
		}

		saved = append(saved, path)
	}

	return saved, nil
}

func sampleSeed(seed int64, index int) int64 {
	if seed == 0 {
		return 0
	}

	return seed + int64(index)
}

func (w *workflow) generateSample(ctx context.Context, sample m.Sample, index int, args BatchArgs) m.SampleReport {
	report := m.SampleReport{Sample: sample, Algorithm: sample.Algorithm, Language: sample.Language}

	code, err := w.readCode(ctx, sample.Path)
	if err != nil {
		report.Err = err.Error()
		return report
	}

	generator := w.newGenerator(sampleSeed(args.Seed, index))
	report.Language = generator.DetectLanguage(code)

	questions, err := generator.GenerateQuestions(ctx, code, args.Count, args.Tier)
	if err != nil {
		report.Err = err.Error()
		return report
	}

	if len(questions) == 0 {
		report.Err = errNothingGenerated.Error()
		return report
	}

	report.Questions = questions
	report.NumQuestions = len(questions)

	return report
}

func (w *workflow) Batch(ctx context.Context, args BatchArgs) error {
	samples, err := w.ListSamples(ctx, args.Root)
	if err != nil {
		return fmt.Errorf("list samples: %w", err)
	}

	if len(samples) == 0 {
		return fmt.Errorf("%w in %s", ErrNoSamples, args.Root)
	}

	spill, err := pkg.NewSpill[m.SampleReport](args.SpillDir)
	if err != nil {
		return fmt.Errorf("create spill: %w", err)
	}

	defer func() {
		if closeErr := spill.Close(); closeErr != nil {
			slog.Warn("Failed to close spill", "path", spill.Path(), "error", closeErr)
		}
	}()

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Threads > 0 {
		group.SetLimit(args.Threads)
	}

	for i, sample := range samples {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			report := w.generateSample(groupCtx, sample, i, args)
			if report.Err != "" {
				slog.Warn("Question generation failed", "sample", sample.Path, "error", report.Err)
			}

			return spill.Append(report)
		})
	}

	if err := group.Wait(); err != nil {
		return fmt.Errorf("generate batch: %w", err)
	}

	reports := make([]m.SampleReport, 0, spill.Len())

	err = spill.Range(func(_ uint64, report m.SampleReport) error {
		if report.Err == "" {
			dir := filepath.Dir(string(report.Sample.Path))

			saved, saveErr := w.saveSampleQuestions(ctx, report.Sample, dir, report.Questions, args.Formats)
			if saveErr != nil {
				report.Err = saveErr.Error()
			}

			report.Saved = saved
		}

		report.Questions = nil
		reports = append(reports, report)

		return nil
	})
	if err != nil {
		return fmt.Errorf("persist batch: %w", err)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Sample.Path < reports[j].Sample.Path
	})

	slog.Info("Batch finished", "root", args.Root, "samples", len(reports))

	return w.DisplayBatch(ctx, reports)
}

func (w *workflow) Stats(ctx context.Context, args StatsArgs) error {
	format := args.Format
	if format == "" {
		format = adapter.FormatCSV
	}

	suffix := questionsFileSuffix + "." + string(format)

	var files []m.Path

	err := w.Walk(ctx, args.Root, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && strings.HasSuffix(info.Name(), suffix) {
			files = append(files, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", args.Root, err)
	}

	if len(files) == 0 {
		return fmt.Errorf("%w: no *%s under %s", ErrNoQuestionFiles, suffix, args.Root)
	}

	var questions []m.Question

	for _, file := range files {
		loaded, err := w.LoadQuestions(ctx, file)
		if err != nil {
			return fmt.Errorf("load questions: %w", err)
		}

		questions = append(questions, loaded...)
	}

	distribution := Distribute(len(files), questions)

	if err := w.DisplayDistribution(ctx, distribution); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if args.Output != "" {
		if err := w.SaveDocument(ctx, args.Output, distribution); err != nil {
			return fmt.Errorf("save distribution: %w", err)
		}
	}

	return nil
}

func (w *workflow) Test(ctx context.Context, args TestArgs) error {
	code, err := w.readCode(ctx, args.Path)
	if err != nil {
		return err
	}

	casesPath := args.Cases
	if casesPath == "" {
		casesPath, err = w.DetectTestCases(ctx, args.Path)
		if err != nil {
			return fmt.Errorf("detect test cases: %w", err)
		}

		if casesPath == "" {
			return fmt.Errorf("%w for %s", ErrNoTestCases, args.Path)
		}
	}

	cases, err := w.LoadTestCases(ctx, casesPath)
	if err != nil {
		return err
	}

	report := w.RunTests(ctx, code, cases)

	if err := w.DisplayTestReport(ctx, report); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if args.Output != "" {
		if err := w.SaveDocument(ctx, args.Output, report); err != nil {
			return fmt.Errorf("save test report: %w", err)
		}
	}

	if report.Error != "" {
		return fmt.Errorf("%w: %s", ErrTestsFailed, report.Error)
	}

	if report.Passed != report.Total {
		return fmt.Errorf("%w: %d of %d passed", ErrTestsFailed, report.Passed, report.Total)
	}

	return nil
}

func (w *workflow) Pick(ctx context.Context, args PickArgs) error {
	algorithms, err := w.ListAlgorithms(ctx, args.Root)
	if err != nil {
		return err
	}

	if len(algorithms) == 0 {
		return fmt.Errorf("%w in %s", ErrNoSamples, args.Root)
	}

	choice, err := w.UI.Pick(ctx, "Select an algorithm", algorithms)
	if err != nil {
		return err
	}

	algorithm := algorithms[choice]
	algorithmDir := string(w.JoinPath(ctx, string(args.Root), algorithm))

	samples, err := w.ListSamples(ctx, m.Path(algorithmDir))
	if err != nil {
		return fmt.Errorf("list samples: %w", err)
	}

	if len(samples) == 0 {
		return fmt.Errorf("%w in %s", ErrNoSamples, algorithmDir)
	}

	names := make([]string, len(samples))
	for i, s := range samples {
		names[i], _ = filepath.Rel(algorithmDir, string(s.Path))
	}

	choice, err = w.UI.Pick(ctx, "Select an implementation", names)
	if err != nil {
		return err
	}

	sample := samples[choice]
	sample.Algorithm = algorithm

	code, err := w.readCode(ctx, sample.Path)
	if err != nil {
		return err
	}

	generator := w.newGenerator(args.Seed)

	questions, err := generator.GenerateMixedTierQuestions(ctx, code, args.Counts)
	if err != nil {
		return fmt.Errorf("generate questions for %s: %w", sample.Path, err)
	}

	if err := w.DisplayQuestions(ctx, "Generated Questions", questions); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	saved, err := w.saveSampleQuestions(ctx, sample, algorithmDir, questions, args.Formats)
	if err != nil {
		return fmt.Errorf("save questions: %w", err)
	}

	w.DisplaySaved(ctx, saved)

	_, err = w.explain(ctx, generator, code)

	return err
}

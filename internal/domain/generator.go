package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/jalshboul/template-based-question-generation/internal/domain/extractors"
	"github.com/jalshboul/template-based-question-generation/internal/domain/templates"
	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

// ErrUnsupportedLanguage is returned when no extractor handles a language,
// including when detection gave up.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// UnknownAlgorithm is reported by quizzes when no signature matched.
const UnknownAlgorithm = "Unknown"

// TierCounts is the number of questions requested per tier.
type TierCounts struct {
	Beginner     int `mapstructure:"beginner"`
	Intermediate int `mapstructure:"intermediate"`
	Advanced     int `mapstructure:"advanced"`
}

// Total returns the summed count.
func (c TierCounts) Total() int {
	return c.Beginner + c.Intermediate + c.Advanced
}

// QuizCounts splits n quiz questions across tiers: half beginner, a fifth
// advanced and the remainder intermediate, with at least one beginner and
// one advanced question.
func QuizCounts(n int) TierCounts {
	beginner := max(1, n/2)
	advanced := max(1, n/5)

	return TierCounts{
		Beginner:     beginner,
		Intermediate: max(0, n-beginner-advanced),
		Advanced:     advanced,
	}
}

// Generator turns source code into question sets. It owns a random source
// and is therefore not safe for concurrent use; create one per goroutine.
type Generator interface {
	DetectLanguage(code string) m.Language
	ExtractStructure(ctx context.Context, code string, lang m.Language) (m.Structure, error)
	IdentifyAlgorithm(code string, lang m.Language) string
	GenerateQuestions(ctx context.Context, code string, count int, tier m.Tier) ([]m.Question, error)
	GenerateMixedTierQuestions(ctx context.Context, code string, counts TierCounts) ([]m.Question, error)
	GenerateQuiz(ctx context.Context, code string, n int, mixed bool) (m.Quiz, error)
	EvaluateCodeQuality(ctx context.Context, code string) (m.Metrics, error)
	ExplainCode(ctx context.Context, code string) (string, error)
}

type generatorConfig struct {
	rng      *rand.Rand
	registry *extractors.Registry
	library  *templates.Library
}

// GeneratorOption configures NewGenerator.
type GeneratorOption func(*generatorConfig)

// WithSeed makes sampling reproducible.
func WithSeed(seed int64) GeneratorOption {
	return func(c *generatorConfig) {
		c.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // sampling, not security
	}
}

// WithRand uses rng for sampling. The generator takes ownership of it.
func WithRand(rng *rand.Rand) GeneratorOption {
	return func(c *generatorConfig) {
		c.rng = rng
	}
}

// WithRegistry replaces the default extractor registry.
func WithRegistry(r *extractors.Registry) GeneratorOption {
	return func(c *generatorConfig) {
		c.registry = r
	}
}

// WithLibrary replaces the built-in template library.
func WithLibrary(lib *templates.Library) GeneratorOption {
	return func(c *generatorConfig) {
		c.library = lib
	}
}

type generator struct {
	registry     *extractors.Registry
	instantiator *Instantiator
	sampler      *Sampler
}

// NewGenerator constructs a Generator. Without WithSeed or WithRand it is
// seeded from the clock.
func NewGenerator(opts ...GeneratorOption) Generator {
	cfg := generatorConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // sampling, not security
	}

	if cfg.registry == nil {
		cfg.registry = extractors.DefaultRegistry()
	}

	return &generator{
		registry:     cfg.registry,
		instantiator: NewInstantiator(cfg.library),
		sampler:      NewSampler(cfg.rng),
	}
}

func (g *generator) DetectLanguage(code string) m.Language {
	return DetectLanguage(code)
}

func (g *generator) extractor(lang m.Language) (extractors.Extractor, error) {
	e, ok := g.registry.Get(lang)
	if !ok {
		return nil, fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedLanguage, lang, languageList(g.registry.Languages()))
	}

	return e, nil
}

func (g *generator) ExtractStructure(ctx context.Context, code string, lang m.Language) (m.Structure, error) {
	e, err := g.extractor(lang)
	if err != nil {
		return m.Structure{Language: lang}, err
	}

	return extractors.Extract(ctx, e, code)
}

func (g *generator) IdentifyAlgorithm(code string, lang m.Language) string {
	e, err := g.extractor(lang)
	if err != nil {
		return ""
	}

	return e.IdentifyAlgorithm(code)
}

// diagnostic is the single question returned for code that does not parse.
func diagnostic(lang m.Language, tier m.Tier) m.Question {
	q := m.Question{
		Text:     fmt.Sprintf("There seems to be a syntax error in the %s code. Can you fix it?", lang),
		Tier:     tier,
		Category: m.CategoryGeneral,
	}
	q.ID = questionID(q)

	return q
}

// candidates extracts code and instantiates the full pool for tier. A parse
// failure yields the diagnostic question as the whole pool.
func (g *generator) candidates(ctx context.Context, code string, tier m.Tier) ([]m.Question, error) {
	lang := DetectLanguage(code)

	s, err := g.ExtractStructure(ctx, code, lang)
	if errors.Is(err, extractors.ErrParseFailure) {
		slog.Warn("code does not parse", "language", lang, "error", err)
		return []m.Question{diagnostic(lang, tier)}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("extract structure: %w", err)
	}

	pool := g.instantiator.Pool(tier, s)
	slog.Debug("instantiated candidates", "language", lang, "tier", tier, "algorithm", s.Algorithm, "candidates", len(pool))

	return pool, nil
}

func (g *generator) GenerateQuestions(ctx context.Context, code string, count int, tier m.Tier) ([]m.Question, error) {
	if count <= 0 {
		return []m.Question{}, nil
	}

	pool, err := g.candidates(ctx, code, tier)
	if err != nil {
		return nil, err
	}

	return g.sampler.Sample(pool, count), nil
}

func (g *generator) GenerateMixedTierQuestions(ctx context.Context, code string, counts TierCounts) ([]m.Question, error) {
	return g.generateMixed(ctx, code, counts, counts.Total())
}

func (g *generator) generateMixed(ctx context.Context, code string, counts TierCounts, target int) ([]m.Question, error) {
	perTier := []struct {
		tier  m.Tier
		count int
	}{
		{m.TierBeginner, counts.Beginner},
		{m.TierIntermediate, counts.Intermediate},
		{m.TierAdvanced, counts.Advanced},
	}

	var all []m.Question

	for _, pt := range perTier {
		questions, err := g.GenerateQuestions(ctx, code, pt.count, pt.tier)
		if err != nil {
			return nil, fmt.Errorf("generate %s questions: %w", pt.tier, err)
		}

		all = append(all, questions...)
	}

	return g.sampler.Sample(all, target), nil
}

func (g *generator) GenerateQuiz(ctx context.Context, code string, n int, mixed bool) (m.Quiz, error) {
	lang := DetectLanguage(code)

	var (
		questions []m.Question
		err       error
	)

	if mixed {
		questions, err = g.generateMixed(ctx, code, QuizCounts(n), n)
	} else {
		questions, err = g.GenerateQuestions(ctx, code, n, m.TierIntermediate)
	}

	if err != nil {
		return m.Quiz{}, err
	}

	algorithm := g.IdentifyAlgorithm(code, lang)
	if algorithm == "" {
		algorithm = UnknownAlgorithm
	}

	return m.Quiz{
		Language:     lang,
		Algorithm:    algorithm,
		NumQuestions: len(questions),
		Questions:    questions,
	}, nil
}

func (g *generator) EvaluateCodeQuality(ctx context.Context, code string) (m.Metrics, error) {
	lang := DetectLanguage(code)

	s, err := g.ExtractStructure(ctx, code, lang)
	if err != nil {
		return m.Metrics{}, fmt.Errorf("could not analyze %s code: %w", lang, err)
	}

	return m.Metrics{
		Language:        lang,
		NumFunctions:    len(s.Functions),
		NumLoops:        len(s.Loops),
		NumConditionals: len(s.Conditionals),
		NumVariables:    len(s.Variables),
		LineCount:       len(strings.Split(code, "\n")),
		Complexity:      overallComplexity(s),
	}, nil
}

// overallComplexity scores a structure. Loops and recursion weigh more than
// plain functions and branches, and nesting adds to the score.
func overallComplexity(s m.Structure) string {
	if len(s.Functions) == 0 && len(s.Loops) == 0 && len(s.Conditionals) == 0 {
		return m.ComplexitySimple
	}

	score := len(s.Functions) + 2*len(s.Loops) + len(s.Conditionals)

	for _, f := range s.Functions {
		if f.IsRecursive {
			score += 3
		}
	}

	for _, l := range s.Loops {
		if l.Depth > 0 {
			score += 2
		}
	}

	for _, c := range s.Conditionals {
		if c.Depth > 0 {
			score++
		}
	}

	switch {
	case score < 5:
		return m.ComplexitySimple
	case score < 15:
		return m.ComplexityModerate
	case score < 30:
		return m.ComplexityComplex
	default:
		return m.ComplexityVeryComplex
	}
}

func (g *generator) ExplainCode(ctx context.Context, code string) (string, error) {
	lang := DetectLanguage(code)

	s, err := g.ExtractStructure(ctx, code, lang)
	if errors.Is(err, extractors.ErrParseFailure) {
		return fmt.Sprintf("The provided %s code has syntax errors and could not be explained.", lang), nil
	}

	if err != nil {
		return "", err
	}

	var b strings.Builder

	fmt.Fprintf(&b, "This is %s code", lang)

	if s.Algorithm != "" {
		fmt.Fprintf(&b, " implementing a %s algorithm", s.Algorithm)
	}

	b.WriteString(".\n\n")

	if len(s.Functions) > 0 {
		b.WriteString("Functions in this code:\n")
	}

	for _, f := range s.Functions {
		fmt.Fprintf(&b, "- %s(%s): ", f.Name, strings.Join(f.Params, ", "))

		if f.Doc != "" {
			b.WriteString(f.Doc + "\n")
		} else {
			b.WriteString("No documentation available.\n")
		}

		if f.IsRecursive {
			b.WriteString("  This function is recursive.\n")
		}

		fmt.Fprintf(&b, "  Estimated time complexity: %s\n", f.Complexity)
	}

	return b.String(), nil
}

func languageList(langs []m.Language) string {
	names := make([]string, len(langs))
	for i, lang := range langs {
		names[i] = lang.String()
	}

	return strings.Join(names, ", ")
}

package extractors

import (
	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

// Registry selects an Extractor by language. It is built once and only read
// afterwards, so a single Registry may be shared between goroutines.
type Registry struct {
	extractors map[m.Language]Extractor
}

// NewRegistry returns a registry holding the given extractors.
func NewRegistry(extractors ...Extractor) *Registry {
	r := &Registry{extractors: make(map[m.Language]Extractor, len(extractors))}
	for _, e := range extractors {
		r.extractors[e.Language()] = e
	}

	return r
}

// DefaultRegistry returns a registry with an extractor for every supported
// language.
func DefaultRegistry() *Registry {
	return NewRegistry(NewPython(), NewJava(), NewCPP(), NewC())
}

// Get returns the extractor for lang.
func (r *Registry) Get(lang m.Language) (Extractor, bool) {
	e, ok := r.extractors[lang]
	return e, ok
}

// Languages returns the registered languages in detection priority order.
func (r *Registry) Languages() []m.Language {
	langs := make([]m.Language, 0, len(r.extractors))
	for _, lang := range m.Languages {
		if _, ok := r.extractors[lang]; ok {
			langs = append(langs, lang)
		}
	}

	return langs
}

// Package adapter contains the infrastructure adapters of the question
// generator: filesystem access, question persistence, test-case loading and
// subprocess execution.
package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

// TestCasesSuffix names the test-case file that sits next to a sample:
// bubble_sort.py is paired with bubble_sort_tests.yaml.
const TestCasesSuffix = "_tests.yaml"

// SourceFSAdapter abstracts the filesystem operations the workflow needs to
// discover code samples and write generated artefacts. It hides direct `os`
// access so the workflow logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// ListAlgorithms returns the sorted names of the algorithm folders in a
	// samples directory.
	ListAlgorithms(ctx context.Context, root m.Path) ([]string, error)

	// ListSamples returns the recognised code files below root, sorted by
	// path. The algorithm of a sample is the name of its parent folder.
	ListSamples(ctx context.Context, root m.Path) ([]m.Sample, error)

	// DetectTestCases finds the test-case file paired with a sample.
	DetectTestCases(ctx context.Context, samplePath m.Path) (m.Path, error)

	// CreateTempDir creates a scratch directory.
	CreateTempDir(ctx context.Context, pattern string) (m.Path, error)

	// RemoveAll removes a directory and all its contents.
	RemoveAll(ctx context.Context, path m.Path) error

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over files under root, optionally descending into subdirectories.
// It stops with the context error once ctx is done.
func (a *LocalSourceFSAdapter) Walk(ctx context.Context, root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(_ context.Context, path m.Path) ([]byte, error) {
	// #nosec G304 - reading user-selected code samples is the point
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(_ context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(_ context.Context, path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ListAlgorithms lists the non-hidden subdirectories of root.
func (a *LocalSourceFSAdapter) ListAlgorithms(_ context.Context, root m.Path) ([]string, error) {
	entries, err := os.ReadDir(string(root))
	if err != nil {
		return nil, fmt.Errorf("read samples directory %s: %w", root, err)
	}

	var algorithms []string

	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			algorithms = append(algorithms, entry.Name())
		}
	}

	sort.Strings(algorithms)

	return algorithms, nil
}

// ListSamples walks root recursively and keeps files whose extension maps
// to a supported language.
func (a *LocalSourceFSAdapter) ListSamples(ctx context.Context, root m.Path) ([]m.Sample, error) {
	var samples []m.Sample

	err := a.Walk(ctx, root, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != string(root) && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}

			return nil
		}

		lang := m.LanguageForExtension(strings.ToLower(filepath.Ext(path)))
		if lang == m.LanguageUnknown {
			return nil
		}

		samples = append(samples, m.Sample{
			Path:      m.Path(path),
			Algorithm: filepath.Base(filepath.Dir(path)),
			Language:  lang,
		})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk samples directory %s: %w", root, err)
	}

	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Path < samples[j].Path
	})

	return samples, nil
}

// DetectTestCases returns the companion <stem>_tests.yaml of a sample, or an
// empty path when there is none.
func (a *LocalSourceFSAdapter) DetectTestCases(_ context.Context, samplePath m.Path) (m.Path, error) {
	source := string(samplePath)
	stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	casesFile := filepath.Join(filepath.Dir(source), stem+TestCasesSuffix)

	if _, err := os.Stat(casesFile); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}

		return "", err
	}

	return m.Path(casesFile), nil
}

// CreateTempDir creates a temporary directory.
func (a *LocalSourceFSAdapter) CreateTempDir(_ context.Context, pattern string) (m.Path, error) {
	tmpDir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", err
	}

	return m.Path(tmpDir), nil
}

// RemoveAll removes a directory and all its contents.
func (a *LocalSourceFSAdapter) RemoveAll(_ context.Context, path m.Path) error {
	return os.RemoveAll(string(path))
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

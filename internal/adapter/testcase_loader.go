package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

// TestCaseLoader reads unit-test definitions for a code sample.
type TestCaseLoader interface {
	LoadTestCases(ctx context.Context, path m.Path) ([]m.TestCase, error)
}

type yamlTestCaseLoader struct {
	fs SourceFSAdapter
}

// NewTestCaseLoader returns a loader for yaml test-case files. Since yaml is
// a superset of json, json files load too. A file is either a list of cases
// or a mapping with a "tests" list.
func NewTestCaseLoader(fs SourceFSAdapter) TestCaseLoader {
	return &yamlTestCaseLoader{fs: fs}
}

type testCaseFile struct {
	Tests []m.TestCase `yaml:"tests"`
}

func (l *yamlTestCaseLoader) LoadTestCases(ctx context.Context, path m.Path) ([]m.TestCase, error) {
	data, err := l.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read test cases %s: %w", path, err)
	}

	var node yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return []m.TestCase{}, nil
		}

		return nil, fmt.Errorf("parse test cases %s: %w", path, err)
	}

	var cases []m.TestCase

	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	switch root.Kind {
	case yaml.SequenceNode:
		err = root.Decode(&cases)
	case yaml.MappingNode:
		var file testCaseFile
		err = root.Decode(&file)
		cases = file.Tests
	default:
		err = fmt.Errorf("expected a list of test cases, got %s", root.ShortTag())
	}

	if err != nil {
		return nil, fmt.Errorf("decode test cases %s: %w", path, err)
	}

	for i := range cases {
		if cases[i].ID == "" {
			cases[i].ID = fmt.Sprintf("test_%d", i+1)
		}
	}

	if cases == nil {
		cases = []m.TestCase{}
	}

	return cases, nil
}

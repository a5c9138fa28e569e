package adapter

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

// ErrUnsupportedFormat is returned for file extensions the store cannot
// read or write.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format is a persistence format for question sets.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. "yml" is accepted for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatOf derives the format from a path's extension.
func FormatOf(path m.Path) (Format, error) {
	return ParseFormat(filepath.Ext(string(path)))
}

// QuestionStore persists question sets and documents (quizzes, metrics,
// reports) through a SourceFSAdapter.
type QuestionStore interface {
	SaveQuestions(ctx context.Context, path m.Path, questions []m.Question) error
	LoadQuestions(ctx context.Context, path m.Path) ([]m.Question, error)
	// SaveDocument writes any value as json or yaml.
	SaveDocument(ctx context.Context, path m.Path, doc any) error
}

type questionStore struct {
	fs SourceFSAdapter
}

// NewQuestionStore returns a QuestionStore writing through fs.
func NewQuestionStore(fs SourceFSAdapter) QuestionStore {
	return &questionStore{fs: fs}
}

func (s *questionStore) SaveQuestions(ctx context.Context, path m.Path, questions []m.Question) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	if questions == nil {
		questions = []m.Question{}
	}

	var data []byte

	switch format {
	case FormatCSV:
		data, err = encodeCSV(questions)
	default:
		data, err = encodeDocument(format, questions)
	}

	if err != nil {
		slog.Error("failed to encode questions", "path", path, "format", format, "error", err)
		return fmt.Errorf("encode %s: %w", format, err)
	}

	if err := s.fs.WriteFile(ctx, path, data, 0o600); err != nil {
		slog.Error("failed to write questions", "path", path, "error", err)
		return fmt.Errorf("write %s: %w", path, err)
	}

	slog.Debug("saved questions", "path", path, "count", len(questions))

	return nil
}

func (s *questionStore) LoadQuestions(ctx context.Context, path m.Path) ([]m.Question, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var questions []m.Question

	switch format {
	case FormatCSV:
		questions, err = decodeCSV(data)
	case FormatJSON:
		err = json.Unmarshal(data, &questions)
	case FormatYAML:
		err = yaml.Unmarshal(data, &questions)
	}

	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return questions, nil
}

func (s *questionStore) SaveDocument(ctx context.Context, path m.Path, doc any) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	if format == FormatCSV {
		return fmt.Errorf("%w: documents cannot be written as csv", ErrUnsupportedFormat)
	}

	data, err := encodeDocument(format, doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}

	if err := s.fs.WriteFile(ctx, path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// EncodeDocument renders doc as indented json or yaml.
func EncodeDocument(format Format, doc any) ([]byte, error) {
	return encodeDocument(format, doc)
}

func encodeDocument(format Format, doc any) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)

		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		if err := enc.Encode(doc); err != nil {
			return nil, err
		}

		if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return buf.Bytes(), nil
}

// Column names follow the json field names of m.Question.
const (
	colID            = "id"
	colQuestion      = "question"
	colDifficulty    = "difficulty"
	colCategory      = "category"
	colBloom         = "bloom"
	colFunctionName  = "function_name"
	colLoopType      = "loop_type"
	colLineNum       = "line_num"
	colVariableName  = "variable_name"
	colAlgorithmName = "algorithm_name"
)

// questionRow holds the fields a question actually carries. Optional
// fields are left out when empty, so different categories yield different
// keys.
func questionRow(q m.Question) map[string]string {
	row := map[string]string{
		colID:         q.ID,
		colQuestion:   q.Text,
		colDifficulty: string(q.Tier),
		colCategory:   string(q.Category),
	}

	optional := map[string]string{
		colBloom:         string(q.Level),
		colFunctionName:  q.FunctionName,
		colLoopType:      q.LoopType,
		colVariableName:  q.VariableName,
		colAlgorithmName: q.AlgorithmName,
	}
	if q.Line != 0 {
		optional[colLineNum] = strconv.Itoa(q.Line)
	}

	for k, v := range optional {
		if v != "" {
			row[k] = v
		}
	}

	return row
}

// encodeCSV writes one column per key present in any question, sorted by
// name, and leaves missing fields blank.
func encodeCSV(questions []m.Question) ([]byte, error) {
	rows := make([]map[string]string, len(questions))
	keys := map[string]bool{}

	for i, q := range questions {
		rows[i] = questionRow(q)
		for k := range rows[i] {
			keys[k] = true
		}
	}

	header := make([]string, 0, len(keys))
	for k := range keys {
		header = append(header, k)
	}

	sort.Strings(header)

	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range rows {
		record := make([]string, len(header))
		for i, k := range header {
			record[i] = row[k]
		}

		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()

	return buf.Bytes(), w.Error()
}

func decodeCSV(data []byte) ([]m.Question, error) {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, err
	}

	questions := []m.Question{}
	if len(records) == 0 {
		return questions, nil
	}

	header := records[0]

	for n, record := range records[1:] {
		var q m.Question

		for i, k := range header {
			if i >= len(record) {
				break
			}

			v := record[i]

			switch k {
			case colID:
				q.ID = v
			case colQuestion:
				q.Text = v
			case colDifficulty:
				q.Tier = m.Tier(v)
			case colCategory:
				q.Category = m.Category(v)
			case colBloom:
				q.Level = m.CognitiveLevel(v)
			case colFunctionName:
				q.FunctionName = v
			case colLoopType:
				q.LoopType = v
			case colVariableName:
				q.VariableName = v
			case colAlgorithmName:
				q.AlgorithmName = v
			case colLineNum:
				if v == "" {
					continue
				}

				line, err := strconv.Atoi(v)
				if err != nil {
					return nil, fmt.Errorf("row %d: line_num %q: %w", n+2, v, err)
				}

				q.Line = line
			}
		}

		questions = append(questions, q)
	}

	return questions, nil
}

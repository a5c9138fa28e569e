package adapter

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

func sampleQuestions() []m.Question {
	return []m.Question{
		{
			ID: "q1", Text: "What is the purpose of the function 'search'?", Tier: m.TierBeginner,
			Category: m.CategoryFunction, Level: m.LevelUnderstand, FunctionName: "search",
		},
		{
			ID: "q2", Text: "What is the purpose of the while loop on line 7?", Tier: m.TierBeginner,
			Category: m.CategoryLoop, Level: m.LevelUnderstand, LoopType: "while", Line: 7,
		},
		{
			ID: "q3", Text: "There seems to be a syntax error, can you fix it?", Tier: m.TierAdvanced,
			Category: m.CategoryGeneral,
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"csv", FormatCSV, false},
		{".JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"yaml", FormatYAML, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrUnsupportedFormat, tt.in)
			continue
		}

		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestQuestionStore_CSVColumns(t *testing.T) {
	store := NewQuestionStore(NewLocalSourceFSAdapter())
	path := filepath.Join(t.TempDir(), "bfs_bfs_questions.csv")

	require.NoError(t, store.SaveQuestions(context.Background(), m.Path(path), sampleQuestions()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, []string{
		"bloom", "category", "difficulty", "function_name", "id", "line_num", "loop_type", "question",
	}, records[0])
	assert.Equal(t, []string{"", "general", "advanced", "", "q3", "", "", "There seems to be a syntax error, can you fix it?"}, records[3])
	assert.Equal(t, "7", records[2][5])
}

func TestQuestionStore_RoundTrip(t *testing.T) {
	store := NewQuestionStore(NewLocalSourceFSAdapter())
	dir := t.TempDir()

	for _, name := range []string{"q.csv", "q.json", "q.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := m.Path(filepath.Join(dir, name))

			require.NoError(t, store.SaveQuestions(context.Background(), path, sampleQuestions()))

			got, err := store.LoadQuestions(context.Background(), path)
			require.NoError(t, err)

			if diff := cmp.Diff(sampleQuestions(), got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQuestionStore_JSONShape(t *testing.T) {
	store := NewQuestionStore(NewLocalSourceFSAdapter())
	path := filepath.Join(t.TempDir(), "q.json")

	require.NoError(t, store.SaveQuestions(context.Background(), m.Path(path), sampleQuestions()[:1]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.JSONEq(t, `[{
		"id": "q1",
		"question": "What is the purpose of the function 'search'?",
		"difficulty": "beginner",
		"category": "function",
		"bloom": "understand",
		"function_name": "search"
	}]`, string(data))
	assert.True(t, strings.HasPrefix(string(data), "[\n  {"))
}

func TestQuestionStore_EmptySet(t *testing.T) {
	store := NewQuestionStore(NewLocalSourceFSAdapter())
	path := m.Path(filepath.Join(t.TempDir(), "empty.json"))

	require.NoError(t, store.SaveQuestions(context.Background(), path, nil))

	got, err := store.LoadQuestions(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQuestionStore_UnsupportedFormat(t *testing.T) {
	store := NewQuestionStore(NewLocalSourceFSAdapter())
	dir := t.TempDir()

	err := store.SaveQuestions(context.Background(), m.Path(filepath.Join(dir, "q.txt")), sampleQuestions())
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = store.LoadQuestions(context.Background(), m.Path(filepath.Join(dir, "q.xml")))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	err = store.SaveDocument(context.Background(), m.Path(filepath.Join(dir, "quiz.csv")), m.Quiz{})
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestQuestionStore_SaveDocument(t *testing.T) {
	store := NewQuestionStore(NewLocalSourceFSAdapter())
	path := filepath.Join(t.TempDir(), "metrics.yaml")

	metrics := m.Metrics{Language: m.LanguageC, NumFunctions: 2, LineCount: 40, Complexity: m.ComplexityModerate}
	require.NoError(t, store.SaveDocument(context.Background(), m.Path(path), metrics))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "language: c\n")
	assert.Contains(t, string(data), "complexity: Moderate\n")
}

func TestQuestionStore_BadCSVLine(t *testing.T) {
	store := NewQuestionStore(NewLocalSourceFSAdapter())
	path := filepath.Join(t.TempDir(), "bad.csv")
	writeTestFile(t, path, "id,line_num\nq1,seven\n")

	_, err := store.LoadQuestions(context.Background(), m.Path(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line_num")
}

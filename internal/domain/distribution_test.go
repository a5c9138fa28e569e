package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

func TestDistribute(t *testing.T) {
	questions := []m.Question{
		{Level: m.LevelRemember},
		{Level: m.LevelRemember},
		{Level: m.LevelAnalyze},
		{Level: "recall"},
		{Level: ""},
	}

	got := Distribute(2, questions)

	want := m.Distribution{
		Files: 2,
		Total: 4,
		Rows: []m.LevelCount{
			{Level: m.LevelRemember, Count: 2, Percent: 50},
			{Level: m.LevelUnderstand},
			{Level: m.LevelApply},
			{Level: m.LevelAnalyze, Count: 1, Percent: 25},
			{Level: m.LevelEvaluate},
			{Level: m.LevelCreate},
			{Level: "recall", Count: 1, Percent: 25},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Distribute() mismatch (-want +got):\n%s", diff)
	}
}

func TestDistribute_Empty(t *testing.T) {
	got := Distribute(0, nil)

	if got.Total != 0 || got.Files != 0 {
		t.Fatalf("expected empty distribution, got %+v", got)
	}

	if len(got.Rows) != len(m.CognitiveLevels) {
		t.Fatalf("expected %d rows, got %d", len(m.CognitiveLevels), len(got.Rows))
	}

	for _, row := range got.Rows {
		if row.Count != 0 || row.Percent != 0 {
			t.Errorf("expected zero row, got %+v", row)
		}
	}
}

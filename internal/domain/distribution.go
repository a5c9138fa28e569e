package domain

import (
	"sort"

	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

// Distribute counts questions per cognitive level. Questions without a
// level are ignored. Known levels come first in ascending order, including
// those with a zero count; unexpected labels follow in lexical order.
func Distribute(files int, questions []m.Question) m.Distribution {
	counts := make(map[m.CognitiveLevel]int)
	total := 0

	for _, q := range questions {
		if q.Level == "" {
			continue
		}

		counts[q.Level]++
		total++
	}

	rows := make([]m.LevelCount, 0, len(m.CognitiveLevels))
	for _, level := range m.CognitiveLevels {
		rows = append(rows, levelRow(level, counts[level], total))
		delete(counts, level)
	}

	extra := make([]m.CognitiveLevel, 0, len(counts))
	for level := range counts {
		extra = append(extra, level)
	}

	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	for _, level := range extra {
		rows = append(rows, levelRow(level, counts[level], total))
	}

	return m.Distribution{Files: files, Total: total, Rows: rows}
}

func levelRow(level m.CognitiveLevel, count, total int) m.LevelCount {
	row := m.LevelCount{Level: level, Count: count}
	if total > 0 {
		row.Percent = 100 * float64(count) / float64(total)
	}

	return row
}

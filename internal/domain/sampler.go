package domain

import (
	"math"
	"math/rand"

	m "github.com/jalshboul/template-based-question-generation/internal/model"
)

// maxLevelShare is the share of a result one cognitive level may fill
// during the primary pass.
const maxLevelShare = 0.4

// Sampler draws a bounded, cognitively diverse subset from a candidate
// pool. It is not safe for concurrent use because it owns its rand source.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a Sampler drawing from rng.
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// levelCaps returns the per-level admission cap for target and the number
// of distinct levels in pool.
func levelCaps(target, levels int) (minCap, maxCap int) {
	minCap = max(1, target/max(1, levels))
	maxCap = max(minCap+1, int(math.Floor(float64(target)*maxLevelShare)))

	return minCap, maxCap
}

// Sample returns at most target questions. A shuffled walk admits a
// question while its level is under the cap; when that leaves the result
// short, the rest is topped up from the unadmitted questions in random
// order, ignoring the cap.
func (s *Sampler) Sample(pool []m.Question, target int) []m.Question {
	result, _ := s.sample(pool, target)
	return result
}

// sample also reports how many questions the primary pass admitted.
func (s *Sampler) sample(pool []m.Question, target int) ([]m.Question, int) {
	if len(pool) == 0 || target <= 0 {
		return []m.Question{}, 0
	}

	distinct := map[m.CognitiveLevel]bool{}
	for _, q := range pool {
		distinct[q.Level] = true
	}

	_, maxCap := levelCaps(target, len(distinct))

	order := s.rng.Perm(len(pool))
	admitted := make([]bool, len(pool))
	counts := map[m.CognitiveLevel]int{}
	result := make([]m.Question, 0, min(target, len(pool)))

	for _, i := range order {
		if len(result) == target {
			break
		}

		level := pool[i].Level
		if counts[level] < maxCap {
			counts[level]++
			admitted[i] = true
			result = append(result, pool[i])
		}
	}

	primary := len(result)
	if primary == target {
		return result, primary
	}

	rest := make([]int, 0, len(pool)-primary)
	for _, i := range order {
		if !admitted[i] {
			rest = append(rest, i)
		}
	}

	s.rng.Shuffle(len(rest), func(a, b int) {
		rest[a], rest[b] = rest[b], rest[a]
	})

	for _, i := range rest {
		if len(result) == target {
			break
		}

		result = append(result, pool[i])
	}

	return result, primary
}

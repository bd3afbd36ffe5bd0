package domain

// RandomSource yields a uniform int in [0, n). *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// SelectNext picks one question uniformly at random among the candidates whose
// id is not in seenIDs. It returns ErrExhausted when every candidate was seen.
// The remaining set is built before sampling, so the cost does not depend on
// how many of the candidates were already asked.
func SelectNext(candidates []Question, seenIDs []int64, rnd RandomSource) (Question, error) {
	seen := make(map[int64]struct{}, len(seenIDs))
	for _, id := range seenIDs {
		seen[id] = struct{}{}
	}

	remaining := make([]Question, 0, len(candidates))
	for _, q := range candidates {
		if _, ok := seen[q.ID]; !ok {
			remaining = append(remaining, q)
		}
	}

	if len(remaining) == 0 {
		return Question{}, ErrExhausted
	}
	return remaining[rnd.Intn(len(remaining))], nil
}

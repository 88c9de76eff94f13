package forecast

// tally counts occurrences while remembering first-seen order
type tally struct {
	counts map[string]int
	keys   []string
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(key string) {
	if _, seen := t.counts[key]; !seen {
		t.keys = append(t.keys, key)
	}
	t.counts[key]++
}

// predominant returns the most frequent key. Ties go to the key seen first.
func (t *tally) predominant() string {
	best := ""
	bestCount := 0
	for _, key := range t.keys {
		if t.counts[key] > bestCount {
			best = key
			bestCount = t.counts[key]
		}
	}
	return best
}

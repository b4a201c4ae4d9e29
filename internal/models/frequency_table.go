package models

// FrequencyTable maps API names to how many extracted lines produced them.
// The sum of all counts always equals Total; counts are only ever incremented.
type FrequencyTable struct {
	counts map[string]int64
	total  int64
}

func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int64)}
}

// Increment records one more occurrence of apiName.
func (t *FrequencyTable) Increment(apiName string) {
	t.counts[apiName]++
	t.total++
}

// Count returns the occurrences of apiName, 0 if it was never seen.
func (t *FrequencyTable) Count(apiName string) int64 {
	return t.counts[apiName]
}

func (t *FrequencyTable) Total() int64 {
	return t.total
}

// Len returns the number of distinct API names.
func (t *FrequencyTable) Len() int {
	return len(t.counts)
}

// Counts returns a copy of the underlying mapping.
func (t *FrequencyTable) Counts() map[string]int64 {
	counts := make(map[string]int64, len(t.counts))
	for name, count := range t.counts {
		counts[name] = count
	}
	return counts
}

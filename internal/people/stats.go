package people

import "math"

// Statistics are derived from the current store contents on demand and
// never stored.
type Statistics struct {
	Count          int
	AverageAge     float64
	DistinctStates int
}

// Stats computes the aggregate view of the store. AverageAge is the mean
// age rounded to one decimal place (half away from zero); it is 0 for an
// empty store. DistinctStates compares State values case-sensitively.
func (s *Store) Stats() Statistics {
	if len(s.records) == 0 {
		return Statistics{}
	}

	sum := 0
	states := make(map[string]struct{}, len(s.records))
	for _, r := range s.records {
		sum += r.Age
		states[r.State] = struct{}{}
	}

	avg := float64(sum) / float64(len(s.records))
	return Statistics{
		Count:          len(s.records),
		AverageAge:     math.Round(avg*10) / 10,
		DistinctStates: len(states),
	}
}

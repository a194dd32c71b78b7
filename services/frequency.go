package services

import (
	"sort"

	"github.com/sorteo-loteria/sorteo-backend/repository"
)

// FrequencyResult is one entry of the statistics ranking.
type FrequencyResult struct {
	Number int `json:"number"`
	Count  int `json:"count"`
}

// FrequencyService computes occurrence counts of primary balotas over the
// historical dataset. It holds no state between calls; every result reflects
// the table at call time.
type FrequencyService struct {
	historical repository.HistoricalRepository
}

func NewFrequencyService(historical repository.HistoricalRepository) *FrequencyService {
	return &FrequencyService{historical: historical}
}

// TopFrequent returns the n most frequent primary numbers across all
// historical draws. The bonus column is excluded. Ties rank by order of
// first appearance in the scan, so results are deterministic for a given
// dataset. Fewer than n distinct values yields a shorter result; empty
// history yields an empty one.
func (s *FrequencyService) TopFrequent(n int) ([]FrequencyResult, error) {
	count, err := s.historical.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return []FrequencyResult{}, nil
	}

	draws, err := s.historical.ListAll()
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int)
	var firstSeen []int
	for _, draw := range draws {
		for _, num := range draw.Primaries() {
			if counts[num] == 0 {
				firstSeen = append(firstSeen, num)
			}
			counts[num]++
		}
	}

	// Stable sort keeps first-seen order among equal counts.
	sort.SliceStable(firstSeen, func(i, j int) bool {
		return counts[firstSeen[i]] > counts[firstSeen[j]]
	})

	if n > len(firstSeen) {
		n = len(firstSeen)
	}
	results := make([]FrequencyResult, 0, n)
	for _, num := range firstSeen[:n] {
		results = append(results, FrequencyResult{Number: num, Count: counts[num]})
	}
	return results, nil
}

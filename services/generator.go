package services

import (
	"math/rand"

	"github.com/sorteo-loteria/sorteo-backend/lottery"
	"github.com/sorteo-loteria/sorteo-backend/utils/logger"
)

// DrawService generates new sorteos biased by historical frequency. It reads
// history through the frequency service and persists nothing; saving a draw
// is a separate explicit operation.
type DrawService struct {
	frequency *FrequencyService
}

func NewDrawService(frequency *FrequencyService) *DrawService {
	return &DrawService{frequency: frequency}
}

// Generate produces one draw: the top-3 frequent primary numbers plus 3
// unique randoms from the remaining pool, shuffled together, then an
// independent bonus balota. With empty or thin history the whole seed set
// falls back to uniform random sampling, so generation never fails.
func (s *DrawService) Generate() []int {
	seed := s.seedNumbers()

	// Pool = every primary number not already in the seed set.
	inSeed := make(map[int]bool, len(seed))
	for _, num := range seed {
		inSeed[num] = true
	}
	pool := make([]int, 0, lottery.PrimaryMax-len(seed))
	for num := lottery.PrimaryMin; num <= lottery.PrimaryMax; num++ {
		if !inSeed[num] {
			pool = append(pool, num)
		}
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	primaries := append(seed, pool[:lottery.PrimaryCount-len(seed)]...)
	// The seed numbers must not be positionally distinguishable.
	rand.Shuffle(len(primaries), func(i, j int) {
		primaries[i], primaries[j] = primaries[j], primaries[i]
	})

	bonus := lottery.BonusMin + rand.Intn(lottery.BonusMax-lottery.BonusMin+1)
	return append(primaries, bonus)
}

// seedNumbers returns the 3 numbers that bias the draw: the historical top-3
// when available, otherwise 3 unique uniform randoms. A partial top list is
// discarded entirely rather than mixed with randoms.
func (s *DrawService) seedNumbers() []int {
	results, err := s.frequency.TopFrequent(3)
	if err != nil {
		logger.Errorf("Falling back to random seed numbers: %v", err)
	}
	if err == nil && len(results) == 3 {
		seed := make([]int, 0, 3)
		for _, r := range results {
			seed = append(seed, r.Number)
		}
		return seed
	}
	return samplePrimaries(3)
}

// samplePrimaries draws count unique numbers uniformly from [1,43].
func samplePrimaries(count int) []int {
	all := make([]int, 0, lottery.PrimaryMax)
	for num := lottery.PrimaryMin; num <= lottery.PrimaryMax; num++ {
		all = append(all, num)
	}
	rand.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})
	return all[:count]
}

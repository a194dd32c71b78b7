package services

import (
	"errors"
	"testing"

	"github.com/sorteo-loteria/sorteo-backend/lottery"
	"github.com/sorteo-loteria/sorteo-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertValidDraw(t *testing.T, balotas []int) {
	t.Helper()
	require.NoError(t, lottery.ValidateDraw(balotas), "balotas %v", balotas)

	seen := make(map[int]bool)
	for _, num := range balotas[:lottery.PrimaryCount] {
		assert.False(t, seen[num], "duplicate primary %d in %v", num, balotas)
		seen[num] = true
	}
}

func TestGenerate_WithHistory(t *testing.T) {
	mockRepo := new(MockHistoricalRepository)
	history := []models.HistoricalDraw{
		draw(7, 22, 35, 1, 2, 9),
		draw(7, 22, 35, 3, 4, 9),
		draw(7, 22, 35, 5, 6, 9),
	}
	mockRepo.On("Count").Return(int64(len(history)), nil)
	mockRepo.On("ListAll").Return(history, nil)

	service := NewDrawService(NewFrequencyService(mockRepo))

	for i := 0; i < 200; i++ {
		balotas := service.Generate()
		assertValidDraw(t, balotas)

		// The top-3 seed must always be present among the primaries.
		primaries := make(map[int]bool)
		for _, num := range balotas[:5] {
			primaries[num] = true
		}
		assert.True(t, primaries[7] && primaries[22] && primaries[35],
			"top-3 missing from %v", balotas)
	}
}

func TestGenerate_SeedNotPositionallyFixed(t *testing.T) {
	mockRepo := new(MockHistoricalRepository)
	history := []models.HistoricalDraw{
		draw(7, 22, 35, 1, 2, 9),
		draw(7, 22, 35, 3, 4, 9),
	}
	mockRepo.On("Count").Return(int64(len(history)), nil)
	mockRepo.On("ListAll").Return(history, nil)

	service := NewDrawService(NewFrequencyService(mockRepo))

	// If the shuffle works, 7 cannot land on position 0 every single time.
	firstIsSeven := 0
	const runs = 300
	for i := 0; i < runs; i++ {
		if service.Generate()[0] == 7 {
			firstIsSeven++
		}
	}
	assert.Less(t, firstIsSeven, runs)
}

func TestGenerate_EmptyHistoryFallsBack(t *testing.T) {
	mockRepo := new(MockHistoricalRepository)
	mockRepo.On("Count").Return(int64(0), nil)

	service := NewDrawService(NewFrequencyService(mockRepo))

	for i := 0; i < 200; i++ {
		assertValidDraw(t, service.Generate())
	}
}

func TestGenerate_StorageErrorFallsBack(t *testing.T) {
	mockRepo := new(MockHistoricalRepository)
	mockRepo.On("Count").Return(int64(0), errors.New("connection lost"))

	service := NewDrawService(NewFrequencyService(mockRepo))

	for i := 0; i < 50; i++ {
		assertValidDraw(t, service.Generate())
	}
}

func TestGenerate_ThinHistoryDiscardsPartialSeed(t *testing.T) {
	mockRepo := new(MockHistoricalRepository)
	// Only two distinct primary numbers exist, so the biased seed must be
	// discarded in favour of uniform sampling.
	history := []models.HistoricalDraw{
		draw(5, 5, 5, 9, 9, 1),
	}
	mockRepo.On("Count").Return(int64(1), nil)
	mockRepo.On("ListAll").Return(history, nil)

	service := NewDrawService(NewFrequencyService(mockRepo))

	for i := 0; i < 100; i++ {
		assertValidDraw(t, service.Generate())
	}
}

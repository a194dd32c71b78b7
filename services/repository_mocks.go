package services

import (
	"github.com/sorteo-loteria/sorteo-backend/models"

	"github.com/stretchr/testify/mock"
)

// MockHistoricalRepository is a testify mock of repository.HistoricalRepository.
type MockHistoricalRepository struct {
	mock.Mock
}

func (m *MockHistoricalRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHistoricalRepository) ListAll() ([]models.HistoricalDraw, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HistoricalDraw), args.Error(1)
}

func (m *MockHistoricalRepository) ReplaceAll(draws []models.HistoricalDraw) error {
	args := m.Called(draws)
	return args.Error(0)
}

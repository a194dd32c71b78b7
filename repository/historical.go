package repository

import (
	"github.com/sorteo-loteria/sorteo-backend/models"

	"gorm.io/gorm"
)

type historicalRepository struct {
	db *gorm.DB
}

// NewHistoricalRepository returns a gorm-backed HistoricalRepository.
func NewHistoricalRepository(db *gorm.DB) HistoricalRepository {
	return &historicalRepository{db: db}
}

func (r *historicalRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.HistoricalDraw{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *historicalRepository) ListAll() ([]models.HistoricalDraw, error) {
	var draws []models.HistoricalDraw
	if err := r.db.Order("id ASC").Find(&draws).Error; err != nil {
		return nil, err
	}
	return draws, nil
}

func (r *historicalRepository) ReplaceAll(draws []models.HistoricalDraw) error {
	// Single transaction so concurrent readers never observe the table
	// half-replaced.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.HistoricalDraw{}).Error; err != nil {
			return err
		}
		if len(draws) == 0 {
			return nil
		}
		return tx.Create(&draws).Error
	})
}

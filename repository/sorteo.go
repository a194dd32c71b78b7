package repository

import (
	"github.com/sorteo-loteria/sorteo-backend/lottery"
	"github.com/sorteo-loteria/sorteo-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type sorteoRepository struct {
	db *gorm.DB
}

// NewSorteoRepository returns a gorm-backed SorteoRepository.
func NewSorteoRepository(db *gorm.DB) SorteoRepository {
	return &sorteoRepository{db: db}
}

func (r *sorteoRepository) Create(sorteo *models.Sorteo) error {
	return r.db.Create(sorteo).Error
}

func (r *sorteoRepository) ListByUser(userID uint) ([]models.Sorteo, error) {
	var sorteos []models.Sorteo
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sorteos).Error
	if err != nil {
		return nil, err
	}
	return sorteos, nil
}

func (r *sorteoRepository) UpdateNumbers(id uint, numbers []int) error {
	res := r.db.Model(&models.Sorteo{}).
		Where("id = ?", id).
		Update("numbers", datatypes.NewJSONSlice(numbers))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return lottery.ErrSorteoNotFound
	}
	return nil
}

func (r *sorteoRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Sorteo{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return lottery.ErrSorteoNotFound
	}
	return nil
}

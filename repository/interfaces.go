package repository

import "github.com/sorteo-loteria/sorteo-backend/models"

// HistoricalRepository is the read/replace surface over past draws. The
// table is shared reference data: readers see either the fully-old or the
// fully-new dataset, never a partial replacement.
type HistoricalRepository interface {
	// Count returns the number of historical rows.
	Count() (int64, error)
	// ListAll returns every historical draw in insertion order.
	ListAll() ([]models.HistoricalDraw, error)
	// ReplaceAll deletes every existing row and inserts draws in a single
	// transaction.
	ReplaceAll(draws []models.HistoricalDraw) error
}

// SorteoRepository stores per-user saved draws.
type SorteoRepository interface {
	Create(sorteo *models.Sorteo) error
	// ListByUser returns a user's sorteos, newest first.
	ListByUser(userID uint) ([]models.Sorteo, error)
	// UpdateNumbers overwrites a sorteo's numbers. Returns
	// lottery.ErrSorteoNotFound when id does not exist.
	UpdateNumbers(id uint, numbers []int) error
	// Delete removes a sorteo. Returns lottery.ErrSorteoNotFound when id
	// does not exist.
	Delete(id uint) error
}

// UserRepository stores account records.
type UserRepository interface {
	// Create inserts a user. Returns lottery.ErrUserExists when the
	// username is taken.
	Create(user *models.User) error
	// FindByUsername returns nil without error when no such user exists.
	FindByUsername(username string) (*models.User, error)
}

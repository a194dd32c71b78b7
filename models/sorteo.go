package models

import (
	"time"

	"gorm.io/datatypes"
)

// Sorteo is a draw a user chose to save to their personal history. Numbers
// always holds 6 values: 5 primary balotas followed by the bonus balota.
type Sorteo struct {
	ID        uint                     `gorm:"primaryKey" json:"id"`
	UserID    uint                     `gorm:"index;not null" json:"user_id"`
	Numbers   datatypes.JSONSlice[int] `json:"numbers"` // store as JSON array
	CreatedAt time.Time                `json:"created_at"`
}

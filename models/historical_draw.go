package models

import "time"

// HistoricalDraw is one past real-world draw loaded from an uploaded
// spreadsheet. Rows are only ever written in bulk by the ingestion pipeline,
// which replaces the whole table.
type HistoricalDraw struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Balota1   int       `json:"balota1"`
	Balota2   int       `json:"balota2"`
	Balota3   int       `json:"balota3"`
	Balota4   int       `json:"balota4"`
	Balota5   int       `json:"balota5"`
	Balota6   int       `json:"balota6"`
	CreatedAt time.Time `json:"created_at"`
}

// Primaries returns the five primary balotas in column order.
func (h HistoricalDraw) Primaries() [5]int {
	return [5]int{h.Balota1, h.Balota2, h.Balota3, h.Balota4, h.Balota5}
}

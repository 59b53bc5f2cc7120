package model

import "time"

// BaseModel handles the surrogate primary key and standard row timestamps.
// Timestamps are internal bookkeeping and stay out of the JSON contract.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

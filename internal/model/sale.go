package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale is an append-only sales record. Total is caller-supplied and stored
// verbatim; list views surface it as-is while the statistics aggregation
// recomputes quantity*price instead.
type Sale struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerCode string    `gorm:"type:varchar(50);not null;index" json:"customerCode"`
	Quantity     float64   `gorm:"not null" json:"quantity"`
	Price        float64   `gorm:"not null" json:"price"`
	Total        float64   `json:"total"`
	Date         time.Time `gorm:"not null;index" json:"date"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

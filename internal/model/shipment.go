package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shipment is an append-only record of goods delivered to a customer.
// Quantity is a whole unit count, unlike sale quantities which may be
// fractional.
type Shipment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerCode string    `gorm:"type:varchar(50);not null;index" json:"customerCode"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	Date         time.Time `gorm:"not null;index" json:"date"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (s *Shipment) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment is an append-only record of money received from a customer.
type Payment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerCode string    `gorm:"type:varchar(50);not null;index" json:"customerCode"`
	Amount       float64   `gorm:"not null" json:"amount"`
	Date         time.Time `gorm:"not null;index" json:"date"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

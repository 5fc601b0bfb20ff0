package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is a directory entry. Code is the human-assigned identifier that
// every transaction record references; the uuid is storage-internal only.
// Code is immutable once set, all other fields are mutable.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code      string    `gorm:"type:varchar(50);not null;uniqueIndex" json:"code"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	ShortName string    `gorm:"type:varchar(100)" json:"shortName"`
	StoreName string    `gorm:"type:varchar(255)" json:"storeName"`
	Region    string    `gorm:"type:varchar(100)" json:"region"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the storage id in the application so the model works
// against both postgres and the sqlite driver used in tests.
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

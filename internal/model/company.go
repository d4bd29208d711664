package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company is an employer-owned organization that jobs are posted under.
type Company struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string     `json:"name" gorm:"size:255;not null;index"`
	Description string     `json:"description"`
	Website     string     `json:"website" gorm:"size:255"`
	Location    string     `json:"location" gorm:"size:255"`
	Size        string     `json:"size" gorm:"size:100"`
	Industry    string     `json:"industry" gorm:"size:255"`
	Logo        string     `json:"logo"`
	OwnerID     *uuid.UUID `json:"ownerId" gorm:"type:uuid;index"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Experience is one work-history entry on a user profile. Start and end
// dates are free-form strings, matching what profile forms submit.
type Experience struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Company     string    `json:"company" gorm:"size:255;not null"`
	Description string    `json:"description"`
	StartDate   string    `json:"startDate" gorm:"size:100;not null"`
	EndDate     string    `json:"endDate" gorm:"size:100"`
	IsCurrent   bool      `json:"isCurrent" gorm:"default:false"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

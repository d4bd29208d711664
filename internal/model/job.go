package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobType is the employment arrangement of a posting.
type JobType string

const (
	JobTypeFullTime JobType = "full-time"
	JobTypePartTime JobType = "part-time"
	JobTypeContract JobType = "contract"
	JobTypeRemote   JobType = "remote"
)

// Job is a posting created by an employer. Inactive jobs stay in the table
// but are excluded from the default listing.
type Job struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Title        string     `json:"title" gorm:"size:255;not null"`
	Description  string     `json:"description" gorm:"not null"`
	Requirements string     `json:"requirements" gorm:"not null"`
	Location     string     `json:"location" gorm:"size:255;not null;index"`
	JobType      JobType    `json:"jobType" gorm:"size:50;not null;index"`
	SalaryMin    *int       `json:"salaryMin"`
	SalaryMax    *int       `json:"salaryMax"`
	Skills       []string   `json:"skills" gorm:"serializer:json"`
	CompanyID    *uuid.UUID `json:"companyId" gorm:"type:uuid;index"`
	EmployerID   *uuid.UUID `json:"employerId" gorm:"type:uuid;index"`
	IsActive     *bool      `json:"isActive" gorm:"default:true;index"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// BeforeCreate sets UUID and the active default before creating the record.
func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.IsActive == nil {
		active := true
		j.IsActive = &active
	}
	return nil
}

// Active reports whether the posting is live.
func (j *Job) Active() bool {
	return j.IsActive == nil || *j.IsActive
}

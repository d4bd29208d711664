package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationStatus tracks where a candidate is in the hiring pipeline.
type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusInterview   ApplicationStatus = "interview"
	ApplicationStatusOffered     ApplicationStatus = "offered"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// Application links a job seeker to a job they applied for. The unique index
// on (job_id, applicant_id) backstops the service-level duplicate check.
type Application struct {
	ID          uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	JobID       uuid.UUID         `json:"jobId" gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant;index"`
	ApplicantID uuid.UUID         `json:"applicantId" gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_applicant;index"`
	Status      ApplicationStatus `json:"status" gorm:"size:50;not null;default:'applied'"`
	CoverLetter string            `json:"coverLetter"`
	Resume      string            `json:"resume"`
	Notes       string            `json:"notes"`
	AppliedAt   time.Time         `json:"appliedAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// BeforeCreate sets UUID and status default before creating the record.
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = ApplicationStatusApplied
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserType distinguishes the three account kinds on the platform.
type UserType string

const (
	UserTypeJobSeeker UserType = "job_seeker"
	UserTypeEmployer  UserType = "employer"
	UserTypeAdmin     UserType = "admin"
)

// User is a registered account: job seeker, employer, or admin.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FirstName    string    `json:"firstName" gorm:"size:255;not null"`
	LastName     string    `json:"lastName" gorm:"size:255;not null"`
	UserType     UserType  `json:"userType" gorm:"size:50;not null;index"`
	Location     string    `json:"location" gorm:"size:255"`
	Title        string    `json:"title" gorm:"size:255"`
	Bio          string    `json:"bio"`
	Skills       []string  `json:"skills" gorm:"serializer:json"`
	ProfilePhoto string    `json:"profilePhoto"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// PublicUser is the serializable projection of User with credentials removed.
// Every user record leaving the service layer goes through this type, so
// forgetting to strip the password hash is a compile error, not a leak.
type PublicUser struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	UserType     UserType  `json:"userType"`
	Location     string    `json:"location"`
	Title        string    `json:"title"`
	Bio          string    `json:"bio"`
	Skills       []string  `json:"skills"`
	ProfilePhoto string    `json:"profilePhoto"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Public returns the credential-free projection of the user.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}
	return &PublicUser{
		ID:           u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		UserType:     u.UserType,
		Location:     u.Location,
		Title:        u.Title,
		Bio:          u.Bio,
		Skills:       u.Skills,
		ProfilePhoto: u.ProfilePhoto,
		CreatedAt:    u.CreatedAt,
	}
}

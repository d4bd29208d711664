package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is a direct message between two users, optionally tied to an
// application. Conversations are derived from the (sender, receiver) pair;
// there is no stored conversation entity.
type Message struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	SenderID      uuid.UUID  `json:"senderId" gorm:"type:uuid;not null;index"`
	ReceiverID    uuid.UUID  `json:"receiverId" gorm:"type:uuid;not null;index"`
	ApplicationID *uuid.UUID `json:"applicationId" gorm:"type:uuid"`
	Content       string     `json:"content" gorm:"not null"`
	IsRead        bool       `json:"isRead" gorm:"default:false"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

package entities

import (
	"github.com/google/uuid"
)

type Admin struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"size:100" json:"name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`

	Timestamp
}

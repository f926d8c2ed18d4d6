package model

import (
	"time"

	"gorm.io/gorm"
)

// Lessee wraps one User and holds the contracts signed by that user.
type Lessee struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User      User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Contracts []Contract `json:"contracts,omitempty" gorm:"foreignKey:LesseeID"`
}

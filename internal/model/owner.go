package model

import (
	"time"

	"gorm.io/gorm"
)

// Owner wraps one User and holds the properties and contracts registered
// under that user.
type Owner struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User       User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Properties []Property `json:"properties,omitempty" gorm:"foreignKey:OwnerID"`
	Contracts  []Contract `json:"contracts,omitempty" gorm:"foreignKey:OwnerID"`
}

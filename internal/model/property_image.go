package model

import (
	"time"

	"gorm.io/gorm"
)

// PropertyImage belongs to exactly one Property and holds the URL returned
// by the blob store. Images are deletable independently of the property.
type PropertyImage struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	PropertyID uint           `json:"property_id" gorm:"index;not null"`
	ImageURL   string         `json:"image_url" gorm:"type:varchar(255)"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Property Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}

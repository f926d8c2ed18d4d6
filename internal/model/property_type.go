package model

import (
	"time"

	"gorm.io/gorm"
)

// PropertyType is a named category (e.g. "Apartment") referenced by
// properties, never owned by them.
type PropertyType struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"type:varchar(50);not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Properties []Property `json:"properties,omitempty" gorm:"foreignKey:PropertyTypeID"`
}

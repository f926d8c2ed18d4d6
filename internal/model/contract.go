package model

import (
	"time"

	"gorm.io/gorm"
)

// Contract links one Owner, one Lessee and one Property. It owns none of
// them; deleting a contract never touches the linked rows. Date ordering and
// a single active contract per property are not enforced structurally.
type Contract struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	OwnerID    uint           `json:"owner_id" gorm:"index;not null"`
	LesseeID   uint           `json:"lessee_id" gorm:"index;not null"`
	PropertyID uint           `json:"property_id" gorm:"index;not null"`
	Price      float64        `json:"price" gorm:"not null"`
	StartDate  time.Time      `json:"start_date" gorm:"not null"`
	EndDate    time.Time      `json:"end_date" gorm:"not null"`
	IsActive   bool           `json:"is_active" gorm:"default:true"`
	Remarks    string         `json:"remarks" gorm:"type:text"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Owner    Owner    `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Lessee   Lessee   `json:"lessee,omitempty" gorm:"foreignKey:LesseeID"`
	Property Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}

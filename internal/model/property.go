package model

import (
	"time"

	"gorm.io/gorm"
)

// Property belongs to exactly one Owner and has exactly one PropertyType.
// Contracts keep the full rental history of the property, not just the
// current one.
type Property struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	OwnerID        uint           `json:"owner_id" gorm:"index;not null"`
	PropertyTypeID uint           `json:"property_type_id" gorm:"index;not null"`
	Address        string         `json:"address" gorm:"type:varchar(100);not null"`
	Neighborhood   string         `json:"neighborhood" gorm:"type:varchar(100)"`
	Price          float64        `json:"price" gorm:"not null"`
	Rooms          int            `json:"rooms"`
	SquareMeters   int            `json:"square_meters"`
	Stratum        int            `json:"stratum"`
	HasParkingLot  bool           `json:"has_parking_lot"`
	IsAvailable    bool           `json:"is_available" gorm:"default:true"`
	Remarks        string         `json:"remarks" gorm:"type:text"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Owner          Owner           `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	PropertyType   PropertyType    `json:"property_type,omitempty" gorm:"foreignKey:PropertyTypeID"`
	PropertyImages []PropertyImage `json:"property_images,omitempty" gorm:"foreignKey:PropertyID"`
	Contracts      []Contract      `json:"contracts,omitempty" gorm:"foreignKey:PropertyID"`
}

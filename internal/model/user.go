package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// User represents an identity record stored in the database. Owner and
// Lessee each wrap exactly one User; the user row is managed through the
// identity provider, never duplicated.
type User struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Email       string         `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	Password    string         `json:"-" gorm:"type:varchar(255)"`
	Document    string         `json:"document" gorm:"type:varchar(20);not null"`
	FirstName   string         `json:"first_name" gorm:"type:varchar(50);not null"`
	LastName    string         `json:"last_name" gorm:"type:varchar(50);not null"`
	Address     string         `json:"address" gorm:"type:varchar(100)"`
	PhoneNumber string         `json:"phone_number" gorm:"type:varchar(50)"`
	Role        string         `json:"role" gorm:"type:varchar(50)"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// FullNameWithDocument returns the label used in lessee selection lists.
func (u *User) FullNameWithDocument() string {
	return fmt.Sprintf("%s %s (%s)", u.FirstName, u.LastName, u.Document)
}

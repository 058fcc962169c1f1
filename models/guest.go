package models

import (
	"time"
)

// Guest is identified across the system by Email, which doubles as the
// login identity supplied by the auth layer. A row may be created by an
// admin or provisioned lazily on a guest's first booking.
type Guest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:50;not null" json:"firstName"`
	LastName  string `gorm:"size:255;not null" json:"lastName"`
	Email     string `gorm:"uniqueIndex;size:150;not null" json:"email"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

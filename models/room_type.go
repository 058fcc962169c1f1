package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomType is administrator-managed reference data. Rooms point back at it
// via RoomTypeID; the type itself holds no room collection.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string  `gorm:"size:100;not null" json:"name"`
	BasePrice float64 `gorm:"type:decimal(10,2);not null" json:"basePrice"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomNumber  string `gorm:"column:room_number;uniqueIndex;size:50;not null" json:"roomNumber"`
	RoomTypeID  uint   `gorm:"column:room_type_id;index;not null" json:"roomTypeId"`
	// No default tag here: gorm would skip zero values on insert and an
	// unavailable room could never be created. The controller defaults a
	// missing isAvailable to true instead.
	IsAvailable bool `gorm:"column:is_available" json:"isAvailable"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Loaded via Preload("RoomType") where a joined view is needed.
	RoomType *RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`
}

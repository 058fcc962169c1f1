package models

import (
	"time"
)

// Reservation books one room for one guest over the half-open date range
// [StartDate, EndDate). Version is the optimistic-lock counter checked on
// update; clients echo it back from the edit form.
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StartDate time.Time `gorm:"column:start_date;not null" json:"startDate"`
	EndDate   time.Time `gorm:"column:end_date;not null" json:"endDate"`

	RoomID  uint `gorm:"column:room_id;index;not null" json:"roomId"`
	GuestID uint `gorm:"column:guest_id;index;not null" json:"guestId"`

	ReferenceCode string `gorm:"column:reference_code;size:64" json:"referenceCode,omitempty"`
	Version       uint   `gorm:"column:version;not null;default:1" json:"version"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Room  *Room  `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Guest *Guest `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// HotelSetting is a singleton row of property-level settings managed by
// admins. Policies holds free-form JSON (check-in hours, cancellation
// policy, house rules) so the frontend can evolve without migrations.
type HotelSetting struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:255" json:"name"`
	Address   string         `gorm:"type:text" json:"address"`
	Phone     string         `gorm:"size:50" json:"phone"`
	Email     string         `gorm:"size:150" json:"email"`
	Policies  datatypes.JSON `gorm:"column:policies" json:"policies,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

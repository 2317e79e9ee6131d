package common

import (
	"time"

	"gorm.io/datatypes"
)

// Ticket is a booking record. ID is the primary key, so the store itself
// rejects a second row with the same id.
type Ticket struct {
	ID        string            `gorm:"primaryKey;size:64" json:"id"`
	Name      string            `gorm:"index;size:255;not null" json:"name"`
	NoHP      string            `gorm:"column:nohp;size:32;not null" json:"nohp"`
	Extra     datatypes.JSONMap `gorm:"column:extra" json:"extra,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (Ticket) TableName() string {
	return "tickets"
}

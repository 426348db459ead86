// model/parking.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Parking is one parking location. AvailableSlots never exceeds TotalSlots;
// IsAvailable normally tracks AvailableSlots > 0 but can be toggled on its
// own (lot closed for maintenance while slots remain free).
type Parking struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	TotalSlots     int       `json:"totalSlots"`
	AvailableSlots int       `json:"availableSlots"`
	IsAvailable    bool      `json:"isAvailable"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

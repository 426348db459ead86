package parking

// CreateParkingReq requires all three fields; the slot counts are pointers
// so an explicit 0 still counts as provided.
type CreateParkingReq struct {
	Name           string `json:"name" validate:"required"`
	TotalSlots     *int   `json:"totalSlots" validate:"required"`
	AvailableSlots *int   `json:"availableSlots" validate:"required"`
}

// UpdateParkingReq deliberately has no name field: a parking keeps its name
// for life, so rename attempts in the body are dropped on the floor here.
type UpdateParkingReq struct {
	TotalSlots     *int `json:"totalSlots"`
	AvailableSlots *int `json:"availableSlots"`
}

type AvailabilityReq struct {
	AvailableSlots *int  `json:"availableSlots"`
	IsAvailable    *bool `json:"isAvailable"`
}

package handler

import "time"

// messageResponse is the confirmation envelope returned by delete and by
// the error handler.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

// locationRequest uses pointers for the coordinates so that a present value
// of 0 is distinguishable from an absent field.
type locationRequest struct {
	Latitude  *float64 `json:"latitude"  validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Address   string   `json:"address"`
}

type createRequestRequest struct {
	WasteType   string          `json:"wasteType"   validate:"required,oneof=Household Recyclable Bulky Hazardous Garden Electronic Other"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Location    locationRequest `json:"location"    validate:"required"`
}

// updateLocationRequest is the partial-update counterpart of locationRequest:
// every field is optional, and absent fields keep their stored values.
type updateLocationRequest struct {
	Latitude  *float64 `json:"latitude"  validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	Address   *string  `json:"address"`
}

// updateRequestRequest is a partial update; nil fields keep their stored
// values. Coordinates nest under location, the same shape create uses.
// There is deliberately no status field; status moves only through the
// admin transition endpoint.
type updateRequestRequest struct {
	WasteType   *string                `json:"wasteType"   validate:"omitempty,oneof=Household Recyclable Bulky Hazardous Garden Electronic Other"`
	Description *string                `json:"description" validate:"omitempty,max=500"`
	Location    *updateLocationRequest `json:"location"`
}

type transitionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending 'In Progress' Completed Cancelled"`
}

// --- Response types ---
// Response-only types owned by the transport layer, intentionally separate
// from ports/domain types so the JSON contract is not coupled to internal
// service changes.

type locationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

type requestResponse struct {
	ID          string           `json:"id"`
	OwnerID     string           `json:"ownerId"`
	WasteType   string           `json:"wasteType"`
	Description string           `json:"description,omitempty"`
	Location    locationResponse `json:"location"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	OwnerName   string           `json:"ownerName,omitempty"`
	OwnerEmail  string           `json:"ownerEmail,omitempty"`
}

type listRequestsResponse struct {
	Data []requestResponse `json:"data"`
}

type statsResponse struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
}

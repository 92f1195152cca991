package domain

import (
	"errors"
	"fmt"
	"time"
)

// WasteType categorizes what a pickup request is for.
type WasteType string

const (
	WasteHousehold  WasteType = "Household"
	WasteRecyclable WasteType = "Recyclable"
	WasteBulky      WasteType = "Bulky"
	WasteHazardous  WasteType = "Hazardous"
	WasteGarden     WasteType = "Garden"
	WasteElectronic WasteType = "Electronic"
	WasteOther      WasteType = "Other"
)

// Valid reports whether w is a member of the waste type enumeration.
func (w WasteType) Valid() bool {
	switch w {
	case WasteHousehold, WasteRecyclable, WasteBulky, WasteHazardous,
		WasteGarden, WasteElectronic, WasteOther:
		return true
	}
	return false
}

// RequestStatus represents the lifecycle state of a pickup request.
//
// Pending is the sole initial state. Any status may move to any other
// status; transitions are always explicit and admin-triggered.
type RequestStatus string

const (
	StatusPending    RequestStatus = "Pending"
	StatusInProgress RequestStatus = "In Progress"
	StatusCompleted  RequestStatus = "Completed"
	StatusCancelled  RequestStatus = "Cancelled"
)

// Valid reports whether s is a member of the status enumeration.
func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// MaxDescriptionLen caps the free-text description of a request.
const MaxDescriptionLen = 500

var ErrRequestNotFound = errors.New("request not found")
var ErrForbidden = errors.New("not authorized")
var ErrValidation = errors.New("validation failed")
var ErrInvalidStatus = errors.New("invalid status value")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Location is the geographic point a pickup was requested at.
type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
	Address   string  `json:"address,omitempty" bson:"address,omitempty"`
}

// Request is the core aggregate: a single waste pickup request.
type Request struct {
	ID          string        `json:"id" bson:"_id"`
	OwnerID     string        `json:"ownerId" bson:"owner_id"`
	WasteType   WasteType     `json:"wasteType" bson:"waste_type"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	Location    Location      `json:"location" bson:"location"`
	Status      RequestStatus `json:"status" bson:"status"`
	CreatedAt   time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updated_at"`
}

// Validate checks the field invariants that must hold for every persisted
// request. A request failing any of them is never written to the store.
func (r *Request) Validate() error {
	if !r.WasteType.Valid() {
		return fmt.Errorf("%w: wasteType must be one of Household, Recyclable, Bulky, Hazardous, Garden, Electronic, Other", ErrValidation)
	}
	if !r.Status.Valid() {
		return fmt.Errorf("%w: status must be one of Pending, In Progress, Completed, Cancelled", ErrValidation)
	}
	if len(r.Description) > MaxDescriptionLen {
		return fmt.Errorf("%w: description exceeds %d characters", ErrValidation, MaxDescriptionLen)
	}
	if r.Location.Latitude < -90 || r.Location.Latitude > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90", ErrValidation)
	}
	if r.Location.Longitude < -180 || r.Location.Longitude > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180", ErrValidation)
	}
	return nil
}

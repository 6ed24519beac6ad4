package types

import "time"

// BookingStatus is the lifecycle state of a consultation booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether the status is one of the enumerated values.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking represents a stored consultation request. Status is the only
// field that changes after creation.
type Booking struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	ProjectType string        `json:"projectType"`
	Budget      string        `json:"budget,omitempty"`
	Location    string        `json:"location,omitempty"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Message     string        `json:"message,omitempty"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// BookingCreate represents the request body for booking a consultation.
// A client-supplied status is ignored; the store always assigns "pending".
type BookingCreate struct {
	Name        string `json:"name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email,max=255"`
	Phone       string `json:"phone" binding:"required,max=30"`
	ProjectType string `json:"projectType" binding:"required,max=100"`
	Budget      string `json:"budget,omitempty" binding:"max=100"`
	Location    string `json:"location,omitempty" binding:"max=200"`
	Date        string `json:"date" binding:"required,max=20"`
	Time        string `json:"time" binding:"required,max=20"`
	Message     string `json:"message,omitempty" binding:"max=5000"`
	Terms       bool   `json:"terms"`
}

// BookingStatusUpdate represents the request body for the status update
// endpoint.
type BookingStatusUpdate struct {
	Status BookingStatus `json:"status" binding:"required"`
}

package docs

import (
	"time"
)

// This file contains models used by Swagger documentation
// It doesn't affect the actual application logic, just documentation

// ContactResponse is used for Swagger documentation
// @Description A stored contact-form inquiry
type ContactResponse struct {
	// The inquiry ID
	ID int64 `json:"id" example:"1"`

	// The sender's name
	Name string `json:"name" example:"Sarah Johnson"`

	// The sender's email address
	Email string `json:"email" example:"sarah.j@gmail.com"`

	// The sender's phone number
	Phone string `json:"phone" example:"+27 83 555 7890"`

	// The inquiry subject line
	Subject string `json:"subject" example:"Home Gym Quote"`

	// The inquiry body
	Message string `json:"message" example:"Looking for a quote on a garage gym build."`

	// When the inquiry was submitted
	CreatedAt time.Time `json:"createdAt" example:"2025-06-01T09:30:00Z"`
}

// BookingResponse is used for Swagger documentation
// @Description A stored consultation booking
type BookingResponse struct {
	// The booking ID
	ID int64 `json:"id" example:"1"`

	// The client's name
	Name string `json:"name" example:"Sarah Johnson"`

	// The client's email address
	Email string `json:"email" example:"sarah.j@gmail.com"`

	// The requested project type
	ProjectType string `json:"projectType" example:"Home Gym Design"`

	// The client's budget range
	Budget string `json:"budget" example:"R50,000 - R100,000"`

	// The installation location
	Location string `json:"location" example:"Cape Town, Claremont"`

	// The requested consultation date
	Date string `json:"date" example:"2025-06-15"`

	// The requested consultation time
	Time string `json:"time" example:"10:00"`

	// The booking lifecycle status
	Status string `json:"status" example:"pending"`

	// When the booking was submitted
	CreatedAt time.Time `json:"createdAt" example:"2025-06-01T09:30:00Z"`
}

// ErrorResponse represents an error response
// @Description Error information
type ErrorResponse struct {
	// Error message
	Error string `json:"error" example:"validation_failed"`

	// Field-level validation details
	Details []FieldError `json:"details,omitempty"`
}

// FieldError describes a single invalid request field
// @Description Field-level validation failure
type FieldError struct {
	// The offending JSON field name
	Field string `json:"field" example:"email"`

	// Why the field was rejected
	Reason string `json:"reason" example:"is required"`
}

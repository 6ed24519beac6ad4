package types

// StatusResponse is the generic success envelope for mutations.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ContactResponse wraps a created contact in the success envelope.
type ContactResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Contact *Contact `json:"contact,omitempty"`
}

// BookingResponse wraps a booking in the success envelope.
type BookingResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Booking *Booking `json:"booking"`
}

// ErrorResponse is the error envelope produced by the error-handler
// middleware.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// HealthResponse reports process liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

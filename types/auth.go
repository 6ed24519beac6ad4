package types

// Credentials is an admin username/password pair compared in constant time
// against the configured values. Prototype-grade: replace with hashed
// credentials and session issuance before any production use.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for the admin login endpoint.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminUser describes the authenticated admin in login responses.
type AdminUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse is the response body for the admin login endpoint.
type LoginResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	User    *AdminUser `json:"user,omitempty"`
}

package types

// EmailMessage is a raw outbound email as accepted by the send_email
// endpoint. TextContent falls back to the subject when empty.
type EmailMessage struct {
	To          string `json:"to" binding:"required,email"`
	Subject     string `json:"subject" binding:"required"`
	HTMLContent string `json:"htmlContent" binding:"required"`
	TextContent string `json:"textContent,omitempty"`
}

// EmailSendResponse is returned after a successful raw send.
type EmailSendResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
}

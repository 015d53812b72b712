package models

import "time"

// Inquiry is a user-submitted contact request. All three text fields are
// required; SubmittedAt is assigned by the server, never by the client.
type Inquiry struct {
	Name        string    `json:"name" binding:"required"`
	Contact     string    `json:"contact" binding:"required"`
	Message     string    `json:"message" binding:"required"`
	SubmittedAt time.Time `json:"submitted_at"`
}

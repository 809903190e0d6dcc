package models

import "time"

// ContactMessage is a visitor submission from the public contact form.
// Messages are created unauthenticated via POST /contact and are read-only
// from the dashboard.
type ContactMessage struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the ContactMessage model.
func (c ContactMessage) TableName() string {
	return "contact_messages"
}

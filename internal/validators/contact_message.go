package validators

import (
	"context"
	"fmt"
	"strings"

	"go-folio/models"
)

// Field name constants used to specify which fields should be validated.
// They are passed to Validate to restrict validation to a subset of fields.
const (
	// FieldName targets the visitor's display name.
	FieldName = "name"

	// FieldEmail targets the reply address of the submission.
	FieldEmail = "email"

	// FieldMessage targets the message body.
	FieldMessage = "message"
)

// ContactMessageValidator validates visitor submissions from the public
// contact form. With no field names given, every rule is applied.
type ContactMessageValidator struct{}

func NewContactMessageValidator() *ContactMessageValidator {
	return &ContactMessageValidator{}
}

// Validate implements [Validator] for [models.ContactMessage].
func (v *ContactMessageValidator) Validate(_ context.Context, value any, fields ...string) error {
	message, ok := value.(models.ContactMessage)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldMessage}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if strings.TrimSpace(message.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			email := strings.TrimSpace(message.Email)
			if email == "" {
				return ErrEmptyEmail
			}
			if !looksLikeEmail(email) {
				return ErrMalformedEmail
			}
		case FieldMessage:
			if strings.TrimSpace(message.Message) == "" {
				return ErrEmptyMessage
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// looksLikeEmail accepts a single "@" with text on both sides. The public
// form is the real validator; this only rejects obvious garbage.
func looksLikeEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.Contains(email[at+1:], "@")
}

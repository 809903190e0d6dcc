package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-folio/models"
)

func validMessage() models.ContactMessage {
	return models.ContactMessage{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hello",
		Message: "Nice site",
	}
}

func TestContactMessageValidator_Valid(t *testing.T) {
	v := NewContactMessageValidator()

	require.NoError(t, v.Validate(context.Background(), validMessage()))
}

func TestContactMessageValidator_MissingFields(t *testing.T) {
	v := NewContactMessageValidator()

	tests := []struct {
		name    string
		mutate  func(*models.ContactMessage)
		wantErr error
	}{
		{"empty name", func(m *models.ContactMessage) { m.Name = "" }, ErrEmptyName},
		{"blank name", func(m *models.ContactMessage) { m.Name = "   " }, ErrEmptyName},
		{"empty email", func(m *models.ContactMessage) { m.Email = "" }, ErrEmptyEmail},
		{"empty message", func(m *models.ContactMessage) { m.Message = "" }, ErrEmptyMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMessage()
			tt.mutate(&m)

			err := v.Validate(context.Background(), m)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestContactMessageValidator_MalformedEmail(t *testing.T) {
	v := NewContactMessageValidator()

	for _, email := range []string{"not-an-email", "@example.com", "visitor@", "a@b@c"} {
		t.Run(email, func(t *testing.T) {
			m := validMessage()
			m.Email = email

			err := v.Validate(context.Background(), m)
			assert.ErrorIs(t, err, ErrMalformedEmail)
		})
	}
}

func TestContactMessageValidator_FieldScoping(t *testing.T) {
	v := NewContactMessageValidator()

	m := validMessage()
	m.Name = ""

	// Only the email field is requested, so the empty name passes.
	require.NoError(t, v.Validate(context.Background(), m, FieldEmail))
	assert.ErrorIs(t, v.Validate(context.Background(), m, FieldName), ErrEmptyName)
}

func TestContactMessageValidator_UnknownField(t *testing.T) {
	v := NewContactMessageValidator()

	err := v.Validate(context.Background(), validMessage(), "phone")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestContactMessageValidator_UnsupportedType(t *testing.T) {
	v := NewContactMessageValidator()

	err := v.Validate(context.Background(), "not a message")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

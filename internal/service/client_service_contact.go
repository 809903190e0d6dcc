package service

import (
	"context"
	"strings"

	"go-folio/internal/adapter"
	"go-folio/models"
)

type clientContactService struct {
	gateway adapter.Gateway
}

func NewClientContactService(gateway adapter.Gateway) ClientContactService {
	return &clientContactService{gateway: gateway}
}

// Submit sends a contact-form message. Required fields are checked locally
// before the request goes out so an obviously empty form never hits the
// network.
func (s *clientContactService) Submit(ctx context.Context, message models.ContactMessage) error {
	if strings.TrimSpace(message.Name) == "" ||
		strings.TrimSpace(message.Email) == "" ||
		strings.TrimSpace(message.Message) == "" {
		return ErrInvalidDataProvided
	}

	return s.gateway.SubmitContact(ctx, message)
}

func (s *clientContactService) Messages(ctx context.Context) ([]models.ContactMessage, error) {
	return s.gateway.ListContactMessages(ctx)
}

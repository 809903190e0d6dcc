package service

import (
	"context"
	"fmt"
	"strings"

	"go-folio/internal/logger"
	"go-folio/internal/store"
	"go-folio/internal/validators"
	"go-folio/models"
)

type contactService struct {
	repository store.ContactRepository
	validator  validators.Validator
	logger     *logger.Logger
}

func NewContactService(repository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		repository: repository,
		validator:  validators.NewContactMessageValidator(),
		logger:     logger,
	}
}

// SubmitMessage persists a visitor's contact-form submission. Name, email and
// message are required; the validator rejects obviously malformed addresses.
func (s *contactService) SubmitMessage(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error) {
	log := logger.FromContext(ctx)

	message.Name = strings.TrimSpace(message.Name)
	message.Email = strings.TrimSpace(message.Email)
	message.Message = strings.TrimSpace(message.Message)

	if err := s.validator.Validate(ctx, message); err != nil {
		log.Error().Err(err).Str("email", message.Email).Msg("contact message rejected")
		return models.ContactMessage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.repository.CreateContactMessage(ctx, message)
	if err != nil {
		log.Err(err).Str("email", message.Email).Msg("contact message creation failed")
		return models.ContactMessage{}, fmt.Errorf("contact message creation failed: %w", err)
	}

	return created, nil
}

func (s *contactService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	messages, err := s.repository.ListContactMessages(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("contact message list failed")
		return nil, fmt.Errorf("contact message list failed: %w", err)
	}

	return messages, nil
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-folio/internal/logger"
	"go-folio/internal/mock"
	"go-folio/models"
)

func newTestContactService(t *testing.T, ctrl *gomock.Controller) (ContactService, *mock.MockContactRepository) {
	t.Helper()
	repo := mock.NewMockContactRepository(ctrl)
	return NewContactService(repo, logger.Nop()), repo
}

func TestContactService_SubmitMessage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestContactService(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateContactMessage(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m models.ContactMessage) (models.ContactMessage, error) {
			m.ID = 1
			return m, nil
		},
	)

	created, err := svc.SubmitMessage(ctx, models.ContactMessage{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Hi",
		Message: "Nice site",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestContactService_SubmitMessage_TrimsWhitespace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestContactService(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateContactMessage(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m models.ContactMessage) (models.ContactMessage, error) {
			assert.Equal(t, "Visitor", m.Name)
			assert.Equal(t, "visitor@example.com", m.Email)
			return m, nil
		},
	)

	_, err := svc.SubmitMessage(ctx, models.ContactMessage{
		Name:    "  Visitor  ",
		Email:   " visitor@example.com ",
		Message: "hello",
	})
	require.NoError(t, err)
}

func TestContactService_SubmitMessage_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestContactService(t, ctrl)
	ctx := context.Background()

	cases := []models.ContactMessage{
		{Email: "v@example.com", Message: "hello"},
		{Name: "Visitor", Message: "hello"},
		{Name: "Visitor", Email: "v@example.com"},
		{Name: "   ", Email: "v@example.com", Message: "hello"},
	}

	for _, message := range cases {
		_, err := svc.SubmitMessage(ctx, message)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestContactService_SubmitMessage_MalformedEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestContactService(t, ctrl)
	ctx := context.Background()

	for _, email := range []string{"not-an-email", "@example.com", "visitor@", "a@b@c"} {
		_, err := svc.SubmitMessage(ctx, models.ContactMessage{Name: "V", Email: email, Message: "hi"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided, "email %q should be rejected", email)
	}
}

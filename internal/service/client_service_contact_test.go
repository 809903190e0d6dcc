package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-folio/internal/mock"
	"go-folio/models"
)

func TestClientContactService_Submit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock.NewMockGateway(ctrl)
	svc := NewClientContactService(gateway)
	ctx := context.Background()

	message := models.ContactMessage{Name: "Visitor", Email: "v@example.com", Message: "hello"}
	gateway.EXPECT().SubmitContact(ctx, message).Return(nil)

	require.NoError(t, svc.Submit(ctx, message))
}

func TestClientContactService_Submit_EmptyFormNeverHitsNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock.NewMockGateway(ctrl)
	svc := NewClientContactService(gateway)
	ctx := context.Background()

	// no gateway expectation: validation fails locally
	err := svc.Submit(ctx, models.ContactMessage{Name: " ", Email: "", Message: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientProjectService_CreateRequiresTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock.NewMockGateway(ctrl)
	svc := NewClientProjectService(gateway)

	_, err := svc.Create(context.Background(), models.Project{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientSkillService_ListReturnsGroupedShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock.NewMockGateway(ctrl)
	svc := NewClientSkillService(gateway)
	ctx := context.Background()

	want := models.SkillsByCategory{"Languages": {{ID: 1, Category: "Languages", Name: "Go"}}}
	gateway.EXPECT().ListSkills(ctx).Return(want, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

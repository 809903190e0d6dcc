// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-folio/internal/mock"
	"go-folio/models"
)

func newTestClientAuthSvc(t *testing.T, ctrl *gomock.Controller) (ClientAuthService, *mock.MockSessionStore, *mock.MockGateway) {
	t.Helper()
	session := mock.NewMockSessionStore(ctrl)
	gateway := mock.NewMockGateway(ctrl)
	return NewClientAuthService(session, gateway), session, gateway
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_PersistsTokenAndUserTogether(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, session, gateway := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: 1, Username: "admin"}

	gomock.InOrder(
		gateway.EXPECT().Login(ctx, models.Credentials{Username: "admin", Password: "admin123"}).
			Return(models.LoginResponse{Token: "signed.jwt", User: user}, nil),
		session.EXPECT().Save(ctx, "signed.jwt", user).Return(nil),
	)

	require.NoError(t, svc.Login(ctx, "admin", "admin123"))
}

func TestClientAuthService_Login_ServerRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, gateway := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	// no session.Save expectation: a rejected login must not touch the store
	gateway.EXPECT().Login(ctx, gomock.Any()).
		Return(models.LoginResponse{}, errors.New("401: Invalid credentials"))

	err := svc.Login(ctx, "admin", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginOnServer)
}

func TestClientAuthService_Login_SessionSaveFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, session, gateway := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	gateway.EXPECT().Login(ctx, gomock.Any()).
		Return(models.LoginResponse{Token: "signed.jwt", User: models.User{ID: 1}}, nil)
	session.EXPECT().Save(ctx, "signed.jwt", gomock.Any()).Return(errors.New("disk full"))

	err := svc.Login(ctx, "admin", "admin123")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionNotSaved)
}

func TestClientAuthService_Login_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Login(ctx, "", "password"), ErrInvalidDataProvided)
	assert.ErrorIs(t, svc.Login(ctx, "admin", ""), ErrInvalidDataProvided)
}

// ── Logout and session state ─────────────────────────────────────────────────

func TestClientAuthService_Logout_ClearsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, session, _ := newTestClientAuthSvc(t, ctrl)
	ctx := context.Background()

	session.EXPECT().Clear(ctx).Return(nil)

	require.NoError(t, svc.Logout(ctx))
}

func TestClientAuthService_IsAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, session, _ := newTestClientAuthSvc(t, ctrl)

	session.EXPECT().Token().Return("signed.jwt")
	assert.True(t, svc.IsAuthenticated())

	session.EXPECT().Token().Return("")
	assert.False(t, svc.IsAuthenticated())
}

func TestClientAuthService_User_DelegatesToSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, session, _ := newTestClientAuthSvc(t, ctrl)

	want := models.User{ID: 1, Username: "admin"}
	session.EXPECT().User().Return(want, true)

	got, ok := svc.User()
	require.True(t, ok)
	assert.Equal(t, want, got)
}

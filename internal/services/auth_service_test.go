package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/varsitymarket/varsity-market-backend/internal/dto"
	"github.com/varsitymarket/varsity-market-backend/internal/models"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:      "alice@uct.ac.za",
		Password:   "password123",
		Name:       "Alice Johnson",
		University: "University of Cape Town",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Alice Johnson", resp.User.Name)
	assert.Equal(t, models.RoleUser, resp.User.Role)

	login, err := svc.Login(&dto.LoginRequest{Email: "alice@uct.ac.za", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = svc.Login(&dto.LoginRequest{Email: "alice@uct.ac.za", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	req := &dto.RegisterRequest{
		Email:    "alice@uct.ac.za",
		Password: "password123",
		Name:     "Alice Johnson",
	}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.Register(&dto.RegisterRequest{Email: "a@b.c", Password: "short", Name: "A"})
	assert.Error(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Email: "a@b.c", Password: "password123"})
	assert.Error(t, err, "name is required")
}

func TestRefreshRotatesToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:    "alice@uct.ac.za",
		Password: "password123",
		Name:     "Alice Johnson",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, refreshed.RefreshToken)

	// The old token is single-use.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:    "alice@uct.ac.za",
		Password: "password123",
		Name:     "Alice Johnson",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDeleteAccountRequiresPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:    "alice@uct.ac.za",
		Password: "password123",
		Name:     "Alice Johnson",
	})
	require.NoError(t, err)

	assert.Error(t, svc.DeleteAccount(resp.User.ID, ""))
	assert.ErrorIs(t, svc.DeleteAccount(resp.User.ID, "wrong"), ErrInvalidCredentials)
	assert.NoError(t, svc.DeleteAccount(resp.User.ID, "password123"))

	_, err = svc.CurrentUser(resp.User.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/varsitymarket/varsity-market-backend/internal/dto"
)

func TestUpdateProfileAcceptsE164Phone(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	user := createTestUser(t, db, "Alice Johnson", "alice@uct.ac.za")

	updated, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		PhoneNumber: strPtr("+27821234567"),
	})
	require.NoError(t, err)
	assert.Equal(t, "+27821234567", updated.PhoneNumber)
	assert.Equal(t, "https://wa.me/27821234567", updated.WhatsAppLink())
}

func TestUpdateProfileRejectsMalformedPhone(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	user := createTestUser(t, db, "Alice Johnson", "alice@uct.ac.za")

	for _, phone := range []string{"0821234567", "+1", "27821234567", "+2782123456789012345"} {
		_, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{PhoneNumber: strPtr(phone)})
		assert.ErrorIs(t, err, ErrInvalidPhone, "phone %q must be rejected", phone)
	}
}

func TestUpdateProfileClearsPhone(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	user := createTestUser(t, db, "Alice Johnson", "alice@uct.ac.za")

	_, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{PhoneNumber: strPtr("+27821234567")})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{PhoneNumber: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, updated.PhoneNumber)
}

func TestUpdateProfileMergesFields(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	user := createTestUser(t, db, "Alice Johnson", "alice@uct.ac.za")

	updated, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		University: strPtr("Rhodes University"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Rhodes University", updated.University)
	assert.Equal(t, "Alice Johnson", updated.Name, "unset fields keep their values")

	_, err = svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{Name: strPtr("")})
	assert.Error(t, err)
}

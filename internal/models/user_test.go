package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPhoneNumber(t *testing.T) {
	valid := []string{
		"+27821234567",
		"+14155552671",
		"+442071838750",
	}
	for _, phone := range valid {
		assert.True(t, ValidPhoneNumber(phone), "%q should be valid", phone)
	}

	invalid := []string{
		"",
		"0821234567",       // no leading +
		"27821234567",      // country code without +
		"+1",               // too short
		"+123456789",       // nine digits, one short
		"+123456789012345", // fifteen digits, one over
		"+27 82 123 4567",  // spaces
		"+27-82-123-4567",  // punctuation
		"phone",
	}
	for _, phone := range invalid {
		assert.False(t, ValidPhoneNumber(phone), "%q should be invalid", phone)
	}
}

func TestWhatsAppLink(t *testing.T) {
	u := &User{PhoneNumber: "+27821234567"}
	assert.Equal(t, "https://wa.me/27821234567", u.WhatsAppLink())

	// Formatting characters are stripped, only digits remain.
	u.PhoneNumber = "+27 (82) 123-4567"
	assert.Equal(t, "https://wa.me/27821234567", u.WhatsAppLink())

	u.PhoneNumber = ""
	assert.Empty(t, u.WhatsAppLink())
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.True(t, (&User{Role: "Admin"}).IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
	assert.False(t, (&User{}).IsAdmin())
}

func TestValidCategoryAndCondition(t *testing.T) {
	assert.True(t, ValidCategory("Textbooks"))
	assert.False(t, ValidCategory("Cars"))
	assert.False(t, ValidCategory(""))

	assert.True(t, ValidCondition("Like New"))
	assert.False(t, ValidCondition("Broken"))
}

package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Universities supported by the marketplace.
var Universities = []string{
	"University of Cape Town",
	"Stellenbosch University",
	"Wits University",
	"University of Pretoria",
	"Rhodes University",
}

// User is a marketplace account. Sellers and buyers share the same model;
// admins are distinguished by Role.
type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password    string         `gorm:"not null" json:"-"`
	Name        string         `gorm:"not null;size:100" json:"name"`
	AvatarURL   string         `gorm:"size:500" json:"avatar_url"`
	University  string         `gorm:"size:100" json:"university"`
	PhoneNumber string         `gorm:"size:20" json:"phone_number,omitempty"`
	Role        string         `gorm:"size:20;default:'user'" json:"role"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// E.164: leading '+' followed by 10-14 digits.
var e164Pattern = regexp.MustCompile(`^\+\d{10,14}$`)

// ValidPhoneNumber reports whether s is a valid E.164 phone number.
func ValidPhoneNumber(s string) bool {
	return e164Pattern.MatchString(s)
}

var nonDigits = regexp.MustCompile(`\D`)

// WhatsAppLink builds a wa.me deep link from the user's phone number.
// Returns "" when no phone number is set.
func (u *User) WhatsAppLink() string {
	if u.PhoneNumber == "" {
		return ""
	}
	digits := nonDigits.ReplaceAllString(u.PhoneNumber, "")
	if digits == "" {
		return ""
	}
	return "https://wa.me/" + digits
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return strings.EqualFold(u.Role, RoleAdmin)
}

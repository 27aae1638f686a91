package models

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
	RoleAdmin   Role = "admin"
)

// ParseRole converts a free-form role string into the closed Role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleDoctor, RolePatient, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// User represents an identity record. Email and phone are nullable but unique
// when present; at least one of them must be set. Password is nullable because
// patients created through the staff booking flow may not have logged in yet.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     *string   `gorm:"uniqueIndex;size:100" json:"email"`
	Phone     *string   `gorm:"uniqueIndex;size:20" json:"phone"`
	Password  *string   `gorm:"size:255" json:"-"` // Never send password in JSON
	Role      Role      `gorm:"size:20;not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`

	// Relations (not always preloaded)
	Doctor  *Doctor  `gorm:"foreignKey:ID" json:"-"`
	Patient *Patient `gorm:"foreignKey:ID" json:"-"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hashed := string(hashedPassword)
	u.Password = &hashed
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	if u.Password == nil {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(*u.Password), []byte(password))
	return err == nil
}

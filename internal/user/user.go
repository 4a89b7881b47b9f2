// Package user defines the account record shared by every storage backend.
package user

import (
	"fmt"
	"strings"
	"time"
)

// User is a registered account. Password holds the bcrypt hash and is
// never serialised.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name,omitempty"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser is the payload for creating an account.
type NewUser struct {
	Username  string
	Email     string
	Password  string
	Name      string
	FirstName string
	LastName  string
	Avatar    string
	Bio       string
}

// Validate checks the fields every account needs.
func (n NewUser) Validate() error {
	if strings.TrimSpace(n.Username) == "" {
		return fmt.Errorf("username is required")
	}
	if strings.TrimSpace(n.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if n.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// Build turns the payload into a stored account.
func (n NewUser) Build(id int64, createdAt time.Time) User {
	return User{
		ID:        id,
		Username:  n.Username,
		Email:     n.Email,
		Password:  n.Password,
		Name:      n.Name,
		FirstName: n.FirstName,
		LastName:  n.LastName,
		Avatar:    n.Avatar,
		Bio:       n.Bio,
		CreatedAt: createdAt,
	}
}

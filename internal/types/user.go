package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleVendor   UserRole = "vendor"
)

type User struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Role        UserRole     `json:"role"`
	Preferences *Preferences `json:"preferences"`
	CreatedAt   time.Time    `json:"created_at"`
}

type CreateUserParams struct {
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Role        UserRole     `json:"role,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// Validate applies defaults (role customer) and checks required fields.
func (p *CreateUserParams) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case p.Email == "":
		return fmt.Errorf("%w: email is required", ErrValidation)
	case p.Phone == "":
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}
	switch p.Role {
	case "":
		p.Role = RoleCustomer
	case RoleCustomer, RoleVendor:
	default:
		return fmt.Errorf("%w: unknown role %q", ErrValidation, p.Role)
	}
	if p.Preferences != nil {
		return p.Preferences.Validate()
	}
	return nil
}

// PreferencesOrZero never returns nil.
func (u *User) PreferencesOrZero() Preferences {
	if u == nil || u.Preferences == nil {
		return Preferences{}
	}
	return *u.Preferences
}

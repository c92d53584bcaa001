// Package models defines the records exchanged with the Shopping World API.
package models

import "strings"

// AccountType is the role an account was registered with.
type AccountType string

const (
	AccountTypeBuyer  AccountType = "buyer"
	AccountTypeSeller AccountType = "seller"
)

// Is reports whether a equals other ignoring case. The API has returned
// both "buyer" and "Buyer" for the same role.
func (a AccountType) Is(other AccountType) bool {
	return strings.EqualFold(string(a), string(other))
}

type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

// User is an account record. Email identifies the account; two User values
// with the same Email describe the same person.
//
// Password is write-only: it is sent on registration and never shown, and
// Sanitized drops it from records that came back from the server.
type User struct {
	Name               string      `json:"name" validate:"required"`
	Email              string      `json:"email" validate:"required,email"`
	Password           string      `json:"password,omitempty" validate:"required,min=8,has_upper,has_digit,has_special"`
	Age                int         `json:"age" validate:"required,min=18"`
	Gender             Gender      `json:"gender" validate:"required,oneof=female male"`
	AccountType        AccountType `json:"accountType" validate:"required,oneof=buyer seller"`
	PhoneNumber        string      `json:"phoneNumber" validate:"required,e164"`
	TermsAndConditions bool        `json:"termsAndConditions" validate:"eq=true"`
}

// Clone returns a copy of u, or nil for a nil receiver.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// Sanitized returns a copy of u without the password.
func (u *User) Sanitized() *User {
	c := u.Clone()
	if c != nil {
		c.Password = ""
	}
	return c
}

// SameIdentity reports whether a and b refer to the same account. Two nil
// users are the same; a nil and a non-nil user are not.
func SameIdentity(a, b *User) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Email == b.Email
}

// Credentials is the login form payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,has_upper,has_digit,has_special"`
}

// AuthResponse is returned by the login endpoint. An empty AccessToken means
// the server did not complete the authentication.
type AuthResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"access_token,omitempty"`
}

// ProfileResponse is returned by the profile endpoint.
type ProfileResponse struct {
	User *User `json:"user"`
}

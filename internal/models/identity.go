// Package models defines the persisted record types: identities, chat
// messages, and incident reports.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Identity is a registered account as stored in the identity list.
// The secret is kept verbatim: Haven is a demonstration client with no real
// credential security, and the stored form makes that explicit rather than
// pretending otherwise.
type Identity struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Secret      string    `json:"secret"`
	CreatedAt   time.Time `json:"created_at"`
}

// Profile is the secret-free projection of an Identity. It is the payload of
// the session key and the only identity shape handed to callers.
type Profile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// Profile strips the secret from an Identity.
func (i Identity) Profile() Profile {
	return Profile{
		ID:          i.ID,
		Email:       i.Email,
		DisplayName: i.DisplayName,
		CreatedAt:   i.CreatedAt,
	}
}

// NewIdentityID returns an opaque unique identity id.
func NewIdentityID() string {
	return uuid.NewString()
}

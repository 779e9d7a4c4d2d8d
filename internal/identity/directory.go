// Package identity manages the set of registered identities and the current
// session pointer. Both live in the key-value store: the full identity list
// (secrets included) under one key, and the secret-free session snapshot
// under another, so a session survives a process restart.
package identity

import (
	"context"
	"time"

	"github.com/havenlocal/haven/internal/common"
	"github.com/havenlocal/haven/internal/kv"
	"github.com/havenlocal/haven/internal/models"
)

const (
	usersKey   = "users"
	sessionKey = "current-user"
)

// Directory is the identity service. Every mutating call writes through to
// the store synchronously; there is no caching layer to invalidate.
type Directory struct {
	store kv.Store
}

// NewDirectory returns a Directory persisting through store.
func NewDirectory(store kv.Store) *Directory {
	return &Directory{store: store}
}

func (d *Directory) identities(ctx context.Context) ([]models.Identity, error) {
	var list []models.Identity
	if _, err := kv.GetJSON(ctx, d.store, usersKey, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Register creates a new identity and opens a session for it. The email must
// not match any stored identity exactly; otherwise common.ErrAlreadyExists is
// returned and the stored list is left untouched. The returned Profile never
// carries the secret.
func (d *Directory) Register(ctx context.Context, email, secret, displayName string) (models.Profile, error) {
	list, err := d.identities(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	for _, id := range list {
		if id.Email == email {
			return models.Profile{}, common.ErrAlreadyExists
		}
	}

	id := models.Identity{
		ID:          models.NewIdentityID(),
		Email:       email,
		DisplayName: displayName,
		Secret:      secret,
		CreatedAt:   time.Now(),
	}

	list = append(list, id)
	if err := kv.SetJSON(ctx, d.store, usersKey, list); err != nil {
		return models.Profile{}, err
	}

	profile := id.Profile()
	if err := kv.SetJSON(ctx, d.store, sessionKey, profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// Login scans the stored identities for an exact (email, secret) match and
// opens a session for the winner. A miss returns common.ErrInvalidCredentials
// without revealing whether the email or the secret was wrong.
func (d *Directory) Login(ctx context.Context, email, secret string) (models.Profile, error) {
	list, err := d.identities(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	for _, id := range list {
		if id.Email == email && id.Secret == secret {
			profile := id.Profile()
			if err := kv.SetJSON(ctx, d.store, sessionKey, profile); err != nil {
				return models.Profile{}, err
			}
			return profile, nil
		}
	}
	return models.Profile{}, common.ErrInvalidCredentials
}

// Logout clears the session pointer. It is idempotent: logging out with no
// open session succeeds.
func (d *Directory) Logout(ctx context.Context) error {
	return d.store.Delete(ctx, sessionKey)
}

// Current returns the persisted session, if any. It re-reads the store on
// every call, so route guards see the same state a restarted process would.
func (d *Directory) Current(ctx context.Context) (models.Profile, bool, error) {
	var profile models.Profile
	ok, err := kv.GetJSON(ctx, d.store, sessionKey, &profile)
	if err != nil {
		return models.Profile{}, false, err
	}
	return profile, ok, nil
}

package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havenlocal/haven/internal/common"
	"github.com/havenlocal/haven/internal/kv"
)

func TestRegister_OpensSession(t *testing.T) {
	store := kv.NewMemoryStore()
	d := NewDirectory(store)
	ctx := context.Background()

	profile, err := d.Register(ctx, "a@x.com", "pw", "Ann")
	require.NoError(t, err)
	assert.NotEmpty(t, profile.ID)
	assert.Equal(t, "a@x.com", profile.Email)
	assert.Equal(t, "Ann", profile.DisplayName)
	assert.False(t, profile.CreatedAt.IsZero())

	current, ok, err := d.Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, profile, current)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := kv.NewMemoryStore()
	d := NewDirectory(store)
	ctx := context.Background()

	first, err := d.Register(ctx, "a@x.com", "pw", "Ann")
	require.NoError(t, err)

	_, err = d.Register(ctx, "a@x.com", "pw2", "Ann2")
	assert.ErrorIs(t, err, common.ErrAlreadyExists)

	// stored list is unchanged: the original identity still logs in,
	// the rejected one does not exist
	got, err := d.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = d.Login(ctx, "a@x.com", "pw2")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_ExactMatchOnly(t *testing.T) {
	store := kv.NewMemoryStore()
	d := NewDirectory(store)
	ctx := context.Background()

	_, err := d.Register(ctx, "a@x.com", "pw", "Ann")
	require.NoError(t, err)
	require.NoError(t, d.Logout(ctx))

	_, err = d.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = d.Login(ctx, "unknown@x.com", "pw")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	// email comparison is case-sensitive as stored
	_, err = d.Login(ctx, "A@x.com", "pw")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	profile, err := d.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Ann", profile.DisplayName)

	current, ok, err := d.Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, profile, current)
}

func TestLogout_Idempotent(t *testing.T) {
	store := kv.NewMemoryStore()
	d := NewDirectory(store)
	ctx := context.Background()

	_, err := d.Register(ctx, "a@x.com", "pw", "Ann")
	require.NoError(t, err)

	require.NoError(t, d.Logout(ctx))
	_, ok, err := d.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// a second logout succeeds too
	require.NoError(t, d.Logout(ctx))
	_, ok, err = d.Current(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCurrent_SurvivesRestart(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()

	profile, err := NewDirectory(store).Register(ctx, "a@x.com", "pw", "Ann")
	require.NoError(t, err)

	// a fresh Directory over the same store sees the session
	current, ok, err := NewDirectory(store).Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, profile, current)
}

func TestSessionPayloadHasNoSecret(t *testing.T) {
	store := kv.NewMemoryStore()
	d := NewDirectory(store)
	ctx := context.Background()

	_, err := d.Register(ctx, "a@x.com", "topsecret", "Ann")
	require.NoError(t, err)

	raw, err := store.Get(ctx, sessionKey)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "topsecret")

	// the identity list itself does store the secret (known, flagged gap)
	raw, err = store.Get(ctx, usersKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "topsecret")
}

func TestRegisterLoginScenario(t *testing.T) {
	store := kv.NewMemoryStore()
	d := NewDirectory(store)
	ctx := context.Background()

	ann, err := d.Register(ctx, "a@x.com", "pw", "Ann")
	require.NoError(t, err)
	current, ok, err := d.Current(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ann.ID, current.ID)

	_, err = d.Register(ctx, "a@x.com", "pw2", "Ann2")
	assert.ErrorIs(t, err, common.ErrAlreadyExists)

	_, err = d.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	got, err := d.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, ann.ID, got.ID)
}

package userrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/model"
	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/store"
)

func newRepo(t *testing.T) Repo {
	t.Helper()
	s, err := store.Open(t.TempDir())
	require.NoError(t, err)
	return New(s)
}

func TestCreateAndByLogin(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &model.User{Name: "Ana", Login: "ana1", PasswordHash: "h"}))

	u, err := r.ByLogin(ctx, "ana1")
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, "Ana", u.Name)

	missing, err := r.ByLogin(ctx, "nobody")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestCreate_DuplicateLoginLeavesCollectionUnchanged(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &model.User{Name: "Ana", Login: "ana1", PasswordHash: "h1"}))
	err := r.Create(ctx, &model.User{Name: "Other", Login: "ana1", PasswordHash: "h2"})
	require.ErrorIs(t, err, ErrLoginExists)

	// First registration wins; the second never landed.
	u, err := r.ByLogin(ctx, "ana1")
	require.NoError(t, err)
	require.Equal(t, "Ana", u.Name)
	require.Equal(t, "h1", u.PasswordHash)
}

func TestByLogin_CaseSensitive(t *testing.T) {
	r := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, &model.User{Name: "Ana", Login: "ana1", PasswordHash: "h"}))

	u, err := r.ByLogin(ctx, "ANA1")
	require.NoError(t, err)
	require.Nil(t, u)
}

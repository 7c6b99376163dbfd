package messagesvc

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	messagerepo "github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/repository/message"
	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/store"
)

func newService(t *testing.T) Service {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	return New(messagerepo.New(st))
}

func TestSubmit_AssignsStableID(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	m, err := s.Submit(ctx, "Ana", "ana@example.com", "oi", "")
	require.NoError(t, err)
	require.NotEmpty(t, m.ID)
	_, err = uuid.Parse(m.ID)
	require.NoError(t, err)
	require.Empty(t, m.Reply)
	require.Empty(t, m.Login)

	other, err := s.Submit(ctx, "Ana", "ana@example.com", "oi de novo", "ana1")
	require.NoError(t, err)
	require.NotEqual(t, m.ID, other.ID)
	require.Equal(t, "ana1", other.Login)
}

func TestReply_RoundTrip(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	m, err := s.Submit(ctx, "Ana", "ana@example.com", "oi", "ana1")
	require.NoError(t, err)

	require.NoError(t, s.Reply(ctx, m.ID, "bem-vinda"))

	mine, err := s.ForLogin(ctx, "ana1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "bem-vinda", mine[0].Reply)
}

func TestReply_UnknownID(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	_, err := s.Submit(ctx, "Ana", "ana@example.com", "oi", "")
	require.NoError(t, err)

	err = s.Reply(ctx, "00000000-0000-0000-0000-000000000000", "x")
	require.ErrorIs(t, err, ErrMessageNotFound)

	all, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Empty(t, all[0].Reply)
}

package loansvc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/model"
	loanrepo "github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/repository/loan"
	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/store"
)

type repoMock struct {
	createFn  func(ctx context.Context, l model.Loan) error
	byLoginFn func(ctx context.Context, login string) ([]model.Loan, error)
	allFn     func(ctx context.Context) ([]model.Loan, error)
	markFn    func(ctx context.Context, login, title string) (int, error)
}

func (m *repoMock) Create(ctx context.Context, l model.Loan) error { return m.createFn(ctx, l) }
func (m *repoMock) ByLogin(ctx context.Context, login string) ([]model.Loan, error) {
	return m.byLoginFn(ctx, login)
}
func (m *repoMock) All(ctx context.Context) ([]model.Loan, error) { return m.allFn(ctx) }
func (m *repoMock) MarkReturned(ctx context.Context, login, title string) (int, error) {
	return m.markFn(ctx, login, title)
}

func TestBorrow_RecordsTodayOutstanding(t *testing.T) {
	var created model.Loan
	m := &repoMock{
		createFn: func(ctx context.Context, l model.Loan) error {
			created = l
			return nil
		},
	}

	fixed := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)
	s := &service{r: m, now: func() time.Time { return fixed }}

	l, err := s.Borrow(context.Background(), "ana1", "Dune")
	require.NoError(t, err)
	require.Equal(t, created, *l)
	require.Equal(t, "ana1", l.Login)
	require.Equal(t, "Dune", l.Title)
	require.Equal(t, "28/08/2026", l.Date)
	require.False(t, l.Returned)
}

func TestReturn_PassesThroughCount(t *testing.T) {
	m := &repoMock{
		markFn: func(ctx context.Context, login, title string) (int, error) {
			require.Equal(t, "ana1", login)
			require.Equal(t, "Dune", title)
			return 2, nil
		},
	}
	s := New(m)

	n, err := s.Return(context.Background(), "ana1", "Dune")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

// End-to-end over the real store: borrow, list, return.
func TestBorrowReturn_Flow(t *testing.T) {
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	s := New(loanrepo.New(st))
	ctx := context.Background()

	_, err = s.Borrow(ctx, "ana1", "Dune")
	require.NoError(t, err)

	mine, err := s.ForUser(ctx, "ana1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "Dune", mine[0].Title)
	require.False(t, mine[0].Returned)
	require.Equal(t, time.Now().Format(model.LoanDateLayout), mine[0].Date)

	n, err := s.Return(ctx, "ana1", "Dune")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	mine, err = s.ForUser(ctx, "ana1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.True(t, mine[0].Returned)
}

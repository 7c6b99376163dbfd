package loansvc

import (
	"context"
	"time"

	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/model"
)

type Repo interface {
	Create(ctx context.Context, l model.Loan) error
	ByLogin(ctx context.Context, login string) ([]model.Loan, error)
	All(ctx context.Context) ([]model.Loan, error)
	MarkReturned(ctx context.Context, login, title string) (int, error)
}

type Service interface {
	// Borrow records a loan dated today. There is no availability check:
	// the catalog is not consulted and outstanding loans of the same title
	// do not block a new one.
	Borrow(ctx context.Context, login, title string) (*model.Loan, error)

	// Return marks every outstanding (login, title) loan returned and
	// reports how many were flipped. Zero matches is a quiet no-op.
	Return(ctx context.Context, login, title string) (int, error)

	ForUser(ctx context.Context, login string) ([]model.Loan, error)
	All(ctx context.Context) ([]model.Loan, error)
}

type service struct {
	r   Repo
	now func() time.Time
}

func New(r Repo) Service { return &service{r: r, now: time.Now} }

func (s *service) Borrow(ctx context.Context, login, title string) (*model.Loan, error) {
	l := model.Loan{
		Login: login,
		Title: title,
		Date:  s.now().Format(model.LoanDateLayout),
	}
	if err := s.r.Create(ctx, l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *service) Return(ctx context.Context, login, title string) (int, error) {
	return s.r.MarkReturned(ctx, login, title)
}

func (s *service) ForUser(ctx context.Context, login string) ([]model.Loan, error) {
	return s.r.ByLogin(ctx, login)
}

func (s *service) All(ctx context.Context) ([]model.Loan, error) { return s.r.All(ctx) }

package loanrepo

import (
	"context"

	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/model"
	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/store"
)

const collection = "emprestimos.json"

type Repo interface {
	Create(ctx context.Context, l model.Loan) error
	ByLogin(ctx context.Context, login string) ([]model.Loan, error)
	All(ctx context.Context) ([]model.Loan, error)
	MarkReturned(ctx context.Context, login, title string) (int, error)
}

type repo struct{ s *store.Store }

func New(s *store.Store) Repo { return &repo{s: s} }

// Create appends with no availability bookkeeping: the same title may be out
// several times at once, by the same or different users.
func (r *repo) Create(_ context.Context, l model.Loan) error {
	defer r.s.Lock(collection)()

	var loans []model.Loan
	if err := r.s.Load(collection, &loans); err != nil {
		return err
	}
	return r.s.Save(collection, append(loans, l))
}

func (r *repo) ByLogin(_ context.Context, login string) ([]model.Loan, error) {
	var all []model.Loan
	if err := r.s.Load(collection, &all); err != nil {
		return nil, err
	}
	var mine []model.Loan
	for _, l := range all {
		if l.Login == login {
			mine = append(mine, l)
		}
	}
	return mine, nil
}

func (r *repo) All(_ context.Context) ([]model.Loan, error) {
	var loans []model.Loan
	if err := r.s.Load(collection, &loans); err != nil {
		return nil, err
	}
	return loans, nil
}

// MarkReturned flips Returned on every loan matching (login, title) and
// returns how many were still outstanding. Other users' and titles' loans
// are untouched.
func (r *repo) MarkReturned(_ context.Context, login, title string) (int, error) {
	defer r.s.Lock(collection)()

	var loans []model.Loan
	if err := r.s.Load(collection, &loans); err != nil {
		return 0, err
	}

	flipped := 0
	for i := range loans {
		if loans[i].Login == login && loans[i].Title == title && !loans[i].Returned {
			loans[i].Returned = true
			flipped++
		}
	}
	if flipped == 0 {
		return 0, nil
	}
	return flipped, r.s.Save(collection, loans)
}

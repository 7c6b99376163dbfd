package userrepo

import (
	"context"
	"errors"

	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/model"
	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/store"
)

const collection = "usuarios.json"

// ErrLoginExists reports a create with an already-used login.
var ErrLoginExists = errors.New("login already exists")

type Repo interface {
	ByLogin(ctx context.Context, login string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
}

type repo struct{ s *store.Store }

func New(s *store.Store) Repo { return &repo{s: s} }

// ByLogin returns the first user with that exact login, or nil when absent.
func (r *repo) ByLogin(_ context.Context, login string) (*model.User, error) {
	var users []model.User
	if err := r.s.Load(collection, &users); err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Login == login {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Create appends the user. The uniqueness check runs under the collection
// lock so two concurrent registrations cannot both slip in.
func (r *repo) Create(_ context.Context, u *model.User) error {
	defer r.s.Lock(collection)()

	var users []model.User
	if err := r.s.Load(collection, &users); err != nil {
		return err
	}
	for i := range users {
		if users[i].Login == u.Login {
			return ErrLoginExists
		}
	}
	return r.s.Save(collection, append(users, *u))
}

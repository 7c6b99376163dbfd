package messagerepo

import (
	"context"
	"errors"

	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/model"
	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/store"
)

const collection = "formularios.json"

// ErrNotFound reports a reply addressed to an id no message carries.
var ErrNotFound = errors.New("message not found")

type Repo interface {
	Create(ctx context.Context, m model.ContactMessage) error
	All(ctx context.Context) ([]model.ContactMessage, error)
	ByLogin(ctx context.Context, login string) ([]model.ContactMessage, error)
	Reply(ctx context.Context, id, text string) error
}

type repo struct{ s *store.Store }

func New(s *store.Store) Repo { return &repo{s: s} }

func (r *repo) Create(_ context.Context, m model.ContactMessage) error {
	defer r.s.Lock(collection)()

	var msgs []model.ContactMessage
	if err := r.s.Load(collection, &msgs); err != nil {
		return err
	}
	return r.s.Save(collection, append(msgs, m))
}

func (r *repo) All(_ context.Context) ([]model.ContactMessage, error) {
	var msgs []model.ContactMessage
	if err := r.s.Load(collection, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// ByLogin returns messages submitted while signed in as login. Anonymous
// submissions carry no login and are never attributed to anyone.
func (r *repo) ByLogin(_ context.Context, login string) ([]model.ContactMessage, error) {
	var all []model.ContactMessage
	if err := r.s.Load(collection, &all); err != nil {
		return nil, err
	}
	var mine []model.ContactMessage
	for _, m := range all {
		if m.Login != "" && m.Login == login {
			mine = append(mine, m)
		}
	}
	return mine, nil
}

// Reply sets the reply text on the message with the given id. The collection
// is left untouched when the id is unknown.
func (r *repo) Reply(_ context.Context, id, text string) error {
	defer r.s.Lock(collection)()

	var msgs []model.ContactMessage
	if err := r.s.Load(collection, &msgs); err != nil {
		return err
	}
	for i := range msgs {
		if msgs[i].ID == id {
			msgs[i].Reply = text
			return r.s.Save(collection, msgs)
		}
	}
	return ErrNotFound
}

package bookrepo

import (
	"context"

	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/model"
	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/store"
)

const collection = "livros.json"

type Repo interface {
	Add(ctx context.Context, b model.Book) error
	RemoveByTitle(ctx context.Context, title string) (int, error)
	List(ctx context.Context) ([]model.Book, error)
}

type repo struct{ s *store.Store }

func New(s *store.Store) Repo { return &repo{s: s} }

// Add appends unconditionally; duplicate titles coexist.
func (r *repo) Add(_ context.Context, b model.Book) error {
	defer r.s.Lock(collection)()

	var books []model.Book
	if err := r.s.Load(collection, &books); err != nil {
		return err
	}
	return r.s.Save(collection, append(books, b))
}

// RemoveByTitle deletes every exact-title match and returns how many went.
func (r *repo) RemoveByTitle(_ context.Context, title string) (int, error) {
	defer r.s.Lock(collection)()

	var books []model.Book
	if err := r.s.Load(collection, &books); err != nil {
		return 0, err
	}

	kept := books[:0]
	for _, b := range books {
		if b.Title != title {
			kept = append(kept, b)
		}
	}
	removed := len(books) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, r.s.Save(collection, kept)
}

func (r *repo) List(_ context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := r.s.Load(collection, &books); err != nil {
		return nil, err
	}
	return books, nil
}

package booksvc

import (
	"context"
	"errors"

	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/model"
)

// ErrInvalidPayload flags an empty title or author. The HTTP DTO validation
// normally rejects those first; this keeps the service safe on its own.
var ErrInvalidPayload = errors.New("invalid payload")

type Repo interface {
	Add(ctx context.Context, b model.Book) error
	RemoveByTitle(ctx context.Context, title string) (int, error)
	List(ctx context.Context) ([]model.Book, error)
}

type Service interface {
	Add(ctx context.Context, title, author string) error
	Remove(ctx context.Context, title string) (int, error)
	List(ctx context.Context) ([]model.Book, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Add(ctx context.Context, title, author string) error {
	if title == "" || author == "" {
		return ErrInvalidPayload
	}
	// No dedup on title: several copies of the same book may be listed.
	return s.r.Add(ctx, model.Book{Title: title, Author: author})
}

func (s *service) Remove(ctx context.Context, title string) (int, error) {
	return s.r.RemoveByTitle(ctx, title)
}

func (s *service) List(ctx context.Context) ([]model.Book, error) { return s.r.List(ctx) }

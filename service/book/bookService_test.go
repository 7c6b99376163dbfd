package booksvc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/model"
	booksvc "github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/service/book"
)

type repoMock struct {
	addFn    func(ctx context.Context, b model.Book) error
	removeFn func(ctx context.Context, title string) (int, error)
	listFn   func(ctx context.Context) ([]model.Book, error)
}

func (m *repoMock) Add(ctx context.Context, b model.Book) error { return m.addFn(ctx, b) }
func (m *repoMock) RemoveByTitle(ctx context.Context, title string) (int, error) {
	return m.removeFn(ctx, title)
}
func (m *repoMock) List(ctx context.Context) ([]model.Book, error) { return m.listFn(ctx) }

func TestAdd_Validation(t *testing.T) {
	s := booksvc.New(&repoMock{})
	if err := s.Add(context.Background(), "", "Herbert"); !errors.Is(err, booksvc.ErrInvalidPayload) {
		t.Fatalf("empty title: got %v, want ErrInvalidPayload", err)
	}
	if err := s.Add(context.Background(), "Dune", ""); !errors.Is(err, booksvc.ErrInvalidPayload) {
		t.Fatalf("empty author: got %v, want ErrInvalidPayload", err)
	}
}

func TestAdd_Success(t *testing.T) {
	m := &repoMock{
		addFn: func(ctx context.Context, b model.Book) error {
			if b.Title != "Dune" || b.Author != "Herbert" {
				return errors.New("bad args")
			}
			return nil
		},
	}
	s := booksvc.New(m)
	if err := s.Add(context.Background(), "Dune", "Herbert"); err != nil {
		t.Fatalf("Add error: %v", err)
	}
}

func TestPassThroughs(t *testing.T) {
	m := &repoMock{
		removeFn: func(ctx context.Context, title string) (int, error) { return 3, nil },
		listFn: func(ctx context.Context) ([]model.Book, error) {
			return []model.Book{{Title: "Dune", Author: "Herbert"}}, nil
		},
	}
	s := booksvc.New(m)

	if n, err := s.Remove(context.Background(), "Dune"); err != nil || n != 3 {
		t.Fatalf("Remove got %v %v; want 3 nil", n, err)
	}
	books, err := s.List(context.Background())
	if err != nil || len(books) != 1 {
		t.Fatalf("List got %v %v; want 1 book", books, err)
	}
}

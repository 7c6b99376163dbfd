package messagesvc

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/model"
	messagerepo "github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/repository/message"
)

// ErrMessageNotFound reports a reply addressed to an unknown message id.
var ErrMessageNotFound = errors.New("message not found")

type Service interface {
	// Submit stores a contact-form message with a generated stable id.
	// login is the submitter's account when the form was sent while signed
	// in, empty for anonymous visitors.
	Submit(ctx context.Context, name, email, body, login string) (*model.ContactMessage, error)

	// Reply sets the admin reply on the message with that id.
	Reply(ctx context.Context, id, text string) error

	ForLogin(ctx context.Context, login string) ([]model.ContactMessage, error)
	All(ctx context.Context) ([]model.ContactMessage, error)
}

type service struct{ r messagerepo.Repo }

func New(r messagerepo.Repo) Service { return &service{r} }

func (s *service) Submit(ctx context.Context, name, email, body, login string) (*model.ContactMessage, error) {
	m := model.ContactMessage{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Body:  body,
		Login: login,
	}
	if err := s.r.Create(ctx, m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *service) Reply(ctx context.Context, id, text string) error {
	if err := s.r.Reply(ctx, id, text); err != nil {
		if errors.Is(err, messagerepo.ErrNotFound) {
			return ErrMessageNotFound
		}
		return err
	}
	return nil
}

func (s *service) ForLogin(ctx context.Context, login string) ([]model.ContactMessage, error) {
	return s.r.ByLogin(ctx, login)
}

func (s *service) All(ctx context.Context) ([]model.ContactMessage, error) {
	return s.r.All(ctx)
}

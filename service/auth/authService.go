package authsvc

import (
	"context"
	"errors"

	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/model"
	userrepo "github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/repository/user"
	"github.com/Gabriel-Diniz-beck/Sistema-web--biblioteca/util/hash"
)

var (
	ErrLoginTaken   = errors.New("login already registered")
	ErrInvalidCreds = errors.New("invalid credentials")
)

type Service interface {
	Register(ctx context.Context, req model.RegisterReq) (*model.PublicUser, error)
	Login(ctx context.Context, req model.LoginReq) (*model.PublicUser, error)
}

type service struct{ ur userrepo.Repo }

func New(ur userrepo.Repo) Service { return &service{ur} }

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.PublicUser, error) {
	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Name:         req.Name,
		Login:        req.Login,
		PasswordHash: hashed,
	}
	if err := s.ur.Create(ctx, u); err != nil {
		if errors.Is(err, userrepo.ErrLoginExists) {
			return nil, ErrLoginTaken
		}
		return nil, err
	}
	return &model.PublicUser{Name: u.Name, Login: u.Login}, nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.PublicUser, error) {
	u, err := s.ur.ByLogin(ctx, req.Login)
	if err != nil {
		return nil, err
	}
	if u == nil || !hash.Check(u.PasswordHash, req.Password) {
		return nil, ErrInvalidCreds
	}
	return &model.PublicUser{Name: u.Name, Login: u.Login}, nil
}

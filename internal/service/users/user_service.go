package users

import (
	"context"
	"errors"

	"github.com/daehyun-dev/skyreserve/internal/domain"
	"github.com/daehyun-dev/skyreserve/internal/store"
	"github.com/daehyun-dev/skyreserve/pkg/logger"
)

type UserUseCase interface {
	Register(ctx context.Context, user domain.User) error
	Login(ctx context.Context, userID, password string) (domain.User, error)
	Profile(ctx context.Context, userID string) (domain.User, error)
}

type UserService struct {
	store store.Store
	log   logger.Logger
}

func NewUserService(st store.Store, log logger.Logger) *UserService {
	return &UserService{store: st, log: log}
}

func (s *UserService) Register(ctx context.Context, user domain.User) error {
	if user.UserID == "" || user.Password == "" {
		return errors.New("user id and password are required")
	}
	user.Mileage = 0
	if err := s.store.AddUser(ctx, user); err != nil {
		return err
	}
	s.log.Info("user registered", "user", user.UserID)
	return nil
}

func (s *UserService) Login(ctx context.Context, userID, password string) (domain.User, error) {
	user, err := s.store.User(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if user.Password != password {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) Profile(ctx context.Context, userID string) (domain.User, error) {
	return s.store.User(ctx, userID)
}

var _ UserUseCase = (*UserService)(nil)

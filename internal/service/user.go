package service

import (
	"context"
	"errors"

	"fittrack.dev/backend/internal/model"
	"fittrack.dev/backend/internal/pkg/apperr"
	"fittrack.dev/backend/internal/repo"
)

type User struct {
	UserRepo UserStore
}

func NewUser(userRepo *repo.User) *User {
	return &User{
		UserRepo: userRepo,
	}
}

func (s *User) GetUsers(ctx context.Context) ([]*model.User, error) {
	return s.UserRepo.GetUsers(ctx)
}

func (s *User) GetUserById(ctx context.Context, userId int) (*model.User, error) {
	return s.UserRepo.GetUserById(ctx, userId)
}

func (s *User) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.UserRepo.GetUserByEmail(ctx, email)
}

func (s *User) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	return s.UserRepo.SaveUser(ctx, user)
}

// UpdateUser mutates name and email of the user with userId. Returns
// apperr.ErrNotFound when no row matched.
func (s *User) UpdateUser(ctx context.Context, userId int, user *model.User) error {
	affected, err := s.UserRepo.UpdateUser(ctx, userId, user)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.ErrNotFound.Msg("user not found with id %d", userId)
	}
	return nil
}

func (s *User) DeleteUser(ctx context.Context, userId int) error {
	affected, err := s.UserRepo.DeleteUser(ctx, userId)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.ErrNotFound.Msg("user not found with id %d", userId)
	}
	return nil
}

// IsUserExistWithId reports whether a user row with userId exists.
func (s *User) IsUserExistWithId(ctx context.Context, userId int) (bool, error) {
	_, err := s.UserRepo.GetUserById(ctx, userId)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

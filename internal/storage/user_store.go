package storage

import (
	"context"
	"errors"

	"github.com/iskandars/NBS-apps/internal/models"
)

// ErrUsernameTaken is returned by UserStore.Create when the username is
// already in use.
var ErrUsernameTaken = errors.New("username already taken")

// UserStore wraps a generic store to enforce username uniqueness and add
// username lookup. The check-then-insert is two store calls; with concurrent
// registrations of the same name one caller can still win the race, which is
// acceptable at this scale.
type UserStore struct {
	Store[models.User, models.UserPatch]
}

func NewUserStore(store Store[models.User, models.UserPatch]) *UserStore {
	return &UserStore{Store: store}
}

func (s *UserStore) Create(ctx context.Context, input models.User) (models.User, error) {
	_, exists, err := s.GetByUsername(ctx, input.Username)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrUsernameTaken
	}
	return s.Store.Create(ctx, input)
}

func (s *UserStore) GetByUsername(ctx context.Context, username string) (models.User, bool, error) {
	users, err := s.GetByField(ctx, "username", username)
	if err != nil {
		return models.User{}, false, err
	}
	if len(users) == 0 {
		return models.User{}, false, nil
	}
	return users[0], true, nil
}

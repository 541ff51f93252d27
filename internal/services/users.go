package services

import (
	"context"

	"github.com/dmitrijs2005/novabiz/internal/models"
	"github.com/dmitrijs2005/novabiz/internal/store"
)

// UserService exposes the local user directory.
//
// Contract:
//   - GetUsers: all directory records in insertion order.
//   - SaveUser: upsert keyed by email; an existing record is overwritten
//     whole, a new one is appended.
type UserService interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	SaveUser(ctx context.Context, u *models.User) error
}

type userService struct {
	store store.Store
}

func NewUserService(st store.Store) UserService {
	return &userService{store: st}
}

func (s *userService) GetUsers(ctx context.Context) ([]models.User, error) {
	data, err := s.store.Get(ctx, store.KeyUsers)
	if err != nil {
		return nil, err
	}
	return store.DecodeList[models.User](data), nil
}

func (s *userService) SaveUser(ctx context.Context, u *models.User) error {
	return s.store.Update(ctx, store.KeyUsers, func(old []byte) ([]byte, error) {
		users := store.DecodeList[models.User](old)
		return store.EncodeList(upsertByEmail(users, *u))
	})
}

// upsertByEmail replaces the record with a matching email or appends when
// none matches. Email format is not validated here; the directory holds
// whatever was entered.
func upsertByEmail(users []models.User, u models.User) []models.User {
	for n, existing := range users {
		if existing.Email == u.Email {
			users[n] = u
			return users
		}
	}
	return append(users, u)
}

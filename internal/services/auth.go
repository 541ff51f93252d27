package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/dmitrijs2005/novabiz/internal/common"
	"github.com/dmitrijs2005/novabiz/internal/models"
	"github.com/dmitrijs2005/novabiz/internal/store"
	"github.com/google/uuid"
)

// AuthService drives the Anonymous/Authenticated state machine.
//
// Contract:
//   - SignUp: create a directory record and open a session for it. Fails
//     with common.ErrorValidation when a field is empty and with
//     common.ErrorEmailTaken when the email is already registered; neither
//     failure mutates anything.
//   - Login: open a session for the record matching (email, password).
//     A mismatch of either part fails with common.ErrorInvalidCredentials,
//     which deliberately does not say what was wrong.
//   - Logout: close the session.
//   - UpdateProfile: the session-refresh path. Saves the edited directory
//     record and the session copy together, so they can not diverge here.
type AuthService interface {
	SignUp(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, name, bio string, interests []string) (*models.User, error)
}

type authService struct {
	store   store.Store
	users   UserService
	session *Session
}

func NewAuthService(st store.Store, users UserService, session *Session) AuthService {
	return &authService{store: st, users: users, session: session}
}

func (a *authService) SignUp(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, common.ErrorValidation
	}

	existing, err := a.users.GetUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range existing {
		if u.Email == email {
			return nil, common.ErrorEmailTaken
		}
	}

	user := &models.User{
		Id:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  password,
		Interests: []string{},
	}

	if err := a.users.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	if err := a.session.Set(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	users, err := a.users.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			if err := a.session.Set(ctx, &u); err != nil {
				return nil, err
			}
			return &u, nil
		}
	}
	return nil, common.ErrorInvalidCredentials
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}

func (a *authService) UpdateProfile(ctx context.Context, name, bio string, interests []string) (*models.User, error) {
	current := a.session.Current()
	if current == nil {
		return nil, common.ErrorNotAuthenticated
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.ErrorValidation
	}

	updated := *current
	updated.Name = name
	updated.Bio = strings.TrimSpace(bio)
	updated.Interests = interests
	if updated.Interests == nil {
		updated.Interests = []string{}
	}

	// Directory record and session copy are written in one transaction.
	err := a.store.Txn(ctx, func(ctx context.Context, kv store.KV) error {
		old, err := kv.Get(ctx, store.KeyUsers)
		if err != nil {
			return err
		}
		data, err := store.EncodeList(upsertByEmail(store.DecodeList[models.User](old), updated))
		if err != nil {
			return err
		}
		if err := kv.Set(ctx, store.KeyUsers, data); err != nil {
			return err
		}

		sessData, err := json.Marshal(updated)
		if err != nil {
			return err
		}
		return kv.Set(ctx, store.KeySessionUser, sessData)
	})
	if err != nil {
		return nil, err
	}

	// Refresh the in-memory session copy after the commit.
	a.session.mu.Lock()
	copied := updated
	a.session.current = &copied
	a.session.mu.Unlock()

	return &updated, nil
}

package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/novabiz/internal/common"
	"github.com/dmitrijs2005/novabiz/internal/models"
	"github.com/dmitrijs2005/novabiz/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (AuthService, UserService, *Session, store.Store) {
	t.Helper()
	st := newTestStore(t)
	users := NewUserService(st)
	session := NewSession(st, newTestLogger())
	return NewAuthService(st, users, session), users, session, st
}

func TestSignUp_FreshEmailCreatesUserAndSession(t *testing.T) {
	auth, users, session, _ := newAuthFixture(t)
	ctx := context.Background()

	u, err := auth.SignUp(ctx, "Ada", "ada@x.com", "p1")
	require.NoError(t, err)
	require.NotEmpty(t, u.Id)
	assert.Equal(t, "Ada", u.Name)
	assert.Empty(t, u.Interests)

	all, err := users.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "ada@x.com", all[0].Email)

	current := session.Current()
	require.NotNil(t, current)
	assert.Equal(t, "ada@x.com", current.Email)
}

func TestSignUp_MissingFieldIsRejectedWithoutStateChange(t *testing.T) {
	auth, users, session, _ := newAuthFixture(t)
	ctx := context.Background()

	tests := []struct {
		name, userName, email, password string
	}{
		{name: "no name", userName: "", email: "a@x.com", password: "p"},
		{name: "no email", userName: "A", email: "", password: "p"},
		{name: "no password", userName: "A", email: "a@x.com", password: ""},
		{name: "blank name", userName: "   ", email: "a@x.com", password: "p"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.SignUp(ctx, tt.userName, tt.email, tt.password)
			require.ErrorIs(t, err, common.ErrorValidation)
		})
	}

	all, err := users.GetUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Nil(t, session.Current())
}

func TestSignUp_DuplicateEmailLeavesDirectoryAndSessionUnchanged(t *testing.T) {
	auth, users, session, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.SignUp(ctx, "Ada", "ada@x.com", "p1")
	require.NoError(t, err)
	require.NoError(t, auth.Logout(ctx))

	_, err = auth.SignUp(ctx, "Impostor", "ada@x.com", "p2")
	require.ErrorIs(t, err, common.ErrorEmailTaken)

	all, err := users.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Ada", all[0].Name)
	assert.Nil(t, session.Current(), "failed signup must not open a session")
}

func TestLogin_MatchingPairOpensSession(t *testing.T) {
	auth, _, session, _ := newAuthFixture(t)
	ctx := context.Background()

	created, err := auth.SignUp(ctx, "Ada", "ada@x.com", "p1")
	require.NoError(t, err)
	require.NoError(t, auth.Logout(ctx))

	got, err := auth.Login(ctx, "ada@x.com", "p1")
	require.NoError(t, err)
	assert.Equal(t, created.Id, got.Id)

	current := session.Current()
	require.NotNil(t, current)
	assert.Equal(t, "ada@x.com", current.Email)
}

func TestLogin_MismatchKeepsPriorSession(t *testing.T) {
	auth, _, session, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.SignUp(ctx, "Ada", "ada@x.com", "p1")
	require.NoError(t, err)

	// wrong password and wrong email fail with the same generic error
	_, err = auth.Login(ctx, "ada@x.com", "wrong")
	require.ErrorIs(t, err, common.ErrorInvalidCredentials)
	_, err = auth.Login(ctx, "nobody@x.com", "p1")
	require.ErrorIs(t, err, common.ErrorInvalidCredentials)

	current := session.Current()
	require.NotNil(t, current, "failed login must not clear the existing session")
	assert.Equal(t, "ada@x.com", current.Email)
}

func TestLogout_ReturnsToAnonymous(t *testing.T) {
	auth, _, session, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.SignUp(ctx, "Ada", "ada@x.com", "p1")
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx))
	assert.Nil(t, session.Current())
}

func TestUpdateProfile_SavesDirectoryAndSessionTogether(t *testing.T) {
	auth, users, session, st := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.SignUp(ctx, "Ada", "ada@x.com", "p1")
	require.NoError(t, err)

	updated, err := auth.UpdateProfile(ctx, "Ada L.", "Building things.", []string{"SaaS", "AI/ML"})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", updated.Name)
	assert.Equal(t, "Building things.", updated.Bio)

	all, err := users.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Ada L.", all[0].Name)
	assert.Equal(t, []string{"SaaS", "AI/ML"}, all[0].Interests)
	assert.Equal(t, "p1", all[0].Password, "password must survive a profile save")

	current := session.Current()
	require.NotNil(t, current)
	assert.Equal(t, "Ada L.", current.Name)

	// the persisted session copy was refreshed too
	fresh := NewSession(st, newTestLogger())
	require.NoError(t, fresh.Load(ctx))
	require.NotNil(t, fresh.Current())
	assert.Equal(t, "Ada L.", fresh.Current().Name)
}

func TestUpdateProfile_RequiresSession(t *testing.T) {
	auth, _, _, _ := newAuthFixture(t)

	_, err := auth.UpdateProfile(context.Background(), "X", "", nil)
	require.ErrorIs(t, err, common.ErrorNotAuthenticated)
}

func TestSaveUser_UpsertSemantics(t *testing.T) {
	st := newTestStore(t)
	users := NewUserService(st)
	ctx := context.Background()

	require.NoError(t, users.SaveUser(ctx, &models.User{Id: "1", Name: "Ada", Email: "ada@x.com"}))
	require.NoError(t, users.SaveUser(ctx, &models.User{Id: "2", Name: "Bob", Email: "bob@x.com"}))

	// overwrite whole record, keyed by email
	require.NoError(t, users.SaveUser(ctx, &models.User{Id: "1", Name: "Ada L.", Email: "ada@x.com"}))

	all, err := users.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Ada L.", all[0].Name, "insertion order is preserved on upsert")
	assert.Equal(t, "Bob", all[1].Name)
}

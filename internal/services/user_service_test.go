package services

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scribeapp/scribe-be/internal/database"
)

// newTestDB opens an in-memory SQLite database with the schema applied.
// MaxOpenConns is pinned to 1 so the pool cannot hand out a second,
// separate in-memory database.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func newUserService(t *testing.T) (*UserService, *EventService) {
	t.Helper()
	db := newTestDB(t)
	events := NewEventService(db)
	return NewUserService(db, events), events
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, _ := newUserService(t)

	user, err := svc.Register("alice", "a@x.com", "pw123")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice", user.Username)
	require.Empty(t, user.PasswordHash, "hash must not leave the service")

	got, err := svc.Authenticate("a@x.com", "pw123")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
	require.Empty(t, got.PasswordHash)
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _ := newUserService(t)

	for _, in := range [][3]string{
		{"", "a@x.com", "pw"},
		{"alice", "", "pw"},
		{"alice", "a@x.com", ""},
	} {
		_, err := svc.Register(in[0], in[1], in[2])
		require.ErrorIs(t, err, ErrValidation)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Register("alice", "a@x.com", "pw123")
	require.NoError(t, err)

	_, err = svc.Register("alice2", "a@x.com", "other")
	require.ErrorIs(t, err, ErrConflict)
}

func TestAuthenticate_UniformFailure(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Register("alice", "a@x.com", "pw123")
	require.NoError(t, err)

	// Wrong password and unknown email must be indistinguishable.
	_, wrongPw := svc.Authenticate("a@x.com", "nope")
	_, noUser := svc.Authenticate("ghost@x.com", "pw123")

	require.ErrorIs(t, wrongPw, ErrInvalidCredentials)
	require.ErrorIs(t, noUser, ErrInvalidCredentials)
	require.Equal(t, wrongPw.Error(), noUser.Error())
}

func TestGetAllUsers(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Register("alice", "a@x.com", "pw123")
	require.NoError(t, err)
	_, err = svc.Register("bob", "b@x.com", "pw456")
	require.NoError(t, err)

	users, err := svc.GetAllUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		require.Empty(t, u.PasswordHash)
	}
}

func TestDeleteUser(t *testing.T) {
	svc, _ := newUserService(t)

	user, err := svc.Register("alice", "a@x.com", "pw123")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(user.ID))

	_, err = svc.GetUserByID(user.ID)
	require.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteUser(user.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEventsRecorded(t *testing.T) {
	svc, events := newUserService(t)

	_, err := svc.Register("alice", "a@x.com", "pw123")
	require.NoError(t, err)
	_, err = svc.Authenticate("a@x.com", "pw123")
	require.NoError(t, err)

	recent, err := events.GetRecentEvents(10)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	types := []string{recent[0].Type, recent[1].Type}
	require.Contains(t, types, "user.register")
	require.Contains(t, types, "user.login")
}

func TestGetUserByID_Unknown(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.GetUserByID("missing")
	require.True(t, errors.Is(err, ErrNotFound))
}

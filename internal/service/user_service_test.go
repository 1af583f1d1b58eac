package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/michalina-sz/exercise-tracker/internal/domain"
	"github.com/michalina-sz/exercise-tracker/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewUserService(repo)

	user, err := svc.Create(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.False(t, user.ID.IsZero())
}

func TestUserService_CreateTrimsWhitespace(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewUserService(repo)

	user, err := svc.Create(context.Background(), "  bob  ")

	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
}

func TestUserService_CreateEmptyUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewUserService(repo)

	for _, username := range []string{"", "   ", "\t\n"} {
		_, err := svc.Create(context.Background(), username)
		assert.ErrorIs(t, err, service.ErrUsernameRequired, "username %q", username)
	}
	assert.Empty(t, repo.users, "nothing should be persisted")
}

func TestUserService_CreateDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewUserService(repo)

	_, err := svc.Create(context.Background(), "alice")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "alice")
	assert.ErrorIs(t, err, service.ErrDuplicateUsername)
}

func TestUserService_CreateStorageFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.err = errors.New("connection reset")
	svc := service.NewUserService(repo)

	_, err := svc.Create(context.Background(), "alice")

	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrUsernameRequired)
	assert.NotErrorIs(t, err, service.ErrDuplicateUsername)
}

func TestUserService_List(t *testing.T) {
	repo := newFakeUserRepo()
	svc := service.NewUserService(repo)

	_, err := svc.Create(context.Background(), "alice")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "bob")
	require.NoError(t, err)

	users, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	usernames := []string{users[0].Username, users[1].Username}
	assert.ElementsMatch(t, []string{"alice", "bob"}, usernames)
	for _, user := range users {
		assert.False(t, user.ID.IsZero())
	}
}

func TestUserService_ListEmpty(t *testing.T) {
	svc := service.NewUserService(newFakeUserRepo())

	users, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, users)
}

// mustCreateUser registers a user directly in the fake repo.
func mustCreateUser(t *testing.T, repo *fakeUserRepo, username string) domain.User {
	t.Helper()
	user := &domain.User{Username: username}
	id, err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	user.ID = id
	return *user
}

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbrajkovic/chirp/internal/domain"
	"github.com/dbrajkovic/chirp/internal/repository/memory"
	"github.com/dbrajkovic/chirp/pkg/validator"
)

func newUserService() *UserService {
	return NewUserService(memory.NewUserRepo())
}

func createUser(t *testing.T, s *UserService, username, email string) *domain.User {
	t.Helper()
	user, err := s.Create(context.Background(), CreateUserInput{
		Username: username,
		Email:    email,
		FullName: "Test User",
	})
	require.NoError(t, err)
	return user
}

func TestUserServiceCreate(t *testing.T) {
	s := newUserService()

	user := createUser(t, s, "alice", "alice@example.com")
	assert.Equal(t, 0, user.FollowersCount)
	assert.Equal(t, 0, user.FollowingCount)

	other := createUser(t, s, "bob", "bob@example.com")
	assert.NotEqual(t, user.ID, other.ID)
}

func TestUserServiceCreateValidation(t *testing.T) {
	s := newUserService()

	_, err := s.Create(context.Background(), CreateUserInput{
		Username: "ab",
		Email:    "not-an-email",
		FullName: "",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "username")
	assert.Contains(t, verrs, "email")
	assert.Contains(t, verrs, "full_name")
}

func TestUserServiceCreateDuplicates(t *testing.T) {
	s := newUserService()
	createUser(t, s, "alice", "alice@example.com")

	_, err := s.Create(context.Background(), CreateUserInput{
		Username: "alice",
		Email:    "fresh@example.com",
		FullName: "Alice Again",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = s.Create(context.Background(), CreateUserInput{
		Username: "alice2",
		Email:    "alice@example.com",
		FullName: "Alice Again",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

// raceUserRepo simulates a create losing a uniqueness race: the pre-check
// lookups see nothing, but the insert hits the constraint.
type raceUserRepo struct {
	*memory.UserRepo
}

func (r *raceUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return nil, nil
}

func (r *raceUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, nil
}

func TestUserServiceCreateConflictRace(t *testing.T) {
	s := NewUserService(&raceUserRepo{UserRepo: memory.NewUserRepo()})
	createUser(t, s, "alice", "alice@example.com")

	_, err := s.Create(context.Background(), CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice Again",
	})
	// The constraint violation cannot name the colliding column, so the
	// error stays neutral rather than claiming the username specifically.
	assert.ErrorIs(t, err, ErrUserConflict)
	assert.NotErrorIs(t, err, ErrUsernameTaken)
}

func TestUserServiceGet(t *testing.T) {
	s := newUserService()
	user := createUser(t, s, "alice", "alice@example.com")

	got, err := s.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	got, err = s.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = s.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = s.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserServiceUpdatePartial(t *testing.T) {
	s := newUserService()
	user := createUser(t, s, "alice", "alice@example.com")

	bio := "New bio"
	updated, err := s.Update(context.Background(), user.ID, UpdateUserInput{Bio: &bio})
	require.NoError(t, err)

	// Untouched fields keep their values.
	assert.Equal(t, "Test User", updated.FullName)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "New bio", *updated.Bio)

	name := "Alice B."
	updated, err = s.Update(context.Background(), user.ID, UpdateUserInput{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice B.", updated.FullName)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "New bio", *updated.Bio)
}

func TestUserServiceUpdateNotFound(t *testing.T) {
	s := newUserService()

	name := "Ghost"
	_, err := s.Update(context.Background(), uuid.New(), UpdateUserInput{FullName: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserServiceDelete(t *testing.T) {
	s := newUserService()
	user := createUser(t, s, "alice", "alice@example.com")

	require.NoError(t, s.Delete(context.Background(), user.ID))
	assert.ErrorIs(t, s.Delete(context.Background(), user.ID), ErrUserNotFound)
}

func TestUserServiceFollowUnfollow(t *testing.T) {
	s := newUserService()
	user := createUser(t, s, "alice", "alice@example.com")

	followed, err := s.Follow(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, followed.FollowersCount)

	unfollowed, err := s.Unfollow(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, unfollowed.FollowersCount)

	// Unfollow at zero stays at zero.
	unfollowed, err = s.Unfollow(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, unfollowed.FollowersCount)

	_, err = s.Follow(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserServiceListPagination(t *testing.T) {
	s := newUserService()
	createUser(t, s, "u1", "u1@example.com")
	createUser(t, s, "u2", "u2@example.com")
	createUser(t, s, "u3", "u3@example.com")

	users, err := s.List(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	users, err = s.List(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbrajkovic/chirp/internal/domain"
	"github.com/dbrajkovic/chirp/internal/repository"
)

func newUser(t *testing.T, username string) *domain.User {
	t.Helper()
	u, err := domain.NewUser(username, username+"@example.com", "Test User", nil)
	require.NoError(t, err)
	return u
}

func newTweet(t *testing.T, userID uuid.UUID, content string) *domain.Tweet {
	t.Helper()
	tw, err := domain.NewTweet(content, userID)
	require.NoError(t, err)
	return tw
}

func TestUserRepoCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	created, err := repo.Create(ctx, newUser(t, "alice"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)

	got, err = repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)

	got, err = repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)

	got, err = repo.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepoCreateConflict(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	_, err := repo.Create(ctx, newUser(t, "alice"))
	require.NoError(t, err)

	dup, err := domain.NewUser("alice", "other@example.com", "Other", nil)
	require.NoError(t, err)
	_, err = repo.Create(ctx, dup)
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestUserRepoUpdateAbsent(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	updated, err := repo.Update(ctx, newUser(t, "ghost"))
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestUserRepoDeleteTwice(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	created, err := repo.Create(ctx, newUser(t, "alice"))
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestUserRepoListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo()

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, newUser(t, fmt.Sprintf("user%d", i)))
		require.NoError(t, err)
	}

	users, err := repo.List(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "user0", users[0].Username)
	assert.Equal(t, "user2", users[2].Username)
}

func TestTweetRepoPagination(t *testing.T) {
	ctx := context.Background()
	repo := NewTweetRepo()
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, newTweet(t, userID, fmt.Sprintf("tweet %d", i)))
		require.NoError(t, err)
	}
	// A tweet by someone else must not show up in the per-user listing.
	_, err := repo.Create(ctx, newTweet(t, uuid.New(), "other"))
	require.NoError(t, err)

	page, err := repo.ListByUser(ctx, userID, 0, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, "tweet 0", page[0].Content)

	page, err = repo.ListByUser(ctx, userID, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "tweet 2", page[0].Content)

	all, err := repo.List(ctx, 0, 100)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestTweetRepoUpdateOverwritesRow(t *testing.T) {
	ctx := context.Background()
	repo := NewTweetRepo()

	created, err := repo.Create(ctx, newTweet(t, uuid.New(), "original"))
	require.NoError(t, err)

	created.Content = "edited"
	created.LikesCount = 5

	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	require.NotNil(t, updated)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Content)
	assert.Equal(t, 5, got.LikesCount)
}

func TestTweetRepoReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewTweetRepo()

	created, err := repo.Create(ctx, newTweet(t, uuid.New(), "hi"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	got.LikesCount = 99

	again, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, again.LikesCount)
}

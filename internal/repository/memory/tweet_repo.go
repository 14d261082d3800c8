package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dbrajkovic/chirp/internal/domain"
	"github.com/dbrajkovic/chirp/internal/repository"
)

type TweetRepo struct {
	mu     sync.RWMutex
	tweets map[uuid.UUID]domain.Tweet
	order  []uuid.UUID
}

var _ repository.TweetRepository = (*TweetRepo)(nil)

func NewTweetRepo() *TweetRepo {
	return &TweetRepo{tweets: make(map[uuid.UUID]domain.Tweet)}
}

func (r *TweetRepo) Create(ctx context.Context, tweet *domain.Tweet) (*domain.Tweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tweets[tweet.ID] = *tweet
	r.order = append(r.order, tweet.ID)

	created := *tweet
	return &created, nil
}

func (r *TweetRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tweet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tweets[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

// List returns tweets in insertion order.
func (r *TweetRepo) List(ctx context.Context, skip, limit int) ([]domain.Tweet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tweets []domain.Tweet
	for i := skip; i < len(r.order) && len(tweets) < limit; i++ {
		tweets = append(tweets, r.tweets[r.order[i]])
	}
	return tweets, nil
}

func (r *TweetRepo) ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]domain.Tweet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tweets []domain.Tweet
	skipped := 0
	for _, id := range r.order {
		t := r.tweets[id]
		if t.UserID != userID {
			continue
		}
		if skipped < skip {
			skipped++
			continue
		}
		if len(tweets) >= limit {
			break
		}
		tweets = append(tweets, t)
	}
	return tweets, nil
}

func (r *TweetRepo) Update(ctx context.Context, tweet *domain.Tweet) (*domain.Tweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tweets[tweet.ID]; !ok {
		return nil, nil
	}

	r.tweets[tweet.ID] = *tweet
	updated := *tweet
	return &updated, nil
}

func (r *TweetRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tweets[id]; !ok {
		return false, nil
	}

	delete(r.tweets, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

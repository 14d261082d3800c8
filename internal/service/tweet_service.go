package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dbrajkovic/chirp/internal/domain"
	"github.com/dbrajkovic/chirp/internal/repository"
)

var ErrTweetNotFound = errors.New("tweet not found")

type TweetService struct {
	tweetRepo repository.TweetRepository
}

func NewTweetService(tweetRepo repository.TweetRepository) *TweetService {
	return &TweetService{tweetRepo: tweetRepo}
}

type CreateTweetInput struct {
	Content string    `json:"content"`
	UserID  uuid.UUID `json:"user_id"`
}

type UpdateTweetInput struct {
	Content string `json:"content"`
}

func (s *TweetService) Create(ctx context.Context, input CreateTweetInput) (*domain.Tweet, error) {
	tweet, err := domain.NewTweet(input.Content, input.UserID)
	if err != nil {
		return nil, err
	}

	created, err := s.tweetRepo.Create(ctx, tweet)
	if err != nil {
		return nil, fmt.Errorf("creating tweet: %w", err)
	}

	return created, nil
}

func (s *TweetService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tweet, error) {
	tweet, err := s.tweetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tweet == nil {
		return nil, ErrTweetNotFound
	}
	return tweet, nil
}

func (s *TweetService) List(ctx context.Context, skip, limit int) ([]domain.Tweet, error) {
	return s.tweetRepo.List(ctx, skip, limit)
}

func (s *TweetService) ListByUser(ctx context.Context, userID uuid.UUID, skip, limit int) ([]domain.Tweet, error) {
	return s.tweetRepo.ListByUser(ctx, userID, skip, limit)
}

func (s *TweetService) Update(ctx context.Context, id uuid.UUID, input UpdateTweetInput) (*domain.Tweet, error) {
	tweet, err := s.tweetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tweet == nil {
		return nil, ErrTweetNotFound
	}

	tweet.Content = input.Content
	if err := tweet.Validate(); err != nil {
		return nil, err
	}

	return s.persist(ctx, tweet)
}

func (s *TweetService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.tweetRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTweetNotFound
	}
	return nil
}

func (s *TweetService) Like(ctx context.Context, id uuid.UUID) (*domain.Tweet, error) {
	return s.mutate(ctx, id, (*domain.Tweet).Like)
}

func (s *TweetService) Unlike(ctx context.Context, id uuid.UUID) (*domain.Tweet, error) {
	return s.mutate(ctx, id, (*domain.Tweet).Unlike)
}

func (s *TweetService) Retweet(ctx context.Context, id uuid.UUID) (*domain.Tweet, error) {
	return s.mutate(ctx, id, (*domain.Tweet).Retweet)
}

// mutate is the shared read-modify-write path for the counter operations.
// Concurrent mutations of the same row can lose updates; there is no
// optimistic locking here.
func (s *TweetService) mutate(ctx context.Context, id uuid.UUID, fn func(*domain.Tweet)) (*domain.Tweet, error) {
	tweet, err := s.tweetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tweet == nil {
		return nil, ErrTweetNotFound
	}

	fn(tweet)
	return s.persist(ctx, tweet)
}

func (s *TweetService) persist(ctx context.Context, tweet *domain.Tweet) (*domain.Tweet, error) {
	updated, err := s.tweetRepo.Update(ctx, tweet)
	if err != nil {
		return nil, fmt.Errorf("updating tweet: %w", err)
	}
	if updated == nil {
		return nil, ErrTweetNotFound
	}
	return updated, nil
}

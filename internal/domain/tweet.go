package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/dbrajkovic/chirp/pkg/validator"
)

type Tweet struct {
	ID            uuid.UUID `json:"id"`
	Content       string    `json:"content"`
	UserID        uuid.UUID `json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
	LikesCount    int       `json:"likes_count"`
	RetweetsCount int       `json:"retweets_count"`
}

func NewTweet(content string, userID uuid.UUID) (*Tweet, error) {
	t := &Tweet{
		ID:        uuid.New(),
		Content:   content,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Tweet) Validate() error {
	if errs := validator.ValidateTweet(t.Content); errs.HasErrors() {
		return errs
	}

	return nil
}

func (t *Tweet) Like() {
	t.LikesCount++
}

// Unlike floors the counter at zero instead of failing.
func (t *Tweet) Unlike() {
	if t.LikesCount > 0 {
		t.LikesCount--
	}
}

// Retweet only ever increments, there is no undo operation.
func (t *Tweet) Retweet() {
	t.RetweetsCount++
}

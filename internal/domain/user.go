package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/dbrajkovic/chirp/pkg/validator"
)

type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Bio            *string   `json:"bio"`
	CreatedAt      time.Time `json:"created_at"`
	FollowersCount int       `json:"followers_count"`
	FollowingCount int       `json:"following_count"`
}

// NewUser builds a user with a fresh ID, creation timestamp and zeroed
// counters. Returns validator.ValidationErrors when a field is out of range.
func NewUser(username, email, fullName string, bio *string) (*User, error) {
	u := &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		FullName:  fullName,
		Bio:       bio,
		CreatedAt: time.Now(),
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) Validate() error {
	var bio string
	if u.Bio != nil {
		bio = *u.Bio
	}

	if errs := validator.ValidateUser(u.Username, u.Email, u.FullName, bio); errs.HasErrors() {
		return errs
	}

	return nil
}

func (u *User) Follow() {
	u.FollowersCount++
}

// Unfollow floors the counter at zero instead of failing.
func (u *User) Unfollow() {
	if u.FollowersCount > 0 {
		u.FollowersCount--
	}
}

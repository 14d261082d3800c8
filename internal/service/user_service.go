package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dbrajkovic/chirp/internal/domain"
	"github.com/dbrajkovic/chirp/internal/repository"
	"github.com/dbrajkovic/chirp/pkg/validator"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already taken")
	ErrUserConflict  = errors.New("username or email already taken")
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type CreateUserInput struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	Bio      *string `json:"bio"`
}

type UpdateUserInput struct {
	FullName *string `json:"full_name"`
	Bio      *string `json:"bio"`
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	user, err := domain.NewUser(input.Username, input.Email, input.FullName, input.Bio)
	if err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	existing, err = s.userRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// Backstop for creates racing past the pre-checks. The constraint
		// violation does not say which column collided, so stay neutral.
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUserConflict
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return created, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, skip, limit int) ([]domain.User, error) {
	return s.userRepo.List(ctx, skip, limit)
}

// Update applies only the fields present in the input, then persists the
// full entity.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*domain.User, error) {
	if errs := validator.ValidateUserUpdate(input.FullName, input.Bio); errs.HasErrors() {
		return nil, errs
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Bio != nil {
		user.Bio = input.Bio
	}

	return s.persist(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserService) Follow(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.mutate(ctx, id, (*domain.User).Follow)
}

func (s *UserService) Unfollow(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.mutate(ctx, id, (*domain.User).Unfollow)
}

func (s *UserService) mutate(ctx context.Context, id uuid.UUID, fn func(*domain.User)) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	fn(user)
	return s.persist(ctx, user)
}

func (s *UserService) persist(ctx context.Context, user *domain.User) (*domain.User, error) {
	updated, err := s.userRepo.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	if updated == nil {
		// Row vanished between the read and the write.
		return nil, ErrUserNotFound
	}
	return updated, nil
}

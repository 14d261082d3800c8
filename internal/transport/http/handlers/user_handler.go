package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dbrajkovic/chirp/internal/domain"
	"github.com/dbrajkovic/chirp/internal/service"
	"github.com/dbrajkovic/chirp/pkg/validator"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	user, err := h.userService.Create(r.Context(), input)
	if err != nil {
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			writeValidationErrors(w, verrs)
		case errors.Is(err, service.ErrUsernameTaken):
			writeError(w, http.StatusConflict, "USERNAME_TAKEN", "Username is already taken")
		case errors.Is(err, service.ErrEmailTaken):
			writeError(w, http.StatusConflict, "EMAIL_TAKEN", "Email is already registered")
		case errors.Is(err, service.ErrUserConflict):
			writeError(w, http.StatusConflict, "CONFLICT", "Username or email is already taken")
		default:
			logrus.WithError(err).Error("create user")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	user, err := h.userService.GetByID(r.Context(), id)
	if err != nil {
		h.respondUserError(w, err, "get user")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetByUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		h.respondUserError(w, err, "get user by username")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)

	users, err := h.userService.List(r.Context(), skip, limit)
	if err != nil {
		logrus.WithError(err).Error("list users")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if users == nil {
		users = []domain.User{}
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	var input service.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	user, err := h.userService.Update(r.Context(), id, input)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			writeValidationErrors(w, verrs)
			return
		}
		h.respondUserError(w, err, "update user")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		h.respondUserError(w, err, "delete user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) Follow(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.userService.Follow, "follow user")
}

func (h *UserHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.userService.Unfollow, "unfollow user")
}

func (h *UserHandler) mutate(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id uuid.UUID) (*domain.User, error), action string) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	user, err := op(r.Context(), id)
	if err != nil {
		h.respondUserError(w, err, action)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) respondUserError(w http.ResponseWriter, err error, action string) {
	if errors.Is(err, service.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}
	logrus.WithError(err).Error(action)
	writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
}

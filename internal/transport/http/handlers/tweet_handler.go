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

type TweetHandler struct {
	tweetService *service.TweetService
}

func NewTweetHandler(tweetService *service.TweetService) *TweetHandler {
	return &TweetHandler{tweetService: tweetService}
}

func (h *TweetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateTweetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	tweet, err := h.tweetService.Create(r.Context(), input)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			writeValidationErrors(w, verrs)
			return
		}
		logrus.WithError(err).Error("create tweet")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusCreated, tweet)
}

func (h *TweetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid tweet ID")
		return
	}

	tweet, err := h.tweetService.GetByID(r.Context(), id)
	if err != nil {
		h.respondTweetError(w, err, "get tweet")
		return
	}

	writeJSON(w, http.StatusOK, tweet)
}

func (h *TweetHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)

	tweets, err := h.tweetService.List(r.Context(), skip, limit)
	if err != nil {
		logrus.WithError(err).Error("list tweets")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeTweets(w, tweets)
}

func (h *TweetHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	skip, limit := parsePagination(r)

	tweets, err := h.tweetService.ListByUser(r.Context(), userID, skip, limit)
	if err != nil {
		logrus.WithError(err).Error("list tweets by user")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeTweets(w, tweets)
}

func (h *TweetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid tweet ID")
		return
	}

	var input service.UpdateTweetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	tweet, err := h.tweetService.Update(r.Context(), id, input)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			writeValidationErrors(w, verrs)
			return
		}
		h.respondTweetError(w, err, "update tweet")
		return
	}

	writeJSON(w, http.StatusOK, tweet)
}

func (h *TweetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid tweet ID")
		return
	}

	if err := h.tweetService.Delete(r.Context(), id); err != nil {
		h.respondTweetError(w, err, "delete tweet")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TweetHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.tweetService.Like, "like tweet")
}

func (h *TweetHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.tweetService.Unlike, "unlike tweet")
}

func (h *TweetHandler) Retweet(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.tweetService.Retweet, "retweet")
}

func (h *TweetHandler) mutate(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id uuid.UUID) (*domain.Tweet, error), action string) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid tweet ID")
		return
	}

	tweet, err := op(r.Context(), id)
	if err != nil {
		h.respondTweetError(w, err, action)
		return
	}

	writeJSON(w, http.StatusOK, tweet)
}

func (h *TweetHandler) respondTweetError(w http.ResponseWriter, err error, action string) {
	if errors.Is(err, service.ErrTweetNotFound) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Tweet not found")
		return
	}
	logrus.WithError(err).Error(action)
	writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
}

func writeTweets(w http.ResponseWriter, tweets []domain.Tweet) {
	if tweets == nil {
		tweets = []domain.Tweet{}
	}
	writeJSON(w, http.StatusOK, tweets)
}

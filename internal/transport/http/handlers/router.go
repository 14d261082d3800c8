package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every route onto a ServeMux. All entity routes live under
// /api/v1.
func NewRouter(userHandler *UserHandler, tweetHandler *TweetHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Welcome to Chirp API",
			"health":  "/health",
		})
	})
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	// Users
	mux.HandleFunc("POST /api/v1/users/{$}", userHandler.Create)
	mux.HandleFunc("GET /api/v1/users/{$}", userHandler.List)
	mux.HandleFunc("GET /api/v1/users/username/{username}", userHandler.GetByUsername)
	mux.HandleFunc("GET /api/v1/users/{id}", userHandler.Get)
	mux.HandleFunc("PUT /api/v1/users/{id}", userHandler.Update)
	mux.HandleFunc("DELETE /api/v1/users/{id}", userHandler.Delete)
	mux.HandleFunc("POST /api/v1/users/{id}/follow", userHandler.Follow)
	mux.HandleFunc("POST /api/v1/users/{id}/unfollow", userHandler.Unfollow)

	// Tweets
	mux.HandleFunc("POST /api/v1/tweets/{$}", tweetHandler.Create)
	mux.HandleFunc("GET /api/v1/tweets/{$}", tweetHandler.List)
	mux.HandleFunc("GET /api/v1/tweets/user/{user_id}", tweetHandler.ListByUser)
	mux.HandleFunc("GET /api/v1/tweets/{id}", tweetHandler.Get)
	mux.HandleFunc("PUT /api/v1/tweets/{id}", tweetHandler.Update)
	mux.HandleFunc("DELETE /api/v1/tweets/{id}", tweetHandler.Delete)
	mux.HandleFunc("POST /api/v1/tweets/{id}/like", tweetHandler.Like)
	mux.HandleFunc("POST /api/v1/tweets/{id}/unlike", tweetHandler.Unlike)
	mux.HandleFunc("POST /api/v1/tweets/{id}/retweet", tweetHandler.Retweet)

	return mux
}

package main

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/dbrajkovic/chirp/internal/config"
	"github.com/dbrajkovic/chirp/internal/database"
	postgresrepo "github.com/dbrajkovic/chirp/internal/repository/postgres"
	"github.com/dbrajkovic/chirp/internal/service"
	"github.com/dbrajkovic/chirp/internal/transport/http/handlers"
	"github.com/dbrajkovic/chirp/internal/transport/http/middleware"
)

func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()

	// Database
	if err := database.Migrate(cfg); err != nil {
		logrus.WithError(err).Fatal("migrations failed")
	}
	pool, err := database.Connect(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	defer pool.Close()
	logrus.Info("connected to database")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	tweetRepo := postgresrepo.NewTweetRepo(pool)

	// Services
	userService := service.NewUserService(userRepo)
	tweetService := service.NewTweetService(tweetRepo)

	// Handlers + routes
	userHandler := handlers.NewUserHandler(userService)
	tweetHandler := handlers.NewTweetHandler(tweetService)
	mux := handlers.NewRouter(userHandler, tweetHandler)

	handler := middleware.CORS(middleware.Logging(middleware.Metrics(mux)))

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logrus.WithField("addr", addr).Info("starting server")
	if err := http.ListenAndServe(addr, handler); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

package rest

import (
	"fmt"
	"net/http"
	"time"
)

func Start(port string, handlers *Handlers) error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /ping", handlers.Ping)

	mux.HandleFunc("POST /users/register", handlers.RegisterUser)
	mux.HandleFunc("POST /users/login", handlers.LoginUser)
	mux.HandleFunc("GET /users/{id}", handlers.GetUser)

	mux.HandleFunc("POST /rooms", handlers.CreateRoom)
	mux.HandleFunc("POST /rooms/{id}/join", handlers.JoinRoom)
	mux.HandleFunc("GET /rooms/{id}", handlers.GetRoom)

	mux.HandleFunc("POST /games/{id}/start", handlers.StartMatch)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gridplay/tictactoe-ai-backend/internal/entity"
)

type statsService interface {
	Totals(ctx context.Context) (*entity.Stats, error)
}

func Start(port string, stats statsService) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", pingHandler)
	mux.HandleFunc("/stats", statsHandler(stats))

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

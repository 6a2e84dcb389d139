//go:build !test

/* server.go
 * Contains the HTTP server Start function that listens for incoming connections.
 * Excluded from test coverage as it blocks and requires real network binding.
 */

package web

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Start initializes and starts the HTTP server with the given configuration
func Start(cfg Config) error {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}
	s := &Server{
		api:    cfg.API,
		logger: logger,
	}

	mux := http.NewServeMux()
	// bind handler methods that have access to s.api
	mux.HandleFunc("/standings", s.StandingsHandler)
	mux.HandleFunc("/bracket", s.BracketHandler)
	mux.HandleFunc("/teams", s.TeamsHandler)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	logger.WithField("addr", cfg.Addr).Info("HTTP server listening")
	return srv.ListenAndServe()
}

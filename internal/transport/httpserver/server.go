package httpserver

import (
	"net/http"
	"time"

	"budget-app-go/internal/config"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
	// Leaves room for the timeout middleware to write its response.
	writeTimeoutSlack = 5 * time.Second
)

func New(cfg config.Config, handler http.Handler) *http.Server {
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
	if cfg.HTTP.RequestTimeout > 0 {
		srv.WriteTimeout = cfg.HTTP.RequestTimeout + writeTimeoutSlack
	}
	return srv
}

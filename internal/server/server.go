package server

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Zafert/pointr-challenge/internal/app"
	"github.com/Zafert/pointr-challenge/internal/utils"
)

// Server hosts the HTTP API.
type Server struct {
	http *http.Server
	app  *app.App
}

// NewServer constructs the HTTP server from the app's config. It does not
// listen until Start is called.
func NewServer(a *app.App) *Server {
	cfg := a.Config
	return &Server{
		app: a,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           NewRouter(a),
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          log.New(utils.Logger.WriterLevel(logrus.ErrorLevel), "", 0),
		},
	}
}

// Start begins serving in a background goroutine. A listen failure is
// delivered on the returned channel; a clean shutdown closes it.
func (s *Server) Start() <-chan error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		utils.Logger.Infof("Starting %s on %s", s.app.Config.AppName, s.http.Addr)
		if err := s.http.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}

// Stop gracefully shuts the server down, waiting up to the configured
// shutdown timeout for in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.app.Config.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(ctx)
}

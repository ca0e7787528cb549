package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/kardolus/busplug/client"
	"github.com/kardolus/busplug/config"
	"go.uber.org/zap"
)

const (
	contentTypeHTML   = "text/html; charset=utf-8"
	contentTypeText   = "text/plain; charset=utf-8"
	headerContentType = "Content-Type"
	shutdownTimeout   = 10 * time.Second
	stopIDPattern     = "{id:[0-9]+}"
)

type Server struct {
	looker     client.Looker
	template   *template.Template
	router     *mux.Router
	httpServer *http.Server
}

func New(looker client.Looker, cfg config.Config) (*Server, error) {
	t, err := parseTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	s := &Server{
		looker:   looker,
		template: t,
		router:   mux.NewRouter(),
	}

	s.router.HandleFunc("/ping", s.handlePing).Methods(http.MethodGet)
	if cfg.StaticDir != "" {
		s.router.PathPrefix("/static/").Handler(
			http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))),
		)
	}
	s.router.HandleFunc("/cta/"+stopIDPattern, s.handlePlain).Methods(http.MethodGet)
	s.router.HandleFunc("/"+stopIDPattern, s.handlePage).Methods(http.MethodGet)
	s.router.Use(logRequests)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks until ctx is cancelled or the listener fails, then
// drains in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	sugar := zap.S()

	errCh := make(chan error, 1)
	go func() {
		sugar.Infof("server listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	sugar.Infof("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	sugar.Infof("server shut down successfully")
	return nil
}

func (s *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(headerContentType, contentTypeText)
	_, _ = w.Write([]byte("pong"))
}

func (s *Server) handlePlain(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	w.Header().Set(headerContentType, contentTypeText)
	_, _ = w.Write([]byte(s.looker.Lookup(id)))
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	body, err := render(s.template, id, s.looker.Lookup(id))
	if err != nil {
		zap.S().Errorf("failed to render stop %s: %v", id, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set(headerContentType, contentTypeHTML)
	_, _ = w.Write(body)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		zap.S().Debugf("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}

// Package server runs the local HTTPS static file server used to try a built
// PWA, together with the plain HTTP listener that redirects to it.
package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/user/pwa-builder/internal/config"
	"github.com/user/pwa-builder/internal/errors"
	"github.com/user/pwa-builder/internal/logging"
)

// ShutdownTimeout bounds how long in-flight requests may finish after cancellation
const ShutdownTimeout = 10 * time.Second

// Server owns the HTTPS, redirect and optional metrics listeners
type Server struct {
	cfg     *config.ServeConfig
	logger  *logging.Logger
	metrics *Metrics

	https    *http.Server
	redirect *http.Server
	scrape   *http.Server

	mu    sync.Mutex
	addrs map[string]string
	ready chan struct{}
}

// New validates the static root, loads the certificates and builds the listeners
func New(cfg *config.ServeConfig, logger *logging.Logger) (*Server, error) {
	info, err := os.Stat(cfg.Root)
	if err != nil {
		return nil, errors.NewInvalidPathError(cfg.Root, "static root does not exist")
	}
	if !info.IsDir() {
		return nil, errors.NewInvalidPathError(cfg.Root, "static root is not a directory")
	}

	tlsConfig, err := LoadTLSConfig(cfg)
	if err != nil {
		return nil, err
	}

	logger = logger.Named("server")
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: NewMetrics(),
		addrs:   make(map[string]string),
		ready:   make(chan struct{}),
	}

	s.https = &http.Server{
		Addr:              cfg.HTTPSAddr(),
		Handler:           instrument("static", logger, s.metrics, StaticHandler(cfg.Root)),
		TLSConfig:         tlsConfig,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	s.redirect = &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           instrument("redirect", logger, s.metrics, RedirectHandler(cfg.Hostname, cfg.HTTPSPort)),
		ReadHeaderTimeout: 5 * time.Second,
	}
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", s.metrics.Handler())
		s.scrape = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}
	return s, nil
}

// Metrics returns the collectors shared by the listeners
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Ready is closed once every listener is bound
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound address of a listener ("https", "http" or "metrics")
func (s *Server) Addr(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addrs[name]
}

// Run binds every listener, serves until ctx is cancelled or a listener
// fails, then shuts all of them down.
func (s *Server) Run(ctx context.Context) error {
	httpsLn, err := s.listen("https", s.https.Addr)
	if err != nil {
		return err
	}
	redirectLn, err := s.listen("http", s.redirect.Addr)
	if err != nil {
		httpsLn.Close()
		return err
	}
	var scrapeLn net.Listener
	if s.scrape != nil {
		if scrapeLn, err = s.listen("metrics", s.scrape.Addr); err != nil {
			httpsLn.Close()
			redirectLn.Close()
			return err
		}
	}

	serveErrors := make(chan error, 3)
	go func() {
		serveErrors <- s.https.ServeTLS(httpsLn, "", "")
	}()
	s.logger.Info(fmt.Sprintf("Server running on https://%s:%s/", s.cfg.Hostname, port(httpsLn)))

	go func() {
		serveErrors <- s.redirect.Serve(redirectLn)
	}()
	s.logger.Info(fmt.Sprintf("Redirect server running on http://%s:%s/", s.cfg.Hostname, port(redirectLn)))

	if scrapeLn != nil {
		go func() {
			serveErrors <- s.scrape.Serve(scrapeLn)
		}()
		s.logger.Info("Metrics available", logging.String("url", fmt.Sprintf("http://%s/metrics", scrapeLn.Addr())))
	}
	close(s.ready)

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down servers")
	case err := <-serveErrors:
		if !stderrors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("server error: %w", err)
			s.logger.Error("Server failed", logging.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	for _, srv := range []*http.Server{s.https, s.redirect, s.scrape} {
		if srv == nil {
			continue
		}
		if err := srv.Shutdown(shutdownCtx); err != nil && runErr == nil {
			runErr = fmt.Errorf("shutdown: %w", err)
		}
	}

	s.logger.Info("Servers stopped")
	return runErr
}

func (s *Server) listen(name, addr string) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.NewListenError(addr, err)
	}
	s.mu.Lock()
	s.addrs[name] = ln.Addr().String()
	s.mu.Unlock()
	return ln, nil
}

func port(ln net.Listener) string {
	_, p, err := net.SplitHostPort(ln.Addr().String())
	if err != nil {
		return ln.Addr().String()
	}
	return p
}

package gwserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 3 * time.Second
	healthTimeout     = 2 * time.Second

	HealthPath = "/healthz"
)

type Logger interface {
	Info(context.Context, string, ...slog.Attr)
}

//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options -all-variadic true
type Options struct {
	addr    string       `option:"mandatory" validate:"hostname_port"`
	handler http.Handler `option:"mandatory" validate:"required"`

	middlewares []func(http.Handler) http.Handler
	logger      Logger

	// health backs HealthPath, which bypasses the middlewares.
	health      func(context.Context) error
	readTimeout time.Duration `default:"15s"`
	idleTimeout time.Duration `default:"60s"`
}

type Server struct {
	Options
	srv *http.Server
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate gw server opts: %v", err)
	}

	handler := opts.handler

	// The first middleware is the outermost.
	for i := len(opts.middlewares) - 1; i >= 0; i-- {
		handler = opts.middlewares[i](handler)
	}

	root := http.NewServeMux()
	root.HandleFunc("GET "+HealthPath, opts.serveHealth)
	root.Handle("/", handler)

	// No write timeout: websocket streams stay open.
	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           root,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       opts.readTimeout,
		IdleTimeout:       opts.idleTimeout,
	}

	return &Server{Options: opts, srv: srv}, nil
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen: %v", err)
	}

	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		return s.srv.Shutdown(ctx)
	})

	eg.Go(func() error {
		if s.logger != nil {
			s.logger.Info(ctx, "listen and serve", slog.String("addr", ln.Addr().String()))
		}

		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %v", err)
		}

		return nil
	})

	return eg.Wait()
}

func (o Options) serveHealth(w http.ResponseWriter, r *http.Request) {
	if o.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := o.health(ctx); err != nil {
			http.Error(w, "unhealthy: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
	}

	_, _ = io.WriteString(w, "ok")
}

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/aouiniamine/sofia-ops/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	echo *echo.Echo
	addr string
	log  *zap.Logger
}

type Option func(*Server)

// WithEmptyErrorBodies makes every error response a bare status code. Method
// mismatches on known paths are reported as 404 like unknown paths.
func WithEmptyErrorBodies() Option {
	return func(s *Server) {
		s.echo.HTTPErrorHandler = emptyErrorHandler
	}
}

// WithCORS enables permissive CORS for browser clients.
func WithCORS() Option {
	return func(s *Server) {
		s.echo.Use(echomw.CORS())
	}
}

// WithValidator enables echo.Context.Validate using struct tags.
func WithValidator() Option {
	return func(s *Server) {
		s.echo.Validator = &requestValidator{validate: validator.New()}
	}
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func New(host, port string, log *zap.Logger, opts ...Option) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(log))

	s := &Server{
		echo: e,
		addr: net.JoinHostPort(host, port),
		log:  log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Listen binds the listening socket without serving yet. Bind errors such as
// a port already in use surface here.
func (s *Server) Listen() error {
	l, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", s.addr, err)
	}
	s.echo.Listener = l
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.echo.Listener == nil {
		return nil
	}
	return s.echo.Listener.Addr()
}

// Run serves until ctx is done. With a zero grace period the listener and all
// open connections are closed immediately; otherwise in-flight requests get up
// to grace to finish.
func (s *Server) Run(ctx context.Context, grace time.Duration) error {
	if s.echo.Listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	s.log.Info("server listening", zap.String("addr", s.Addr().String()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start(s.addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	var err error
	if grace <= 0 {
		err = s.echo.Close()
	} else {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		err = s.echo.Shutdown(shutdownCtx)
	}
	<-errCh

	s.log.Info("server stopped", zap.String("addr", s.addr))
	return err
}

func emptyErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}
	if code == http.StatusMethodNotAllowed {
		code = http.StatusNotFound
	}

	_ = c.NoContent(code)
}

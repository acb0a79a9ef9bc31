package web

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/avstrong/diamond/internal/booking"
	"github.com/avstrong/diamond/internal/logger"
	"github.com/avstrong/diamond/internal/pricing"
)

var ErrPanic = errors.New("panic")

type Server struct {
	srv        *http.Server
	router     *http.ServeMux
	l          *logger.Logger
	conf       Conf
	calculator *pricing.Calculator
	bManager   *booking.Manager
}

type Conf struct {
	L                 *logger.Logger
	ServerLogger      *log.Logger
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	LivenessEndpoint  string
	// Now is used for the footer year. Defaults to time.Now.
	Now func() time.Time
}

func New(ctx context.Context, conf Conf, calculator *pricing.Calculator, bookingManager *booking.Manager) (*Server, error) {
	mux := http.NewServeMux()

	if conf.Now == nil {
		conf.Now = time.Now
	}

	//nolint:exhaustruct
	srv := &http.Server{
		Addr:              net.JoinHostPort(conf.Host, conf.Port),
		ReadHeaderTimeout: conf.ReadHeaderTimeout,
		ErrorLog:          conf.ServerLogger,
		Handler:           mux,
		BaseContext: func(listener net.Listener) context.Context {
			return ctx
		},
	}

	server := &Server{
		srv:        srv,
		router:     mux,
		l:          conf.L,
		conf:       conf,
		calculator: calculator,
		bManager:   bookingManager,
	}

	server.addRoutes(mux)

	return server, nil
}

func (s *Server) Srv() *http.Server {
	return s.srv
}

func (s *Server) Handler() http.Handler {
	return s.router
}

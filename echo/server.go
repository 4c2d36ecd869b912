// Package echo provides the HTTP API for generating and sending cold
// emails, built on github.com/labstack/echo.
package echo

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	coldemail "github.com/thakurdishanttt/cold-email-gen"
)

// Server exposes the cold-email API.
type Server struct {
	e    *echo.Echo
	addr string

	Scraper   coldemail.Scraper
	Generator coldemail.EmailGenerator
	Sender    coldemail.MailSender
	Cache     coldemail.ProfileCache
	Logger    *slog.Logger

	// DefaultSender supplies sender details when a request omits them.
	DefaultSender coldemail.SenderInfo
}

// NewServer creates a Server listening on addr and registers all routes.
func NewServer(addr string, logger *slog.Logger) *Server {
	s := &Server{
		e:      echo.New(),
		addr:   addr,
		Logger: logger,
	}

	s.e.HideBanner = true
	s.e.Use(middleware.Recover())
	s.e.Use(middleware.CORS())

	api := s.e.Group("/api")
	api.POST("/generate-email", s.handleGenerateEmail)
	api.POST("/send-email", s.handleSendEmail)
	api.POST("/generate-and-send-email", s.handleGenerateAndSend)
	api.GET("/health", s.handleHealth)

	return s
}

// Start begins serving requests. It blocks until the server stops.
func (s *Server) Start() error {
	return s.e.Start(s.addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

// ServeHTTP makes Server usable as an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.e.ServeHTTP(w, r)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": coldemail.Version,
	})
}

package server

import (
	"fmt"
	"time"

	"github.com/bowlingnoi/line-chatbot/internal/core/config"
	"github.com/bowlingnoi/line-chatbot/internal/core/logger"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "github.com/bowlingnoi/line-chatbot/docs/swagger"
)

// serviceVersion is reported on the health endpoint.
const serviceVersion = "1.0.0"

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg *config.AppConfig

	startedAt time.Time
}

// New creates a new Server instance with configured middleware.
func New(cfg *config.AppConfig) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "line-chatbot",
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Ray-ID",
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	srv := &Server{
		App:       app,
		cfg:       cfg,
		startedAt: time.Now(),
	}

	app.Get("/healthz", srv.health)

	return srv
}

// health reports liveness with service identity and uptime.
func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": "line-chatbot",
		"version": serviceVersion,
		"status":  "ok",
		"uptime":  time.Since(s.startedAt).Round(time.Second).String(),
	})
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}

package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Rana718/arcadia/internal/loader"
	"github.com/Rana718/arcadia/internal/logger"
	"github.com/Rana718/arcadia/internal/metrics"
)

const maxUploadSize = 32 << 20

type Server struct {
	app    *fiber.App
	loader *loader.Loader
	log    *zap.Logger
	port   int
}

func New(l *loader.Loader, log *zap.Logger, port int) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "arcadia",
		BodyLimit:             maxUploadSize,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	server := &Server{
		app:    app,
		loader: l,
		log:    logger.OrNop(log),
		port:   port,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	s.app.Use(recover.New())
	s.app.Use(s.metricsMiddleware)

	s.app.Get("/healthz", s.handleHealth)
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	api := s.app.Group("/api")
	api.Get("/datasets", s.handleListDatasets)
	api.Get("/datasets/:name", s.handleGetDataset)
	api.Post("/refresh", s.handleRefresh)
	api.Get("/improvements", s.handleImprovements)
	api.Get("/timeline", s.handleTimeline)
	api.Get("/templates", s.handleTemplate)
	api.Post("/uploads", s.handleUpload)
}

// App exposes the fiber app for tests and embedding.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info("server starting", zap.String("addr", addr))
	fmt.Printf("🚀 Arcadia API starting on http://localhost:%d\n", s.port)
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

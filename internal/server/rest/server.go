// Package rest exposes the SkillSwap API over HTTP. Handlers stay thin:
// they decode the request, call a service, and map service errors to
// status codes. All business rules live in internal/server/services.
package rest

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"skillswap/internal/logging"
	"skillswap/internal/server/config"
	"skillswap/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	cfg     *config.Config
	log     logging.Logger
	app     *fiber.App
	users   *services.UserService
	swaps   *services.SwapService
	ratings *services.RatingService
}

func NewServer(cfg *config.Config, log logging.Logger,
	us *services.UserService, ss *services.SwapService, rs *services.RatingService) *Server {

	s := &Server{cfg: cfg, log: log, users: us, swaps: ss, ratings: rs}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             10 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	s.app = app
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	if s.cfg.PhotoStore == "local" && s.cfg.UploadDir != "" {
		s.app.Static("/uploads", s.cfg.UploadDir)
	}

	api := s.app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", s.register)
	auth.Post("/login", s.login)
	auth.Get("/me", s.authRequired, s.me)

	users := api.Group("/users", s.authRequired)
	users.Get("/", s.listUsers)
	users.Get("/search/:skill", s.searchUsers)
	users.Put("/me", s.updateProfile)
	users.Post("/upload-photo", s.uploadPhoto)
	// keep after the literal routes so "search" and "me" never match as :id
	users.Get("/:id", s.userProfile)

	swaps := api.Group("/swap-requests", s.authRequired)
	swaps.Post("/", s.createSwap)
	swaps.Get("/my-requests", s.myRequests)
	swaps.Get("/incoming", s.incomingRequests)
	swaps.Put("/:id", s.updateSwapStatus)
	swaps.Delete("/:id", s.deleteSwap)

	ratings := api.Group("/ratings", s.authRequired)
	ratings.Post("/", s.createRating)
	ratings.Get("/user/:id", s.userRatings)

	admin := api.Group("/admin", s.authRequired, s.adminRequired)
	admin.Get("/users", s.adminListUsers)
	admin.Put("/users/:id/ban", s.banUser)
	admin.Put("/users/:id/unban", s.unbanUser)
	admin.Get("/swap-requests", s.adminListSwaps)
	admin.Get("/stats", s.adminStats)
}

// Run serves until ctx is cancelled, then shuts down draining in-flight
// requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(s.cfg.Addr)
	}()

	s.log.Info(ctx, "http server listening", "addr", s.cfg.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Info(ctx, "shutting down http server")
		return s.app.ShutdownWithTimeout(shutdownTimeout)
	}
}

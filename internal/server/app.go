// Package server assembles the SkillSwap backend: it opens the database,
// runs migrations, wires repositories into services, and serves the REST
// API until a termination signal arrives.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"skillswap/internal/filex"
	"skillswap/internal/logging"
	"skillswap/internal/server/cache"
	"skillswap/internal/server/config"
	"skillswap/internal/server/photos"
	"skillswap/internal/server/repositories"
	"skillswap/internal/server/rest"
	"skillswap/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *rest.Server
	closer func()
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := repositories.OpenPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	c := cache.New(ctx, cfg.RedisAddr)
	if cfg.RedisAddr != "" && c == nil {
		logger.Warn(ctx, "redis unreachable, caching disabled", "addr", cfg.RedisAddr)
	}

	photoStore, err := newPhotoStore(ctx, cfg)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("photo store init error: %w", err)
	}

	manager := repositories.PostgresManager{}
	us := services.NewUserService(db, manager, c, photoStore, cfg)
	ss := services.NewSwapService(db, manager)
	rs := services.NewRatingService(db, manager)

	srv := rest.NewServer(cfg, logger, us, ss, rs)

	closer := func() {
		_ = c.Close()
		_ = db.Close()
	}

	return &App{config: cfg, logger: logger, server: srv, closer: closer}, nil
}

func newPhotoStore(ctx context.Context, cfg *config.Config) (photos.Store, error) {
	switch cfg.PhotoStore {
	case "s3":
		return photos.NewS3Store(ctx, photos.S3Config{
			Region:       cfg.S3Region,
			Bucket:       cfg.S3Bucket,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			BaseEndpoint: cfg.S3BaseEndpoint,
			PublicURL:    cfg.S3PublicURL,
		})
	default:
		dir, err := filex.EnsureDir(cfg.UploadDir)
		if err != nil {
			return nil, err
		}
		return photos.NewLocalStore(dir)
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer app.closer()

	app.initSignalHandler(cancel)

	app.logger.Info(ctx, "starting app", "addr", app.config.Addr)
	return app.server.Run(ctx)
}

func (app *App) initSignalHandler(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancel()
	}()
}

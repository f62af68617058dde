package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	glog "github.com/labstack/gommon/log"

	"github.com/iliyamo/iavo-ui/internal/backend"
	"github.com/iliyamo/iavo-ui/internal/config"
	"github.com/iliyamo/iavo-ui/internal/database"
	"github.com/iliyamo/iavo-ui/internal/handler"
	"github.com/iliyamo/iavo-ui/internal/middleware"
	"github.com/iliyamo/iavo-ui/internal/queue"
	"github.com/iliyamo/iavo-ui/internal/repository"
	"github.com/iliyamo/iavo-ui/internal/router"
	"github.com/iliyamo/iavo-ui/internal/service"
	"github.com/iliyamo/iavo-ui/internal/view"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(logLevel(cfg.LogLevel))
	e.Renderer = view.MustRenderer()
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	rdb := config.NewRedisClient()
	mw := router.Middlewares{
		RateLimit:   middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		HealthCache: middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	}

	client := backend.New(cfg.HealthURL, cfg.ProfileUpdateURL, cfg.BackendTimeout)

	var audit handler.AuditPublisher
	if cfg.AuditEnabled {
		audit = service.NewAuditPublisher(cfg.AMQPURL)
		rec, closeRec := auditRecorder(cfg)
		defer closeRec()
		go func() {
			if err := queue.StartProfileAuditConsumer(ctx, cfg.AMQPURL, rec); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("audit-consumer stopped: %v", err)
			}
		}()
	}

	router.RegisterRoutes(e)
	router.RegisterPages(e, handler.NewHomeHandler(client), handler.NewProfileHandler(client, audit), mw)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s) health=%s profile=%s", addr, cfg.Env, cfg.HealthURL, cfg.ProfileUpdateURL)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}

// auditRecorder picks the sink the consumer writes to.
func auditRecorder(cfg config.Config) (queue.Recorder, func()) {
	if cfg.AuditSink != config.AuditSinkMySQL {
		return queue.NewFileRecorder(cfg.AuditLogDir), func() {}
	}
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("audit database: %v", err)
	}
	repo := repository.NewAuditRepo(db)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("audit schema: %v", err)
	}
	return repo, func() { _ = db.Close() }
}

func logLevel(s string) glog.Lvl {
	switch s {
	case "debug":
		return glog.DEBUG
	case "warn":
		return glog.WARN
	case "error":
		return glog.ERROR
	case "off":
		return glog.OFF
	}
	return glog.INFO
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/saxenaaman628/proposal-voting-system/config"
	"github.com/saxenaaman628/proposal-voting-system/internal/api"
	"github.com/saxenaaman628/proposal-voting-system/internal/redis"
	redishandler "github.com/saxenaaman628/proposal-voting-system/internal/redisHandler"
	"github.com/saxenaaman628/proposal-voting-system/internal/registry"
	"github.com/saxenaaman628/proposal-voting-system/internal/sqlstore"
	"github.com/saxenaaman628/proposal-voting-system/internal/store"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	gin.SetMode(cfg.GinMode)
	if cfg.GinMode == gin.ReleaseMode {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	}

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET is not set")
		os.Exit(1)
	}

	ctx := context.Background()
	s, closer, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("store setup failed", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer closer.Close()
	slog.Info("store ready", "driver", cfg.StoreDriver)

	reg := registry.New(s)
	router := api.NewRouter(reg, api.Options{
		JWTSecret:   []byte(cfg.JWTSecret),
		TokenTTL:    cfg.JWTTTL,
		CORSOrigins: cfg.CORSOrigins,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// signal.Notify requires the channel to be buffered
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

type closeFunc func() error

func (f closeFunc) Close() error { return f() }

func openStore(ctx context.Context, cfg config.Config) (store.Store, io.Closer, error) {
	switch cfg.StoreDriver {
	case "memory":
		return store.NewMemory(), closeFunc(func() error { return nil }), nil
	case "redis":
		rdb, err := redis.NewClient(ctx, cfg.RedisURI, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return redishandler.NewProposalStore(rdb), rdb, nil
	case "mysql", "sqlite":
		dsn := cfg.MySQLDSN
		if cfg.StoreDriver == "sqlite" {
			dsn = cfg.SQLitePath
		}
		db, err := sqlstore.Open(cfg.StoreDriver, dsn)
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		s, err := sqlstore.NewProposalStore(db)
		if err != nil {
			sqlDB.Close()
			return nil, nil, err
		}
		return s, sqlDB, nil
	default:
		return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

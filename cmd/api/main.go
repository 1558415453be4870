package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/emilythestrangee/nc-news/backend/internal/config"
	"github.com/emilythestrangee/nc-news/backend/internal/database"
	"github.com/emilythestrangee/nc-news/backend/internal/logger"
	"github.com/emilythestrangee/nc-news/backend/internal/server"
)

func main() {
	seed := flag.Bool("seed", false, "initialise the schema and load the development dataset before serving")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()
	log.Info("database connected")

	ctx := context.Background()
	if err := db.Initialize(ctx); err != nil {
		log.Fatal("failed to create tables", zap.Error(err))
	}
	if *seed {
		if err := db.Seed(ctx, database.DevData()); err != nil {
			log.Fatal("failed to seed database", zap.Error(err))
		}
		log.Info("development dataset loaded")
	}

	srv := server.New(db, log).HTTPServer(cfg.Server)

	stop, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop.Done()
	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blogapi/internal/config"
	"blogapi/internal/handlers"
	"blogapi/internal/logger"
	"blogapi/internal/repository"
	"blogapi/internal/server"
	"blogapi/internal/service"
	"blogapi/internal/session"
	"blogapi/internal/token"

	_ "blogapi/docs"
)

const (
	defaultPort     = "3030"
	shutdownTimeout = 10 * time.Second
	startupTimeout  = 15 * time.Second
)

// @title        Blog API
// @version      1.0
// @description  User registration, token login and a posts resource.
//
// @securityDefinitions.basic  BasicAuth
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	// Config first so the log level is honored; a missing secret or
	// connection string is fatal before any request can arrive.
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.LogLevel)

	// open DB
	db, err := repository.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// connect session store
	startupCtx, startupCancel := context.WithTimeout(context.Background(), startupTimeout)
	sessions, err := session.NewStore(startupCtx, cfg.RedisURI, cfg.SessionTTL)
	startupCancel()
	if err != nil {
		log.Fatalw("failed to connect session store", "err", err)
	}
	defer func() {
		if cerr := sessions.Close(); cerr != nil {
			log.Errorw("failed to close session store", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(db)
	codec := token.NewCodec(cfg.JWTSecret)
	hasher := service.NewHasher(cfg.HashSecret)
	feed := handlers.NewFeedHub(log)
	services := service.NewService(repos, codec, hasher, feed)
	apiHandler := handlers.NewHandler(services, sessions, feed, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = defaultPort
		}
		log.Infow("starting server", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/octobees/usuarios-web/internal/apiclient"
	"github.com/octobees/usuarios-web/internal/config"
	"github.com/octobees/usuarios-web/internal/handler"
	middlewarepkg "github.com/octobees/usuarios-web/internal/middleware"
	"github.com/octobees/usuarios-web/internal/router"
	"github.com/octobees/usuarios-web/internal/session"
	"github.com/octobees/usuarios-web/internal/view"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		logrus.Fatalf("failed to load templates: %v", err)
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	api := apiclient.New(httpClient, cfg.APIBaseURL)
	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL)

	handlers := router.Handlers{
		Auth:  handler.NewAuthHandler(api, sessions),
		Users: handler.NewUsersHandler(api, cfg.PollInterval),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())
	e.Use(middlewarepkg.LoadSession(sessions))

	router.Register(e, cfg, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()
	logrus.WithField("port", cfg.Port).Info("usuarios-web listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logrus.Infof("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("graceful shutdown failed: %v", err)
	}
}

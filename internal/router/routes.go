package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/usuarios-web/internal/config"
	"github.com/octobees/usuarios-web/internal/handler"
	middlewarepkg "github.com/octobees/usuarios-web/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth  *handler.AuthHandler
	Users *handler.UsersHandler
}

// Register wires all HTTP routes for the web front end.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	e.GET("/login", handlers.Auth.ShowLogin)
	e.POST("/login", handlers.Auth.Login, middlewarepkg.LoginRateLimiter(cfg.RateLimitLogin))
	e.POST("/logout", handlers.Auth.Logout)
	e.GET("/registro", handlers.Auth.ShowRegister)
	e.POST("/registro", handlers.Auth.Register)

	e.GET("/", handlers.Users.Home)
	e.GET("/editar/:id", handlers.Users.ShowEdit)
	e.POST("/editar/:id", handlers.Users.Edit)

	e.GET("/api/usuarios", handlers.Users.ListJSON)
	e.DELETE("/api/usuarios/:id", handlers.Users.DeleteJSON)
}

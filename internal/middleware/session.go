package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/octobees/usuarios-web/internal/entity"
	"github.com/octobees/usuarios-web/internal/session"
)

// LoadSession resolves the session cookie on every request and stores the
// profile in the request context. Absence of a session is not an error; the
// navigation shell simply renders its logged-out variant.
func LoadSession(store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user, ok := store.Current(c); ok {
				c.Set(ContextKeyUser, user)
			}
			return next(c)
		}
	}
}

// UserFromContext extracts the session profile if one was loaded.
func UserFromContext(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(ContextKeyUser).(*entity.User)
	return user, ok
}

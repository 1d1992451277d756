package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/usuarios-web/internal/apiclient"
	"github.com/octobees/usuarios-web/internal/dto"
	"github.com/octobees/usuarios-web/internal/entity"
	"github.com/octobees/usuarios-web/internal/middleware"
)

// Page payloads handed to the templates. Every page carries the session
// profile so the navigation shell can render its gated links.

type loginPage struct {
	User   *entity.User
	Error  string
	Correo string
}

type registroPage struct {
	User    *entity.User
	Error   string
	Done    bool
	Message string
	Nombre  string
	Correo  string
	Carrera string
}

type homePage struct {
	User   *entity.User
	Users  []entity.User
	Error  string
	PollMs int64
}

type editarPage struct {
	User  *entity.User
	ID    string
	Error string
	Form  dto.UpdateUserRequest
}

// outboundContext carries the request id to the usuarios service.
func outboundContext(c echo.Context) context.Context {
	return apiclient.WithRequestID(c.Request().Context(), middleware.RequestIDFromContext(c))
}

// sessionUser resolves the profile the session middleware loaded, if any.
func sessionUser(c echo.Context) *entity.User {
	user, _ := middleware.UserFromContext(c)
	return user
}

// messageFor converts an API failure into the text the view shows: the
// service's own message when one was supplied, the per-operation fallback for
// a bare rejection, and a generic connection notice for transport failures.
func messageFor(err error, fallback string) string {
	var se *apiclient.StatusError
	if errors.As(err, &se) {
		if se.Message != "" {
			return se.Message
		}
		return fallback
	}
	return "Error de conexión con el servidor"
}

// statusFor picks the response status for a failed remote call.
func statusFor(err error) int {
	var se *apiclient.StatusError
	if errors.As(err, &se) && se.StatusCode >= 400 {
		return se.StatusCode
	}
	return http.StatusBadGateway
}

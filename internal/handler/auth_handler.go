package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/usuarios-web/internal/apiclient"
	"github.com/octobees/usuarios-web/internal/dto"
	"github.com/octobees/usuarios-web/internal/session"
)

// AuthHandler serves the login and registration views and the logout action.
type AuthHandler struct {
	api      apiclient.UsersAPI
	sessions session.Store
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(api apiclient.UsersAPI, sessions session.Store) *AuthHandler {
	return &AuthHandler{api: api, sessions: sessions}
}

// ShowLogin handles GET /login.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", loginPage{User: sessionUser(c)})
}

// Login handles POST /login form submissions.
func (h *AuthHandler) Login(c echo.Context) error {
	page := loginPage{
		User:   sessionUser(c),
		Correo: strings.TrimSpace(c.FormValue("correo")),
	}
	password := c.FormValue("password")

	if page.Correo == "" || password == "" {
		page.Error = "Correo y contraseña son obligatorios"
		return c.Render(http.StatusBadRequest, "login.html", page)
	}

	usuario, err := h.api.Login(outboundContext(c), page.Correo, password)
	if err != nil {
		page.Error = messageFor(err, "Error al iniciar sesión")
		return c.Render(statusFor(err), "login.html", page)
	}

	if err := h.sessions.Issue(c, usuario); err != nil {
		page.Error = "Error al iniciar sesión"
		return c.Render(http.StatusInternalServerError, "login.html", page)
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

// Logout handles POST /logout. It clears the session unconditionally, even
// when none exists, and always lands on the login view.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Clear(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}

// ShowRegister handles GET /registro.
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	return c.Render(http.StatusOK, "registro.html", registroPage{User: sessionUser(c)})
}

// Register handles POST /registro form submissions. Registration never
// creates a session; the user logs in afterwards.
func (h *AuthHandler) Register(c echo.Context) error {
	page := registroPage{
		User:    sessionUser(c),
		Nombre:  strings.TrimSpace(c.FormValue("nombre")),
		Correo:  strings.TrimSpace(c.FormValue("correo")),
		Carrera: strings.TrimSpace(c.FormValue("carrera")),
	}
	password := c.FormValue("password")

	if page.Nombre == "" || page.Correo == "" || page.Carrera == "" || password == "" {
		page.Error = "Todos los campos son obligatorios"
		return c.Render(http.StatusBadRequest, "registro.html", page)
	}

	msg, err := h.api.CreateUser(outboundContext(c), dto.RegisterRequest{
		Nombre:   page.Nombre,
		Correo:   page.Correo,
		Carrera:  page.Carrera,
		Password: password,
	})
	if err != nil {
		page.Error = messageFor(err, "Error al registrar usuario")
		return c.Render(statusFor(err), "registro.html", page)
	}

	page.Done = true
	page.Message = msg
	if page.Message == "" {
		page.Message = "¡Registro exitoso! Redirigiendo..."
	}
	return c.Render(http.StatusOK, "registro.html", page)
}

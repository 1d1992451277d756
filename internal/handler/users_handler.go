package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/octobees/usuarios-web/internal/apiclient"
	"github.com/octobees/usuarios-web/internal/dto"
)

// UsersHandler serves the listing and edit views plus the JSON proxy
// endpoints backing the listing page's refresh and delete scripts.
type UsersHandler struct {
	api          apiclient.UsersAPI
	pollInterval time.Duration
}

// NewUsersHandler constructs a UsersHandler. pollInterval controls the
// listing page's background refresh; zero disables it.
func NewUsersHandler(api apiclient.UsersAPI, pollInterval time.Duration) *UsersHandler {
	if pollInterval < 0 {
		pollInterval = 0
	}
	return &UsersHandler{api: api, pollInterval: pollInterval}
}

// Home handles GET / and renders one card per user.
func (h *UsersHandler) Home(c echo.Context) error {
	page := homePage{
		User:   sessionUser(c),
		PollMs: h.pollInterval.Milliseconds(),
	}

	users, err := h.api.ListUsers(outboundContext(c))
	if err != nil {
		page.Error = messageFor(err, "Error al obtener usuarios")
		return c.Render(statusFor(err), "home.html", page)
	}

	page.Users = users
	return c.Render(http.StatusOK, "home.html", page)
}

// ShowEdit handles GET /editar/:id and pre-populates the form from the
// service. A failed fetch leaves the form at its empty default with an
// inline error.
func (h *UsersHandler) ShowEdit(c echo.Context) error {
	page := editarPage{User: sessionUser(c), ID: c.Param("id")}

	usuario, err := h.api.GetUser(outboundContext(c), page.ID)
	if err != nil {
		page.Error = "Error al obtener datos del usuario"
		return c.Render(statusFor(err), "editar.html", page)
	}

	page.Form = dto.UpdateUserRequest{
		Nombre:  usuario.Nombre,
		Correo:  usuario.Correo,
		Carrera: usuario.Carrera,
	}
	return c.Render(http.StatusOK, "editar.html", page)
}

// Edit handles POST /editar/:id. The whole profile is overwritten on every
// submission; partial updates are not supported by the service.
func (h *UsersHandler) Edit(c echo.Context) error {
	page := editarPage{
		User: sessionUser(c),
		ID:   c.Param("id"),
		Form: dto.UpdateUserRequest{
			Nombre:  strings.TrimSpace(c.FormValue("nombre")),
			Correo:  strings.TrimSpace(c.FormValue("correo")),
			Carrera: strings.TrimSpace(c.FormValue("carrera")),
		},
	}

	if page.Form.Nombre == "" || page.Form.Correo == "" || page.Form.Carrera == "" {
		page.Error = "Todos los campos son obligatorios"
		return c.Render(http.StatusBadRequest, "editar.html", page)
	}

	if err := h.api.UpdateUser(outboundContext(c), page.ID, page.Form); err != nil {
		page.Error = messageFor(err, "Error al actualizar el usuario")
		return c.Render(statusFor(err), "editar.html", page)
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

// ListJSON handles GET /api/usuarios for the listing page's refresh poll.
func (h *UsersHandler) ListJSON(c echo.Context) error {
	users, err := h.api.ListUsers(outboundContext(c))
	if err != nil {
		return Error(c, statusFor(err), messageFor(err, "Error al obtener usuarios"))
	}
	return Success(c, http.StatusOK, "usuarios obtenidos", users)
}

// DeleteJSON handles DELETE /api/usuarios/:id, issued once per confirmed
// deletion by the listing page.
func (h *UsersHandler) DeleteJSON(c echo.Context) error {
	if err := h.api.DeleteUser(outboundContext(c), c.Param("id")); err != nil {
		return Error(c, statusFor(err), messageFor(err, "Error al eliminar usuario"))
	}
	return Success(c, http.StatusOK, "usuario eliminado", nil)
}

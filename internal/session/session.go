package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/octobees/usuarios-web/internal/entity"
)

// CookieName is the well-known key the session travels under.
const CookieName = "usuarios_session"

// Claims encodes the authenticated profile into the session token.
type Claims struct {
	jwt.RegisteredClaims
	Nombre  string `json:"nombre"`
	Correo  string `json:"correo"`
	Carrera string `json:"carrera"`
	Role    string `json:"role,omitempty"`
}

// Store abstracts session persistence so views can be tested with a fake.
type Store interface {
	Issue(c echo.Context, user *entity.User) error
	Current(c echo.Context) (*entity.User, bool)
	Clear(c echo.Context)
}

// Manager signs the profile into an HttpOnly cookie and reads it back. A
// missing, expired, or tampered cookie is simply "no session".
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager constructs a manager. A non-positive ttl means the session never
// expires and lasts until explicit logout.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue persists the profile as a signed cookie on the response.
func (m *Manager) Issue(c echo.Context, user *entity.User) error {
	if len(m.secret) == 0 {
		return errors.New("session secret must not be empty")
	}

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  user.ID.String(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		Nombre:  user.Nombre,
		Correo:  user.Correo,
		Carrera: user.Carrera,
		Role:    user.Role,
	}
	if m.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(m.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return err
	}

	cookie := &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if m.ttl > 0 {
		cookie.Expires = time.Now().Add(m.ttl)
	}
	c.SetCookie(cookie)
	return nil
}

// Current returns the stored profile, or false when no valid session exists.
func (m *Manager) Current(c echo.Context) (*entity.User, bool) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	parsed, err := jwt.ParseWithClaims(cookie.Value, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, false
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, false
	}

	return &entity.User{
		ID:      entity.UserID(claims.Subject),
		Nombre:  claims.Nombre,
		Correo:  claims.Correo,
		Carrera: claims.Carrera,
		Role:    claims.Role,
	}, true
}

// Clear expires the cookie. Safe to call when no session exists.
func (m *Manager) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

var _ Store = (*Manager)(nil)

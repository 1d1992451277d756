package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/octobees/usuarios-web/internal/dto"
	"github.com/octobees/usuarios-web/internal/entity"
)

// ErrUnavailable wraps transport-level failures: the service could not be
// reached or its response could not be parsed. Callers map it to a generic
// connection-problem message and never show the underlying detail.
var ErrUnavailable = errors.New("usuarios service unavailable")

// StatusError is a non-2xx response from the usuarios service. Message holds
// the body's optional "message" field and may be empty.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("usuarios service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("usuarios service returned status %d: %s", e.StatusCode, e.Message)
}

// UsersAPI declares the operations the views need from the remote service.
type UsersAPI interface {
	ListUsers(ctx context.Context) ([]entity.User, error)
	GetUser(ctx context.Context, id string) (*entity.User, error)
	CreateUser(ctx context.Context, req dto.RegisterRequest) (string, error)
	UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) error
	DeleteUser(ctx context.Context, id string) error
	Login(ctx context.Context, correo, password string) (*entity.User, error)
}

// Client talks JSON over HTTP to the remote usuarios service.
type Client struct {
	client  *http.Client
	baseURL string
}

// New builds a client for the given base URL.
func New(client *http.Client, baseURL string) *Client {
	if baseURL == "" {
		panic("baseURL must not be empty")
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{client: client, baseURL: baseURL}
}

// ListUsers fetches the full user collection.
func (c *Client) ListUsers(ctx context.Context) ([]entity.User, error) {
	resp, err := c.do(ctx, http.MethodGet, "/usuarios", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var users []entity.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("%w: decode user list: %v", ErrUnavailable, err)
	}
	return users, nil
}

// GetUser fetches a single profile by identifier.
func (c *Client) GetUser(ctx context.Context, id string) (*entity.User, error) {
	resp, err := c.do(ctx, http.MethodGet, "/usuarios/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var user entity.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: decode user: %v", ErrUnavailable, err)
	}
	return &user, nil
}

// CreateUser registers a new profile and returns the service message, if any.
func (c *Client) CreateUser(ctx context.Context, req dto.RegisterRequest) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/crear_usuario", req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil && err != io.EOF {
		// A 2xx with an unreadable body still means the user was created.
		return "", nil
	}
	return body.Message, nil
}

// UpdateUser overwrites the full profile behind the identifier.
func (c *Client) UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) error {
	resp, err := c.do(ctx, http.MethodPut, "/usuarios/"+url.PathEscape(id), req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// DeleteUser removes the profile behind the identifier.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/usuarios/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Login validates credentials and returns the authenticated profile.
func (c *Client) Login(ctx context.Context, correo, password string) (*entity.User, error) {
	resp, err := c.do(ctx, http.MethodPost, "/login", dto.LoginRequest{Correo: correo, Password: password})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body dto.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode login response: %v", ErrUnavailable, err)
	}
	return &body.Usuario, nil
}

// do issues the request and normalizes failures: transport errors wrap
// ErrUnavailable, non-2xx statuses become a StatusError carrying the optional
// message. On success the caller owns the response body.
func (c *Client) do(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	var reader io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rid := RequestIDFromContext(ctx); rid != "" {
		req.Header.Set("X-Request-ID", rid)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := extractMessage(resp.Body)
		resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: msg}
	}
	return resp, nil
}

// extractMessage pulls the optional "message" field out of an error body.
func extractMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return ""
	}
	return strings.TrimSpace(parsed.Message)
}

var _ UsersAPI = (*Client)(nil)

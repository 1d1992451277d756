package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octobees/usuarios-web/internal/dto"
	"github.com/octobees/usuarios-web/internal/entity"
)

func TestClient_ListUsers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/usuarios", r.URL.Path)
		// ids arrive as numbers or strings depending on the backend version
		w.Write([]byte(`[{"id":1,"nombre":"Ana","correo":"ana@x.com","carrera":"CS"},{"id":"7","nombre":"Luis","correo":"luis@x.com","carrera":"Med"}]`))
	}))
	defer server.Close()

	client := New(server.Client(), server.URL)
	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, entity.UserID("1"), users[0].ID)
	assert.Equal(t, "Ana", users[0].Nombre)
	assert.Equal(t, entity.UserID("7"), users[1].ID)
}

func TestClient_GetUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/usuarios/5", r.URL.Path)
		w.Write([]byte(`{"id":5,"nombre":"Ana","correo":"a@x.com","carrera":"CS"}`))
	}))
	defer server.Close()

	client := New(server.Client(), server.URL)
	user, err := client.GetUser(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Nombre)
	assert.Equal(t, "a@x.com", user.Correo)
	assert.Equal(t, "CS", user.Carrera)
}

func TestClient_UpdateUser_SendsFullReplacement(t *testing.T) {
	var got dto.UpdateUserRequest
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(server.Client(), server.URL)
	req := dto.UpdateUserRequest{Nombre: "Ana", Correo: "a@x.com", Carrera: "CS"}
	require.NoError(t, client.UpdateUser(context.Background(), "5", req))
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/usuarios/5", path)
	assert.Equal(t, req, got)
}

func TestClient_DeleteUser(t *testing.T) {
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(server.Client(), server.URL)
	require.NoError(t, client.DeleteUser(context.Background(), "a b"))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/usuarios/a%20b", path)
}

func TestClient_CreateUser(t *testing.T) {
	t.Run("message returned", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/crear_usuario", r.URL.Path)
			var req dto.RegisterRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "secret", req.Password)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"message":"Usuario creado"}`))
		}))
		defer server.Close()

		client := New(server.Client(), server.URL)
		msg, err := client.CreateUser(context.Background(), dto.RegisterRequest{
			Nombre: "Ana", Correo: "ana@x.com", Carrera: "CS", Password: "secret",
		})
		require.NoError(t, err)
		assert.Equal(t, "Usuario creado", msg)
	})

	t.Run("empty body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := New(server.Client(), server.URL)
		msg, err := client.CreateUser(context.Background(), dto.RegisterRequest{Nombre: "Ana"})
		require.NoError(t, err)
		assert.Empty(t, msg)
	})
}

func TestClient_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req dto.LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "ana@x.com", req.Correo)
			w.Write([]byte(`{"usuario":{"id":1,"nombre":"Ana","correo":"ana@x.com","carrera":"CS"}}`))
		}))
		defer server.Close()

		client := New(server.Client(), server.URL)
		user, err := client.Login(context.Background(), "ana@x.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, entity.UserID("1"), user.ID)
		assert.Equal(t, "Ana", user.Nombre)
	})

	t.Run("rejection carries optional message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Credenciales inválidas"}`))
		}))
		defer server.Close()

		client := New(server.Client(), server.URL)
		_, err := client.Login(context.Background(), "ana@x.com", "wrong")
		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
		assert.Equal(t, "Credenciales inválidas", se.Message)
	})

	t.Run("rejection without message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := New(server.Client(), server.URL)
		_, err := client.Login(context.Background(), "ana@x.com", "wrong")
		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Empty(t, se.Message)
	})

	t.Run("transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := New(nil, server.URL)
		_, err := client.Login(context.Background(), "ana@x.com", "secret")
		require.True(t, errors.Is(err, ErrUnavailable))
	})

	t.Run("malformed response is a transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not-json"))
		}))
		defer server.Close()

		client := New(server.Client(), server.URL)
		_, err := client.Login(context.Background(), "ana@x.com", "secret")
		require.True(t, errors.Is(err, ErrUnavailable))
	})
}

func TestClient_ForwardsRequestID(t *testing.T) {
	var rid string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(server.Client(), server.URL)
	ctx := WithRequestID(context.Background(), "req-1")
	_, err := client.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "req-1", rid)
}

package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UserID is the server-assigned identifier for a user. The usuarios service
// has returned both numeric and string ids over time, so it is kept opaque.
type UserID string

func (id UserID) String() string {
	return string(id)
}

// UnmarshalJSON accepts both `1` and `"1"`.
func (id *UserID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 1 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("unmarshal user id: %w", err)
		}
		*id = UserID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("unmarshal user id: %w", err)
	}
	*id = UserID(n.String())
	return nil
}

// User is the profile record owned by the remote usuarios service. The client
// only ever holds transient copies of it.
type User struct {
	ID      UserID `json:"id"`
	Nombre  string `json:"nombre"`
	Correo  string `json:"correo"`
	Carrera string `json:"carrera"`
	Role    string `json:"role,omitempty"`
}

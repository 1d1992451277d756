package dto

// RegisterRequest captures self-service registration payloads for
// POST /crear_usuario.
type RegisterRequest struct {
	Nombre   string `json:"nombre"`
	Correo   string `json:"correo"`
	Carrera  string `json:"carrera"`
	Password string `json:"password"`
}

// UpdateUserRequest is the full-replacement body sent to PUT /usuarios/:id.
// The remote service overwrites the whole profile, so every field is always
// populated from the form regardless of what actually changed.
type UpdateUserRequest struct {
	Nombre  string `json:"nombre"`
	Correo  string `json:"correo"`
	Carrera string `json:"carrera"`
}

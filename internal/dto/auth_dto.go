package dto

// ─── Auth ────────────────────────────────────────────────────────────────────

type LoginRequest struct {
	PIN string `json:"pin" validate:"required,len=4,numeric"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int             `json:"expires_in"`
	User        UsuarioResponse `json:"user"`
}

// ─── Usuarios ────────────────────────────────────────────────────────────────

type CrearUsuarioRequest struct {
	Nombre        string  `json:"nombre"        validate:"required,min=2"`
	PIN           string  `json:"pin"           validate:"required,len=4,numeric"`
	Rol           string  `json:"rol"           validate:"required,oneof=admin recepcionista"`
	Recepcionista *string `json:"recepcionista" validate:"omitempty,oneof=Helen Diego Ninguno"`
}

type ActualizarUsuarioRequest struct {
	Nombre        string  `json:"nombre"        validate:"required,min=2"`
	PIN           string  `json:"pin"           validate:"required,len=4,numeric"`
	Rol           string  `json:"rol"           validate:"required,oneof=admin recepcionista"`
	Recepcionista *string `json:"recepcionista" validate:"omitempty,oneof=Helen Diego Ninguno"`
}

type UsuarioResponse struct {
	ID            string  `json:"id"`
	Nombre        string  `json:"nombre"`
	Rol           string  `json:"rol"`
	Recepcionista *string `json:"recepcionista,omitempty"`
	SuperAdmin    bool    `json:"super_admin"`
}

package dto

import "time"

// CreateUserRequest entrada del aprovisionamiento administrativo: crea la
// credencial (password se hashea en el use case) y el perfil en un paso.
type CreateUserRequest struct {
	Name          string `json:"nombre"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Role          string `json:"role"`
	AssignedOwner string `json:"propietario_asignado,omitempty"`
}

// UpdateUserRequest entrada para actualizar rol, asignación o estado.
type UpdateUserRequest struct {
	Name          *string `json:"nombre"`
	Role          *string `json:"role"`
	AssignedOwner *string `json:"propietario_asignado"`
	Status        *string `json:"estado"`
	Password      *string `json:"password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"nombre"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	AssignedOwner string    `json:"propietario_asignado,omitempty"`
	RegisteredAt  time.Time `json:"fecha_registro"`
	Status        string    `json:"estado"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT y el perfil del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

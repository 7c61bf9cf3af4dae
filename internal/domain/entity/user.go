package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "Administrador General"
	RoleOwner  = "Dueño"
	RoleSeller = "Vendedor"
)

// Estados de un usuario.
const (
	UserActive   = "Activo"
	UserInactive = "Inactivo"
)

// ValidRole indica si el rol es uno de los tres del sistema.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleOwner || r == RoleSeller
}

// User representa un usuario del sistema. Email es la clave de negocio
// única usada para el login. AssignedOwner solo aplica cuando Role es
// Dueño: acota su inventario, promociones y exportaciones a ese socio.
type User struct {
	ID            string
	Name          string
	Email         string
	PasswordHash  string // bcrypt, nunca en claro después de persistir
	Role          string // Administrador General | Dueño | Vendedor
	AssignedOwner string // Dueño 1|2|3, vacío salvo rol Dueño
	RegisteredAt  time.Time
	Status        string // Activo | Inactivo
}

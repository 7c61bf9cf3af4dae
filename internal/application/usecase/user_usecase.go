package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Prendas-api/internal/domain"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
	"github.com/jhoicas/Prendas-api/internal/domain/repository"
)

// UserUseCase administra las cuentas del equipo: alta, edición de rol y
// estado, y listado. Solo el Administrador General llega hasta acá; el
// middleware RBAC lo garantiza antes.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// ProvisionInput datos para dar de alta una cuenta.
type ProvisionInput struct {
	Name          string
	Email         string
	Password      string
	Role          string
	AssignedOwner string
}

// Provision crea la cuenta con la contraseña hasheada. El rol Dueño exige
// propietario asignado; los demás roles lo ignoran. El correo repetido es
// ErrEmailAlreadyExists.
func (uc *UserUseCase) Provision(ctx context.Context, input ProvisionInput) (*entity.User, error) {
	if input.Name == "" || input.Email == "" || len(input.Password) < 6 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidRole(input.Role) {
		return nil, domain.ErrInvalidInput
	}
	if input.Role == entity.RoleOwner && !entity.ValidOwner(input.AssignedOwner) {
		return nil, domain.ErrInvalidInput
	}
	if input.Role != entity.RoleOwner {
		input.AssignedOwner = ""
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hasheando contraseña: %w", err)
	}

	user := &entity.User{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Email:         input.Email,
		PasswordHash:  string(hash),
		Role:          input.Role,
		AssignedOwner: input.AssignedOwner,
		RegisteredAt:  time.Now(),
		Status:        entity.UserActive,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateInput cambios sobre una cuenta existente. Los punteros nil dejan el
// campo como está.
type UpdateInput struct {
	Name          *string
	Role          *string
	AssignedOwner *string
	Status        *string
	Password      *string
}

// Update aplica cambios de rol, propietario, estado, nombre o contraseña.
func (uc *UserUseCase) Update(ctx context.Context, userID string, input UpdateInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Name = *input.Name
	}
	if input.Role != nil {
		if !entity.ValidRole(*input.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *input.Role
	}
	if input.AssignedOwner != nil {
		if *input.AssignedOwner != "" && !entity.ValidOwner(*input.AssignedOwner) {
			return nil, domain.ErrInvalidInput
		}
		user.AssignedOwner = *input.AssignedOwner
	}
	if user.Role == entity.RoleOwner && user.AssignedOwner == "" {
		return nil, domain.ErrInvalidInput
	}
	if user.Role != entity.RoleOwner {
		user.AssignedOwner = ""
	}
	if input.Status != nil {
		if *input.Status != entity.UserActive && *input.Status != entity.UserInactive {
			return nil, domain.ErrInvalidInput
		}
		user.Status = *input.Status
	}
	if input.Password != nil {
		if len(*input.Password) < 6 {
			return nil, domain.ErrInvalidInput
		}
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return nil, fmt.Errorf("hasheando contraseña: %w", hashErr)
		}
		user.PasswordHash = string(hash)
	}

	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// List devuelve todas las cuentas del equipo.
func (uc *UserUseCase) List(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.List()
}

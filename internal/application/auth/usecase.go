package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Prendas-api/internal/domain"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
	"github.com/jhoicas/Prendas-api/internal/domain/repository"
	"github.com/jhoicas/Prendas-api/pkg/config"
	"github.com/jhoicas/Prendas-api/pkg/jwt"
)

// UseCase autentica usuarios y emite tokens de sesión.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(userRepo repository.UserRepository, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Session resultado de un login correcto: token firmado y los datos del
// usuario que el cliente necesita para pintar su sesión.
type Session struct {
	Token string
	User  *entity.User
}

// Login verifica credenciales y emite el JWT. Credenciales incorrectas y
// correo inexistente devuelven el mismo error para no revelar qué cuentas
// existen; las cuentas inactivas se rechazan de plano.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("buscando usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserActive {
		return nil, domain.ErrForbidden
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(
		uc.jwtCfg.Secret,
		user.ID,
		user.Name,
		user.Role,
		user.AssignedOwner,
		uc.jwtCfg.Issuer,
		uc.jwtCfg.Expiration,
	)
	if err != nil {
		return nil, fmt.Errorf("generando token: %w", err)
	}

	return &Session{Token: token, User: user}, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Prendas-api/internal/domain"
	"github.com/jhoicas/Prendas-api/internal/domain/entity"
	"github.com/jhoicas/Prendas-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, nombre, email, password_hash, role, propietario_asignado, fecha_registro, estado`

// Create persiste un nuevo usuario. Email tiene constraint único.
func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO usuarios (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role,
		nullIfEmpty(u.AssignedOwner), u.RegisteredAt, u.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.get(`SELECT `+userColumns+` FROM usuarios WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email (clave de negocio para el login).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.get(`SELECT `+userColumns+` FROM usuarios WHERE email = $1`, email)
}

// Update actualiza nombre, hash de password, rol, propietario y estado.
func (r *UserRepo) Update(u *entity.User) error {
	query := `
		UPDATE usuarios
		SET nombre = $2, password_hash = $3, role = $4, propietario_asignado = $5, estado = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Name, u.PasswordHash, u.Role, nullIfEmpty(u.AssignedOwner), u.Status,
	)
	if err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// List lista todos los usuarios.
func (r *UserRepo) List() ([]*entity.User, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+userColumns+` FROM usuarios ORDER BY fecha_registro DESC`)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *UserRepo) get(query string, args ...any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var owner *string
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&owner, &u.RegisteredAt, &u.Status,
	)
	if err != nil {
		return nil, err
	}
	u.AssignedOwner = derefString(owner)
	return &u, nil
}

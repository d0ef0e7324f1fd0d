package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"dashly/internal/domain"
)

// ErrDuplicateEmail indica que ya existe un usuario con ese email.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository define el contrato de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
}

// Querier cubre las operaciones de pgxpool.Pool que usa el repositorio.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PgUserRepository implementa UserRepository usando pgx.
type PgUserRepository struct {
	pool Querier
}

func NewPgUserRepository(pool Querier) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

// Create inserta el usuario. El índice único sobre email es el respaldo
// definitivo contra altas concurrentes: una violación se reporta como
// ErrDuplicateEmail, nunca como error genérico.
func (r *PgUserRepository) Create(ctx context.Context, user domain.User) error {
	const query = `
		INSERT INTO users (id, email, password_hash, account_type, company_name, number_of_employees, date_of_birth, accepted_terms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	var companyName any
	var numberOfEmployees any
	if user.AccountType == domain.AccountTypeCompany {
		companyName = user.CompanyName
		numberOfEmployees = user.NumberOfEmployees
	}
	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.AccountType,
		companyName,
		numberOfEmployees,
		user.DateOfBirth,
		user.AcceptedTerms,
		user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *PgUserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	const query = `
		SELECT id, email, password_hash, account_type, company_name, number_of_employees, date_of_birth, accepted_terms, created_at
		FROM users
		WHERE email = $1
	`
	return r.scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *PgUserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	const query = `
		SELECT id, email, password_hash, account_type, company_name, number_of_employees, date_of_birth, accepted_terms, created_at
		FROM users
		WHERE id = $1
	`
	return r.scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *PgUserRepository) scanUser(row pgx.Row) (domain.User, error) {
	var (
		u                 domain.User
		companyName       *string
		numberOfEmployees *int
	)
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.AccountType,
		&companyName,
		&numberOfEmployees,
		&u.DateOfBirth,
		&u.AcceptedTerms,
		&u.CreatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	if companyName != nil {
		u.CompanyName = *companyName
	}
	if numberOfEmployees != nil {
		u.NumberOfEmployees = *numberOfEmployees
	}
	return u, nil
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"dashly/internal/domain"
	"dashly/internal/repository"
)

// UserService coordina reglas de negocio para usuarios.
type UserService struct {
	logger *zap.Logger
	users  repository.UserRepository
	hasher PasswordHasher
}

func NewUserService(logger *zap.Logger, users repository.UserRepository, hasher PasswordHasher) *UserService {
	if hasher == nil {
		hasher = NewBcryptHasher(0)
	}
	return &UserService{
		logger: logger,
		users:  users,
		hasher: hasher,
	}
}

var (
	ErrNoSuchUser      = errors.New("no user with that email")
	ErrInvalidPassword = errors.New("incorrect password")
)

// SignUp valida el payload, descarta emails duplicados, hashea la
// contraseña y persiste el usuario. El plaintext nunca llega al
// almacenamiento ni a los logs.
func (s *UserService) SignUp(ctx context.Context, req SignupRequest) (domain.User, error) {
	if s.users == nil {
		return domain.User{}, errors.New("user service not configured")
	}

	input, err := ValidateSignup(req)
	if err != nil {
		return domain.User{}, err
	}

	// Chequeo rápido; el índice único de la tabla resuelve la carrera
	// entre altas concurrentes con el mismo email.
	_, err = s.users.GetByEmail(ctx, input.Email)
	if err == nil {
		return domain.User{}, repository.ErrDuplicateEmail
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, err
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:                uuid.NewString(),
		Email:             input.Email,
		PasswordHash:      passwordHash,
		AccountType:       input.AccountType,
		CompanyName:       input.CompanyName,
		NumberOfEmployees: input.NumberOfEmployees,
		DateOfBirth:       input.DateOfBirth,
		AcceptedTerms:     input.AcceptTerms,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// Authenticate verifica credenciales contra el estado persistido.
// Distingue internamente usuario inexistente de contraseña incorrecta;
// la capa de transporte decide qué mensaje expone.
func (s *UserService) Authenticate(ctx context.Context, emailAddr, password string) (domain.User, error) {
	if s.users == nil {
		return domain.User{}, errors.New("user service not configured")
	}

	emailAddr = strings.TrimSpace(emailAddr)
	password = strings.TrimSpace(password)

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrNoSuchUser
		}
		return domain.User{}, err
	}
	if user.PasswordHash == "" || !s.hasher.Verify(password, user.PasswordHash) {
		return domain.User{}, ErrInvalidPassword
	}
	return user, nil
}

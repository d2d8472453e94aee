package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"dm-chat/internal/domain"
	"dm-chat/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrEmptyMessage       = errors.New("empty message")
)

// AuthService verifica credenciales contra el repositorio de usuarios.
type AuthService struct {
	logger *zap.Logger
	users  repository.UserRepository
}

func NewAuthService(logger *zap.Logger, users repository.UserRepository) *AuthService {
	return &AuthService{logger: logger, users: users}
}

// Authenticate busca el usuario por username y compara el password con bcrypt.
// Username inexistente y password incorrecto devuelven el mismo error:
// el caller no puede distinguir cuál de los dos falló.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	if s.users == nil {
		return domain.User{}, errors.New("auth service not configured")
	}

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if user.PasswordHash == "" {
		return domain.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}

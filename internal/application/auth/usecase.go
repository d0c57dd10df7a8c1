package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

// Config opciones de validación.
type Config struct {
	// AllowPlaintext acepta filas heredadas cuyo pass no es un hash bcrypt.
	AllowPlaintext bool
}

// AuthUseCase valida pares usuario/contraseña contra la tabla usuarios.
// No emite tokens ni mantiene sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	cfg      Config
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, cfg Config, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{userRepo: userRepo, cfg: cfg, log: log.Named("auth")}
}

// Validate devuelve el usuario si la contraseña coincide.
// Usuario inexistente y contraseña incorrecta son indistinguibles: ambos dan domain.ErrUnauthorized.
func (uc *AuthUseCase) Validate(ctx context.Context, in dto.ValidateUserRequest) (*dto.ValidateUserResponse, error) {
	if in.Usuario == "" || in.Pass == "" {
		return nil, domain.ErrUnauthorized
	}
	users, err := uc.userRepo.ListByUsuario(ctx, in.Usuario)
	if err != nil {
		uc.log.Error().Str("op", "validate").Err(err).Msg("error ejecutando la consulta")
		return nil, fmt.Errorf("%w: validar usuario: %w", domain.ErrStore, err)
	}
	for _, u := range users {
		if uc.matches(u, in.Pass) {
			return &dto.ValidateUserResponse{ID: u.ID, Usuario: u.Usuario}, nil
		}
	}
	return nil, domain.ErrUnauthorized
}

func (uc *AuthUseCase) matches(u *entity.User, pass string) bool {
	if u.HasHashedPassword() {
		err := bcrypt.CompareHashAndPassword([]byte(u.Pass), []byte(pass))
		switch {
		case err == nil:
			return true
		case !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			// Hash corrupto en la fila: se trata como no coincidente.
			uc.log.Warn().Int64("user_id", u.ID).Err(err).Msg("hash de contraseña inválido")
		}
		return false
	}
	if !uc.cfg.AllowPlaintext {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(u.Pass), []byte(pass)) == 1
}

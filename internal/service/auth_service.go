package service

import (
	"context"
	"errors"
	"time"

	"viewspos/internal/config"
	"viewspos/internal/dto"
	"viewspos/internal/middleware"
	"viewspos/internal/model"
	"viewspos/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService interface {
	// Login checks the PIN against the roster: exact match, first user
	// wins. No lockout, no rate limiting — the PIN is the whole credential.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	EliminarUsuario(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	usuarios, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var user *model.Usuario
	for i := range usuarios {
		if usuarios[i].PIN == req.PIN {
			user = &usuarios[i]
			break
		}
	}
	if user == nil {
		return nil, errors.New("PIN incorrecto")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User:        *usuarioResponse(user),
	}, nil
}

// ── Gestion de usuarios (solo super admin, ver router) ───────────────────────

func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	user := &model.Usuario{
		Nombre:        req.Nombre,
		PIN:           req.PIN,
		Rol:           req.Rol,
		Recepcionista: req.Recepcionista,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return usuarioResponse(user), nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, *usuarioResponse(&usuarios[i]))
	}
	return out, nil
}

func (s *authService) ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoEncontrado
	}
	if err != nil {
		return nil, err
	}

	user.Nombre = req.Nombre
	user.PIN = req.PIN
	user.Recepcionista = req.Recepcionista
	// El super admin conserva su rol admin pase lo que pase.
	if !user.SuperAdmin {
		user.Rol = req.Rol
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return usuarioResponse(user), nil
}

func (s *authService) EliminarUsuario(ctx context.Context, id uuid.UUID) error {
	user, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoEncontrado
	}
	if err != nil {
		return err
	}
	if user.SuperAdmin {
		return ErrProhibido
	}
	return s.repo.Delete(ctx, id)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func (s *authService) generateToken(user *model.Usuario) (string, error) {
	now := time.Now()
	claims := middleware.JWTClaims{
		UserID:     user.ID.String(),
		Nombre:     user.Nombre,
		Rol:        user.Rol,
		SuperAdmin: user.SuperAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func usuarioResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:            u.ID.String(),
		Nombre:        u.Nombre,
		Rol:           u.Rol,
		Recepcionista: u.Recepcionista,
		SuperAdmin:    u.SuperAdmin,
	}
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"runbot/internal/config"
	"runbot/internal/model"
	"runbot/internal/repository"
)

// AuthService authenticates panel admins and issues session tokens.
type AuthService interface {
	// Login verifies the credentials and returns a signed JWT.
	Login(ctx context.Context, username, password string) (string, error)

	// EnsureBootstrapAdmin upserts the admin account from configuration so a
	// fresh deployment has a working login. No-op when no bootstrap
	// credentials are configured.
	EnsureBootstrapAdmin(ctx context.Context) error
}

type authService struct {
	repo repository.AdminRepository
	cfg  config.AuthConfig
}

// NewAuthService constructs an AuthService. The JWT secret must be set.
func NewAuthService(cfg config.AuthConfig, repo repository.AdminRepository) (AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("auth: JWT_SECRET is required")
	}
	return &authService{repo: repo, cfg: cfg}, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	admin, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !admin.IsActive {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": admin.Username,
		"iat": now.Unix(),
		"exp": now.Add(time.Duration(s.cfg.TokenTTLMin) * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *authService) EnsureBootstrapAdmin(ctx context.Context) error {
	if s.cfg.AdminUsername == "" || s.cfg.AdminPassword == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}

	if _, err := s.repo.Upsert(ctx, &model.Admin{
		Username:     s.cfg.AdminUsername,
		PasswordHash: string(hash),
		IsActive:     true,
	}); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ArowuTest/nft-raffle-backend/internal/config"
	"github.com/ArowuTest/nft-raffle-backend/internal/models"
	"github.com/ArowuTest/nft-raffle-backend/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

const minPasswordLength = 8

type authService struct {
	adminRepo repositories.AdminUserRepository
	jwtSecret []byte
	expiresIn time.Duration
	now       func() time.Time
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(adminRepo repositories.AdminUserRepository, cfg config.JWTConfig) AuthService {
	return &authService{
		adminRepo: adminRepo,
		jwtSecret: []byte(cfg.Secret),
		expiresIn: time.Duration(cfg.ExpiresIn) * time.Second,
		now:       time.Now,
	}
}

// Login checks the credentials of an admin user and issues an HS256 token
// carrying sub, email and role claims.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if len(s.jwtSecret) == 0 {
		return nil, errors.New("jwt secret is not configured")
	}

	user, err := s.adminRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		slog.Warn("Login: password mismatch", "email", user.Email)
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	expiresAt := now.Add(s.expiresIn)
	claims := jwt.MapClaims{
		"sub":   user.ID.Hex(),
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &models.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// CreateAdmin stores a new admin user with a bcrypt password hash.
func (s *authService) CreateAdmin(ctx context.Context, email, password string) (*models.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email %q", email)
	}
	if len(password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	_, err := s.adminRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrAdminExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user := &models.AdminUser{
		Email:     email,
		Password:  string(hashed),
		Role:      models.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.adminRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}
	slog.Info("Admin user created", "email", email)
	return user, nil
}

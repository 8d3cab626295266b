package services

import (
	"context"
	"strings"
	"time"

	"roadtrip/internal/models"
	"roadtrip/internal/repositories/interfaces"
	"roadtrip/internal/utils"
	"roadtrip/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is deliberately identical for unknown email and wrong
// password.
type invalidCredentialsError struct{}

func (invalidCredentialsError) Error() string { return utils.ErrInvalidCredentials }

var ErrInvalidCredentials = invalidCredentialsError{}

type AuthService struct {
	users     interfaces.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       *logger.Logger
}

func NewAuthService(users interfaces.UserRepository, jwtSecret string, tokenTTL time.Duration, log *logger.Logger) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "User"
	}

	if email == "" || req.Password == "" {
		return "", utils.NewValidationError("email and password required")
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return "", &utils.ConflictError{Message: utils.ErrEmailExists}
	} else if !utils.IsNotFound(err) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	s.log.WithField("user_id", user.ID.Hex()).Info("user registered")

	return utils.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenTTL)
}

func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if utils.IsNotFound(err) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenTTL)
}

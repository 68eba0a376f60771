package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"insure-backend/internal/auth"
	"insure-backend/internal/models"
	"insure-backend/internal/repositories"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

const minPasswordLength = 8

type UserService struct {
	Users *repositories.UserRepository
	JWT   *auth.JWTManager
}

func NewUserService(users *repositories.UserRepository, jwt *auth.JWTManager) *UserService {
	return &UserService{Users: users, JWT: jwt}
}

// Signup registers a back-office user and returns a signed session token.
func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.Join(ErrInvalidInput, errors.New("name is required"))
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errors.Join(ErrInvalidInput, errors.New("enter a valid email address"))
	}
	if len(req.Password) < minPasswordLength {
		return nil, errors.Join(ErrInvalidInput, errors.New("password must be at least 8 characters"))
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.JWT.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login verifies credentials. Unknown email and wrong password return the
// same error so the response does not leak which accounts exist.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.JWT.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

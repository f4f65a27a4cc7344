package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"walks-api/internal/model"
	"walks-api/internal/repository"
	"walks-api/pkg/response"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is the single error surfaced for unknown usernames,
// wrong passwords and role-less accounts alike, so callers cannot enumerate
// which of the three failed.
var ErrInvalidCredentials = errors.New("username or password is incorrect")

// ValidationError carries field-level registration failures
type ValidationError struct {
	Fields []response.FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

// DTOs for Request validation
type RegisterRequest struct {
	Username string   `json:"username" binding:"required,email"`
	Password string   `json:"password" binding:"required"`
	Roles    []string `json:"roles"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// AuthService defines the interface for registration and authentication
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
}

type authService struct {
	store             repository.UserStore
	issuer            *TokenIssuer
	minPasswordLength int
}

// NewAuthService returns a new instance of AuthService. The password policy
// requires only a minimum length, no character classes.
func NewAuthService(store repository.UserStore, issuer *TokenIssuer, minPasswordLength int) AuthService {
	if minPasswordLength <= 0 {
		minPasswordLength = 6
	}
	return &authService{store: store, issuer: issuer, minPasswordLength: minPasswordLength}
}

// Register creates a user with the given roles. User creation and role
// association happen in one transaction: either both succeed or neither does.
func (s *authService) Register(ctx context.Context, req RegisterRequest) error {
	if len(req.Password) < s.minPasswordLength {
		return &ValidationError{Fields: []response.FieldError{{
			Field:   "password",
			Message: fmt.Sprintf("password must be at least %d characters", s.minPasswordLength),
		}}}
	}

	if _, err := s.store.GetByUsername(ctx, req.Username); err == nil {
		return &ValidationError{Fields: []response.FieldError{{
			Field:   "username",
			Message: "username already exists",
		}}}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Username, // the username doubles as the email address
		PasswordHash: string(hash),
	}

	if err := s.store.CreateWithRoles(ctx, user, req.Roles); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return &ValidationError{Fields: []response.FieldError{{
				Field:   "username",
				Message: "username already exists",
			}}}
		}
		if errors.Is(err, repository.ErrRoleNotFound) {
			return &ValidationError{Fields: []response.FieldError{{
				Field:   "roles",
				Message: err.Error(),
			}}}
		}
		return err
	}
	return nil
}

// Login verifies the credentials and issues a bearer token. Accounts holding
// zero roles cannot obtain a token.
func (s *authService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.store.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	roles := user.RoleNames()
	if len(roles) == 0 {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user, roles)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &TokenResponse{Token: token}, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/todo-api/internal/auth"
	"github.com/yukikurage/todo-api/internal/models"
	"github.com/yukikurage/todo-api/internal/repository"
)

// TokenIssuer mints access tokens for a user id.
type TokenIssuer interface {
	Issue(userID uint64) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	userRepo repository.UserRepository
	hasher   auth.PasswordHasher
	tokens   TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, hasher auth.PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new user. The email is stored exactly as given and
// compared case-sensitively.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if input.Email == "" {
		return nil, ErrEmailRequired
	}
	if input.Password == "" {
		return nil, ErrPasswordRequired
	}

	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        input.Email,
		PasswordHash: hashed,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is a verified user and its freshly issued access token.
type LoginResult struct {
	User        *models.User
	AccessToken string
}

// Login verifies credentials and issues an access token. Unknown emails and
// wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResult{User: user, AccessToken: token}, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

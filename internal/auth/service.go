package auth

import (
	"context"
	"log/slog"
	"strings"

	"starwars-server/internal/shared/errors"
	"starwars-server/internal/user"

	"golang.org/x/crypto/bcrypt"
)

const maxPasswordBytes = 72

type Service struct {
	users      *user.Service
	tokens     *TokenManager
	bcryptCost int
	logger     *slog.Logger
}

func NewService(users *user.Service, tokens *TokenManager, bcryptCost int, logger *slog.Logger) *Service {
	logger.Debug("Initializing auth service")

	return &Service{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a user and returns an access token for it.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (string, error) {
	logger := s.logger.With("component", "auth_service", "operation", "register", "email", req.Email)

	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return "", errors.Validation("email and password are required")
	}
	// bcrypt only accepts up to 72 bytes of input.
	if len(req.Password) > maxPasswordBytes {
		return "", errors.Validationf("password must be at most %d bytes", maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return "", errors.WrapInternal("failed to hash password", err)
	}

	u := &user.User{
		Names:    req.Names,
		LastName: req.LastName,
		Age:      req.Age,
		Email:    email,
		Password: string(hash),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return "", err
	}

	logger.Info("User registered", "user_id", u.ID)
	return s.tokens.Generate(u.ID)
}

// Login checks the credentials and returns an access token.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (string, error) {
	logger := s.logger.With("component", "auth_service", "operation", "login", "email", req.Email)

	u, err := s.users.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", errors.Unauthorized("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return "", errors.WrapUnauthorized("Invalid email or password", err)
	}

	logger.Debug("User logged in", "user_id", u.ID)
	return s.tokens.Generate(u.ID)
}

package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/phrazzld/foldertasks/internal/domain"
	"github.com/phrazzld/foldertasks/internal/platform/logger"
	"github.com/phrazzld/foldertasks/internal/service/auth"
	"github.com/phrazzld/foldertasks/internal/store"
)

// UserService registers users and checks their credentials.
type UserService interface {
	// Register creates a user with a hashed password.
	// Returns ErrEmailTaken if the email is already registered.
	Register(ctx context.Context, email, password string) (*domain.User, error)

	// Authenticate returns the user matching email and password.
	// Returns ErrInvalidCredentials for an unknown email or a wrong password.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

type userServiceImpl struct {
	users    store.UserStore
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
	logger   *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) (UserService, error) {
	if users == nil {
		return nil, domain.NewValidationError("users", "cannot be nil", domain.ErrValidation)
	}
	if hasher == nil {
		return nil, domain.NewValidationError("hasher", "cannot be nil", domain.ErrValidation)
	}
	if verifier == nil {
		return nil, domain.NewValidationError("verifier", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		users:    users,
		hasher:   hasher,
		verifier: verifier,
		logger:   logger.With(slog.String("component", "user_service")),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register implements UserService.Register
func (s *userServiceImpl) Register(ctx context.Context, email, password string) (*domain.User, error) {
	const op = "register"
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(normalizeEmail(email), password)
	if err != nil {
		return nil, NewServiceError(op, "invalid user", asValidationError(err))
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, failWith(log, op, "failed to hash password", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("attempted to register an existing email", slog.String("operation", op))
			return nil, NewServiceError(op, "email already registered", ErrEmailTaken)
		}
		return nil, failWith(log, op, "failed to save user", err)
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	return user, nil
}

// Authenticate implements UserService.Authenticate
func (s *userServiceImpl) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	const op = "authenticate"
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("login with unknown email", slog.String("operation", op))
			return nil, NewServiceError(op, "unknown email", ErrInvalidCredentials)
		}
		return nil, failWith(log, op, "failed to retrieve user", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login with wrong password",
			slog.String("operation", op),
			slog.String("user_id", user.ID.String()))
		return nil, NewServiceError(op, "password mismatch", ErrInvalidCredentials)
	}

	return user, nil
}

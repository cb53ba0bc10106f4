package userapp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	userEntity "socialfeed/internal/core/user"
	userPort "socialfeed/internal/ports/user"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService authenticates and provisions users.
type UserService struct {
	UserRepository userPort.UserRepository
	logger         *zap.Logger
}

func NewUserService(repo userPort.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		UserRepository: repo,
		logger:         logger,
	}
}

// Authenticate checks a username/password pair. Any mismatch is reported as
// ErrInvalidCredentials; other errors come from the repository.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*userPort.UserDTO, error) {
	user, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userPort.ErrUserNotFound) {
			s.logger.Debug("login for unknown user", zap.String("username", username))
			return nil, userPort.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("could not look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Debug("invalid password", zap.String("userID", user.ID.String()))
		return nil, userPort.ErrInvalidCredentials
	}

	return toUserDTO(user), nil
}

// RegisterUser creates a user with a bcrypt-hashed password.
func (s *UserService) RegisterUser(ctx context.Context, username, password string) (*userPort.UserDTO, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, userPort.ErrInvalidInput
	}

	existing, err := s.UserRepository.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, userPort.ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, userPort.ErrUserNotFound) {
		return nil, fmt.Errorf("could not check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	u, err := s.UserRepository.Create(ctx, &userEntity.User{
		Username: username,
		Password: string(hashedPassword),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	s.logger.Info("user registered", zap.String("userID", u.ID.String()), zap.String("username", u.Username))
	return toUserDTO(u), nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserDTO(u), nil
}

func toUserDTO(u *userEntity.User) *userPort.UserDTO {
	return &userPort.UserDTO{
		ID:       u.ID.String(),
		Username: u.Username,
	}
}

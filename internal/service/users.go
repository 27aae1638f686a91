package service

import (
	"fmt"

	"mediconnect-server/internal/config"
	"mediconnect-server/internal/models"
	"mediconnect-server/internal/repository"
	"mediconnect-server/internal/utils"
)

// UserService covers registration, login and user administration.
type UserService struct {
	store *repository.Store
	cfg   *config.Config
}

// NewUserService creates a new UserService.
func NewUserService(store *repository.Store, cfg *config.Config) *UserService {
	return &UserService{store: store, cfg: cfg}
}

// RegisterInput is the payload for user registration.
type RegisterInput struct {
	Email    string
	Phone    string
	Password string
	Role     string
}

// Register creates a new user. The email must not already be registered.
func (s *UserService) Register(in RegisterInput) (*models.User, error) {
	role, err := models.ParseRole(in.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if in.Email == "" && in.Phone == "" {
		return nil, fmt.Errorf("%w: email or phone is required", ErrValidation)
	}

	if in.Email != "" {
		existing, err := s.store.Users.ByEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailAlreadyExists
		}
	}

	user := models.User{Role: role}
	if in.Email != "" {
		user.Email = &in.Email
	}
	if in.Phone != "" {
		user.Phone = &in.Phone
	}
	if err := user.SetPassword(in.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.store.Users.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// LoginResult carries the signed token and the authenticated user.
type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Authenticate verifies credentials and signs an access token.
func (s *UserService) Authenticate(email, password string) (*LoginResult, error) {
	user, err := s.store.Users.ByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user, s.cfg)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user}, nil
}

// Get returns a user by id.
func (s *UserService) Get(id uint) (*models.User, error) {
	user, err := s.store.Users.ByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrResourceNotFound, id)
	}
	return user, nil
}

// List returns users with pagination.
func (s *UserService) List(offset, limit int) ([]models.User, error) {
	return s.store.Users.All(offset, limit)
}

// Delete removes a user. Admin only.
func (s *UserService) Delete(id uint, caller Identity) error {
	if caller.Role != models.RoleAdmin {
		return ErrPermissionDenied
	}
	deleted, err := s.store.Users.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: user %d", ErrResourceNotFound, id)
	}
	return nil
}

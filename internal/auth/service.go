package auth

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vibrovolt/internal/models"
)

var (
	// ErrInvalidCredentials represents login failure.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrEmailInUse is returned when registering a duplicate email.
	ErrEmailInUse = errors.New("auth: email already registered")
	// ErrUserNotFound is returned for profile updates against unknown accounts.
	ErrUserNotFound = errors.New("auth: user not found")
)

// Demo credential pair; the only login that succeeds on a fresh directory.
const (
	demoEmail    = "demo@vibrovolt.com"
	demoPassword = "demo123"
)

// Service keeps an in-memory user directory and issues tokens. The directory
// is seeded with a single demo account whose password is stored hashed.
type Service struct {
	mu        sync.RWMutex
	users     map[string]*models.User // keyed by lowercase email
	hasher    Hasher
	tokenizer *TokenService
	logger    *zap.Logger
}

// NewService builds the service and seeds the demo account.
func NewService(hasher Hasher, tokenizer *TokenService, logger *zap.Logger) (*Service, error) {
	s := &Service{
		users:     make(map[string]*models.User),
		hasher:    hasher,
		tokenizer: tokenizer,
		logger:    logger,
	}

	hash, err := hasher.Hash(demoPassword)
	if err != nil {
		return nil, err
	}
	s.users[demoEmail] = &models.User{
		ID:           "1",
		Name:         "Demo User",
		Email:        demoEmail,
		Phone:        "+91 98765 43210",
		PasswordHash: hash,
	}

	return s, nil
}

// Login authenticates a user and produces a JWT.
func (s *Service) Login(email, password string) (models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return models.User{}, "", ErrInvalidCredentials
	}

	s.mu.RLock()
	user, ok := s.users[email]
	s.mu.RUnlock()
	if !ok {
		return models.User{}, "", ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.tokenizer.GenerateToken(user.ID, user.Email)
	if err != nil {
		return models.User{}, "", err
	}

	s.logger.Info("user logged in", zap.String("user_id", user.ID))
	return *user, token, nil
}

// Register creates a new account and returns it with a token.
func (s *Service) Register(name, email, phone, password string) (models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return models.User{}, "", errors.New("auth: email required")
	}
	if password == "" {
		return models.User{}, "", errors.New("auth: password required")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, "", err
	}

	s.mu.Lock()
	if _, exists := s.users[email]; exists {
		s.mu.Unlock()
		return models.User{}, "", ErrEmailInUse
	}
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
	}
	s.users[email] = user
	s.mu.Unlock()

	token, err := s.tokenizer.GenerateToken(user.ID, user.Email)
	if err != nil {
		return models.User{}, "", err
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID))
	return *user, token, nil
}

// UpdateProfile replaces the mutable profile fields of an account.
func (s *Service) UpdateProfile(userID, name, email, phone string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, user := range s.users {
		if user.ID != userID {
			continue
		}
		if email != "" && email != key {
			if _, taken := s.users[email]; taken {
				return models.User{}, ErrEmailInUse
			}
			delete(s.users, key)
			user.Email = email
			s.users[email] = user
		}
		if name != "" {
			user.Name = name
		}
		if phone != "" {
			user.Phone = phone
		}
		return *user, nil
	}

	return models.User{}, ErrUserNotFound
}

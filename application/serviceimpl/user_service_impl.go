package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"todo-backend/domain/models"
	"todo-backend/domain/ports"
	"todo-backend/domain/repositories"
	"todo-backend/domain/services"
	"todo-backend/pkg/logger"
)

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	cache    ports.TokenCache
	events   ports.EventPublisher
}

// NewUserService wires the identity resolver. cache and events may be
// nil; both are optional infrastructure.
func NewUserService(userRepo repositories.UserRepository, cache ports.TokenCache, events ports.EventPublisher) services.UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		cache:    cache,
		events:   events,
	}
}

type userEvent struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func (s *UserServiceImpl) Register(ctx context.Context, username, password string) (*models.User, error) {
	accessID := uuid.NewString()

	// The uuid4 space makes a collision practically impossible; if one
	// does happen something is deeply wrong, so fail loudly instead of
	// retrying. The unique index on access_id is the backstop.
	existing, err := s.userRepo.GetByAccessID(ctx, accessID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.ErrorContext(ctx, "Access token collision", "access_id", accessID)
		return nil, errors.New("access token collision")
	}

	user := &models.User{
		Username:  username,
		Password:  password,
		AccessID:  accessID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user", "username", username, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "username", username)
	s.publish(ctx, ports.SubjectUserRegistered, userEvent{ID: user.ID, Username: user.Username})

	return user, nil
}

func (s *UserServiceImpl) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByCredentials(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		logger.WarnContext(ctx, "Login failed", "username", username)
		return nil, services.ErrNotFound
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID, "username", username)
	return user, nil
}

func (s *UserServiceImpl) Resolve(ctx context.Context, accessToken string) (*models.User, error) {
	if accessToken == "" {
		return nil, services.ErrMissingCredential
	}

	if s.cache != nil {
		if user, ok := s.cache.GetUser(ctx, accessToken); ok {
			return user, nil
		}
	}

	user, err := s.userRepo.GetByAccessID(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Never reveal whether the token ever existed.
		return nil, services.ErrNotAuthorized
	}

	if s.cache != nil {
		s.cache.SetUser(ctx, accessToken, user)
	}

	return user, nil
}

func (s *UserServiceImpl) Deauthenticate(ctx context.Context, accessToken, username, password string) (bool, error) {
	// Read the store directly: a stale cache entry must never authorize
	// a deletion.
	user, err := s.userRepo.GetByAccessID(ctx, accessToken)
	if err != nil {
		return false, err
	}
	if user == nil || user.Username != username || user.Password != password {
		return false, nil
	}

	deleted, err := s.userRepo.Delete(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete user", "user_id", user.ID, "error", err)
		return false, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, accessToken)
	}

	if deleted {
		logger.InfoContext(ctx, "User deleted", "user_id", user.ID, "username", username)
		s.publish(ctx, ports.SubjectUserDeleted, userEvent{ID: user.ID, Username: user.Username})
	}

	return deleted, nil
}

func (s *UserServiceImpl) publish(ctx context.Context, subject string, payload any) {
	if s.events == nil {
		return
	}
	// Best-effort: the publisher logs its own failures.
	_ = s.events.Publish(ctx, subject, payload)
}

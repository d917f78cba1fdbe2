package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/userhub/userhub-api/internal/domain"
	"github.com/userhub/userhub-api/internal/platform/logger"
	"github.com/userhub/userhub-api/internal/store"
)

// CreateUserInput holds the already validated fields of a new user.
type CreateUserInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber *string
}

// PageLimits bounds the page sizes accepted by listing operations.
type PageLimits struct {
	DefaultSize int
	MaxSize     int
}

// UserService provides user-related operations.
type UserService interface {
	// Create registers a new user.
	// Returns store.ErrEmailExists if another user already owns the email.
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)

	// Update merges the supplied fields onto an existing user.
	// Returns store.ErrUserNotFound or store.ErrEmailExists.
	Update(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error)

	// GetByID retrieves a user, with address, by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by email address.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns one zero-based page of users in creation order.
	List(ctx context.Context, pageNumber, pageSize int) (domain.Page[domain.User], error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)

	// Delete removes a user together with their address and posts.
	Delete(ctx context.Context, id uuid.UUID) error
}

type userServiceImpl struct {
	userStore  store.UserStore
	transactor store.Transactor
	limits     PageLimits
	logger     *slog.Logger
	timeFunc   func() time.Time
}

var _ UserService = (*userServiceImpl)(nil)

// NewUserService creates a new UserService.
// It returns an error if any of the required dependencies are nil.
func NewUserService(
	userStore store.UserStore,
	transactor store.Transactor,
	limits PageLimits,
	logger *slog.Logger,
) (UserService, error) {
	if userStore == nil {
		return nil, domain.NewValidationError("userStore", "cannot be nil", domain.ErrValidation)
	}
	if transactor == nil {
		return nil, domain.NewValidationError("transactor", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userStore:  userStore,
		transactor: transactor,
		limits:     limits,
		logger:     logger.With(slog.String("component", "user_service")),
		timeFunc:   time.Now,
	}, nil
}

// Create implements UserService.Create.
// The email pre-check and the insert share one transaction; the unique
// constraint still decides a race, and maps to the same error.
func (s *userServiceImpl) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(input.FirstName, input.LastName, input.Email, input.PhoneNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	err = s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		exists, err := txStore.EmailExists(ctx, user.Email, uuid.Nil)
		if err != nil {
			return NewServiceError("user", "create", "failed to check email", err)
		}
		if exists {
			return store.ErrEmailExists
		}

		if err := txStore.Create(ctx, user); err != nil {
			if errors.Is(err, store.ErrEmailExists) {
				return err
			}
			return NewServiceError("user", "create", "failed to save user", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("user email already registered")
		} else {
			log.Error("failed to create user", slog.String("error", err.Error()))
		}
		return nil, err
	}

	log.Info("user created", slog.String("user_id", user.ID.String()))
	return user, nil
}

// Update implements UserService.Update.
func (s *userServiceImpl) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.UserPatch,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.String("user_id", id.String()))

	var updated *domain.User
	err := s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if user.ChangesEmail(patch) {
			owner, err := txStore.GetByEmail(ctx, *patch.Email)
			switch {
			case err == nil && owner.ID != user.ID:
				return store.ErrEmailExists
			case err != nil && !errors.Is(err, store.ErrUserNotFound):
				return NewServiceError("user", "update", "failed to check email", err)
			}
		}

		user.Apply(patch, s.timeFunc())
		if err := user.Validate(); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}

		if err := txStore.Update(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		if store.IsNotFoundError(err) || store.IsDuplicateError(err) || errors.Is(err, domain.ErrValidation) {
			log.Debug("user update rejected", slog.String("error", err.Error()))
			return nil, err
		}
		log.Error("failed to update user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	log.Debug("user updated")
	return updated, nil
}

// GetByID implements UserService.GetByID.
func (s *userServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, s.wrapReadError(ctx, "failed to retrieve user", err)
	}
	return user, nil
}

// GetByEmail implements UserService.GetByEmail.
func (s *userServiceImpl) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		return nil, s.wrapReadError(ctx, "failed to retrieve user by email", err)
	}
	return user, nil
}

// List implements UserService.List.
func (s *userServiceImpl) List(
	ctx context.Context,
	pageNumber, pageSize int,
) (domain.Page[domain.User], error) {
	page := domain.PageRequest{PageNumber: pageNumber, PageSize: pageSize}.
		Normalize(s.limits.DefaultSize, s.limits.MaxSize)

	users, err := s.userStore.List(ctx, page)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list users",
			slog.String("error", err.Error()),
			slog.Int("page_number", page.PageNumber),
			slog.Int("page_size", page.PageSize))
		return domain.Page[domain.User]{}, fmt.Errorf("failed to list users: %w", err)
	}

	return domain.Page[domain.User]{
		Items:      users,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}

// Count implements UserService.Count.
func (s *userServiceImpl) Count(ctx context.Context) (int64, error) {
	count, err := s.userStore.Count(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to count users",
			slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// Delete implements UserService.Delete.
func (s *userServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.userStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return err
		}
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return fmt.Errorf("failed to delete user: %w", err)
	}

	log.Info("user deleted", slog.String("user_id", id.String()))
	return nil
}

func (s *userServiceImpl) wrapReadError(ctx context.Context, msg string, err error) error {
	if store.IsNotFoundError(err) {
		return err
	}
	logger.FromContextOrDefault(ctx, s.logger).Error(msg, slog.String("error", err.Error()))
	return fmt.Errorf("%s: %w", msg, err)
}

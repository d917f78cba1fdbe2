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

// AddressService manages the single address each user may register.
type AddressService interface {
	// Create registers an address for the caller.
	// Returns store.ErrAddressExists if the caller already has one.
	Create(ctx context.Context, callerID uuid.UUID, fields domain.AddressFields) (*domain.Address, error)

	// GetByUserID returns the user's address or store.ErrAddressNotFound.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Address, error)

	// Update merges the supplied fields onto the user's address.
	Update(ctx context.Context, userID uuid.UUID, patch domain.AddressPatch) (*domain.Address, error)

	// Delete removes the user's address.
	Delete(ctx context.Context, userID uuid.UUID) error
}

type addressServiceImpl struct {
	addressStore store.AddressStore
	transactor   store.Transactor
	logger       *slog.Logger
	timeFunc     func() time.Time
}

var _ AddressService = (*addressServiceImpl)(nil)

// NewAddressService creates a new AddressService.
func NewAddressService(
	addressStore store.AddressStore,
	transactor store.Transactor,
	logger *slog.Logger,
) (AddressService, error) {
	if addressStore == nil {
		return nil, domain.NewValidationError("addressStore", "cannot be nil", domain.ErrValidation)
	}
	if transactor == nil {
		return nil, domain.NewValidationError("transactor", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &addressServiceImpl{
		addressStore: addressStore,
		transactor:   transactor,
		logger:       logger.With(slog.String("component", "address_service")),
		timeFunc:     time.Now,
	}, nil
}

// Create implements AddressService.Create.
func (s *addressServiceImpl) Create(
	ctx context.Context,
	callerID uuid.UUID,
	fields domain.AddressFields,
) (*domain.Address, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.String("user_id", callerID.String()))

	addr, err := domain.NewAddress(callerID, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	err = s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.addressStore.WithTx(tx)

		_, err := txStore.GetByUserID(ctx, callerID)
		switch {
		case err == nil:
			return store.ErrAddressExists
		case !errors.Is(err, store.ErrAddressNotFound):
			return NewServiceError("address", "create", "failed to check existing address", err)
		}

		return txStore.Create(ctx, addr)
	})
	if err != nil {
		if store.IsDuplicateError(err) || store.IsNotFoundError(err) {
			log.Debug("address create rejected", slog.String("error", err.Error()))
			return nil, err
		}
		log.Error("failed to create address", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	log.Info("address created", slog.String("address_id", addr.ID.String()))
	return addr, nil
}

// GetByUserID implements AddressService.GetByUserID.
func (s *addressServiceImpl) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Address, error) {
	addr, err := s.addressStore.GetByUserID(ctx, userID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to retrieve address",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to retrieve address: %w", err)
	}
	return addr, nil
}

// Update implements AddressService.Update.
func (s *addressServiceImpl) Update(
	ctx context.Context,
	userID uuid.UUID,
	patch domain.AddressPatch,
) (*domain.Address, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.String("user_id", userID.String()))

	var updated *domain.Address
	err := s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.addressStore.WithTx(tx)

		addr, err := txStore.GetByUserID(ctx, userID)
		if err != nil {
			return err
		}

		addr.Apply(patch, s.timeFunc())
		if err := addr.Validate(); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}

		if err := txStore.Update(ctx, addr); err != nil {
			return err
		}
		updated = addr
		return nil
	})
	if err != nil {
		if store.IsNotFoundError(err) || errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		log.Error("failed to update address", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update address: %w", err)
	}

	log.Debug("address updated")
	return updated, nil
}

// Delete implements AddressService.Delete.
func (s *addressServiceImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.addressStore.DeleteByUserID(ctx, userID); err != nil {
		if store.IsNotFoundError(err) {
			return err
		}
		log.Error("failed to delete address",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return fmt.Errorf("failed to delete address: %w", err)
	}

	log.Info("address deleted", slog.String("user_id", userID.String()))
	return nil
}

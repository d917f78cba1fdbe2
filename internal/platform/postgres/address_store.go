package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/userhub/userhub-api/internal/domain"
	"github.com/userhub/userhub-api/internal/platform/logger"
	"github.com/userhub/userhub-api/internal/redact"
	"github.com/userhub/userhub-api/internal/store"
)

// PostgresAddressStore implements the store.AddressStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAddressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAddressStore creates a new PostgreSQL implementation of the AddressStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresAddressStore(db store.DBTX, logger *slog.Logger) *PostgresAddressStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresAddressStore{
		db:     db,
		logger: logger.With(slog.String("component", "address_store")),
	}
}

// Ensure PostgresAddressStore implements store.AddressStore interface
var _ store.AddressStore = (*PostgresAddressStore)(nil)

// WithTx implements store.AddressStore.WithTx
func (s *PostgresAddressStore) WithTx(tx *sql.Tx) store.AddressStore {
	if tx == nil {
		return s
	}
	return &PostgresAddressStore{db: tx, logger: s.logger}
}

// Create implements store.AddressStore.Create
// Returns store.ErrAddressExists when the user already has an address and
// store.ErrUserNotFound when the owner does not exist.
func (s *PostgresAddressStore) Create(ctx context.Context, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := address.Validate(); err != nil {
		log.Warn("address validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", address.UserID.String()))
		return err
	}

	query := `
		INSERT INTO addresses (id, user_id, street, city, state, country, zip_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		address.ID,
		address.UserID,
		address.Street,
		address.City,
		address.State,
		address.Country,
		address.ZipCode,
		address.CreatedAt,
		address.UpdatedAt,
	)
	if err != nil {
		switch {
		case IsUniqueViolation(err):
			log.Debug("user already has an address",
				slog.String("user_id", address.UserID.String()))
			return MapUniqueViolation(err, store.ErrAddressExists)
		case IsForeignKeyViolation(err):
			log.Warn("foreign key violation during address creation",
				slog.String("constraint", constraintName(err)),
				slog.String("user_id", address.UserID.String()))
			return fmt.Errorf("%w: user with ID %s", store.ErrUserNotFound, address.UserID)
		}
		log.Error("failed to create address",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", address.UserID.String()))
		return MapError(err)
	}

	log.Info("address created successfully",
		slog.String("address_id", address.ID.String()),
		slog.String("user_id", address.UserID.String()))
	return nil
}

// GetByUserID implements store.AddressStore.GetByUserID
func (s *PostgresAddressStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Address, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, street, city, state, country, zip_code, created_at, updated_at
		FROM addresses
		WHERE user_id = $1
	`

	var a domain.Address
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&a.ID,
		&a.UserID,
		&a.Street,
		&a.City,
		&a.State,
		&a.Country,
		&a.ZipCode,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("address not found", slog.String("user_id", userID.String()))
			return nil, store.ErrAddressNotFound
		}
		log.Error("failed to get address",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	return &a, nil
}

// Update implements store.AddressStore.Update
func (s *PostgresAddressStore) Update(ctx context.Context, address *domain.Address) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := address.Validate(); err != nil {
		log.Warn("address validation failed during update",
			slog.String("error", err.Error()),
			slog.String("address_id", address.ID.String()))
		return err
	}

	query := `
		UPDATE addresses
		SET street = $1, city = $2, state = $3, country = $4, zip_code = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := s.db.ExecContext(ctx, query,
		address.Street,
		address.City,
		address.State,
		address.Country,
		address.ZipCode,
		address.UpdatedAt,
		address.ID,
	)
	if err != nil {
		log.Error("failed to update address",
			slog.String("error", redact.Error(err)),
			slog.String("address_id", address.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrAddressNotFound); err != nil {
		return err
	}

	log.Info("address updated successfully", slog.String("address_id", address.ID.String()))
	return nil
}

// DeleteByUserID implements store.AddressStore.DeleteByUserID
func (s *PostgresAddressStore) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM addresses WHERE user_id = $1`, userID)
	if err != nil {
		log.Error("failed to delete address",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", userID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrAddressNotFound); err != nil {
		return err
	}

	log.Info("address deleted successfully", slog.String("user_id", userID.String()))
	return nil
}

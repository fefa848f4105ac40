package keys

import (
	"context"
	"errors"

	"gitinsights-api/internal/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const uniqueViolation = "23505"

// Service implements API key CRUD, credential resolution and the usage gate
// on top of the generated query layer.
type Service struct {
	db db.Querier
}

// NewService creates a new key service backed by the given querier.
func NewService(database db.Querier) *Service {
	return &Service{db: database}
}

// CreateKeyParams are the caller-supplied fields for a new key. Value
// defaults to Key when empty, matching the alias fallback on lookup.
type CreateKeyParams struct {
	UserID      uuid.UUID
	Name        string
	Key         string
	Value       string
	Usage       int32
	Limit       *int32
	Environment string
}

// UpdateKeyParams holds the partial-update fields. Nil pointers leave the
// stored column untouched, including the secret and the environment tag.
type UpdateKeyParams struct {
	Name        *string
	Key         *string
	Value       *string
	Usage       *int32
	Limit       *int32
	Environment *string
}

// Create inserts a new key for the user. A name clash within the same user
// yields a DuplicateNameError; names are not unique across users.
func (s *Service) Create(ctx context.Context, params CreateKeyParams) (db.ApiKey, error) {
	value := params.Value
	if value == "" {
		value = params.Key
	}

	var limit pgtype.Int4
	if params.Limit != nil {
		limit = pgtype.Int4{Int32: *params.Limit, Valid: true}
	}

	apiKey, err := s.db.CreateAPIKey(ctx, db.CreateAPIKeyParams{
		UserID:      params.UserID,
		Name:        params.Name,
		Key:         params.Key,
		Value:       value,
		Usage:       params.Usage,
		UsageLimit:  limit,
		Environment: params.Environment,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return db.ApiKey{}, &DuplicateNameError{Name: params.Name}
		}
		return db.ApiKey{}, err
	}
	return apiKey, nil
}

// Get retrieves a key by ID, scoped to its owner.
func (s *Service) Get(ctx context.Context, id, userID uuid.UUID) (db.ApiKey, error) {
	apiKey, err := s.db.GetAPIKey(ctx, db.GetAPIKeyParams{ID: id, UserID: userID})
	if errors.Is(err, pgx.ErrNoRows) {
		return db.ApiKey{}, ErrNotFound
	}
	return apiKey, err
}

// List returns all keys for the user, newest created first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]db.ApiKey, error) {
	return s.db.ListAPIKeys(ctx, userID)
}

// Update applies the supplied fields to an existing key. Renaming into a name
// the user already holds yields a DuplicateNameError.
func (s *Service) Update(ctx context.Context, id, userID uuid.UUID, params UpdateKeyParams) (db.ApiKey, error) {
	arg := db.UpdateAPIKeyParams{ID: id, UserID: userID}
	if params.Name != nil {
		arg.Name = pgtype.Text{String: *params.Name, Valid: true}
	}
	if params.Key != nil {
		arg.Key = pgtype.Text{String: *params.Key, Valid: true}
	}
	if params.Value != nil {
		arg.Value = pgtype.Text{String: *params.Value, Valid: true}
	}
	if params.Usage != nil {
		arg.Usage = pgtype.Int4{Int32: *params.Usage, Valid: true}
	}
	if params.Limit != nil {
		arg.UsageLimit = pgtype.Int4{Int32: *params.Limit, Valid: true}
	}
	if params.Environment != nil {
		arg.Environment = pgtype.Text{String: *params.Environment, Valid: true}
	}

	apiKey, err := s.db.UpdateAPIKey(ctx, arg)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.ApiKey{}, ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			name := ""
			if params.Name != nil {
				name = *params.Name
			}
			return db.ApiKey{}, &DuplicateNameError{Name: name}
		}
		return db.ApiKey{}, err
	}
	return apiKey, nil
}

// Delete removes a key and reports whether a row was actually deleted.
func (s *Service) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	rows, err := s.db.DeleteAPIKey(ctx, db.DeleteAPIKeyParams{ID: id, UserID: userID})
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// Resolve finds the key record matching the caller-supplied credential. The
// secret column is tried first, then the alias column; the second lookup is
// skipped when the first fails with anything other than "no rows". When owner
// is valid both lookups are additionally scoped to that user.
func (s *Service) Resolve(ctx context.Context, credential string, owner uuid.NullUUID) (db.ApiKey, error) {
	var apiKey db.ApiKey
	var err error

	if owner.Valid {
		apiKey, err = s.db.GetAPIKeyByKeyAndUser(ctx, db.GetAPIKeyByKeyAndUserParams{
			Key:    credential,
			UserID: owner.UUID,
		})
	} else {
		apiKey, err = s.db.GetAPIKeyByKey(ctx, credential)
	}
	if err == nil {
		return apiKey, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return db.ApiKey{}, err
	}

	if owner.Valid {
		apiKey, err = s.db.GetAPIKeyByValueAndUser(ctx, db.GetAPIKeyByValueAndUserParams{
			Value:  credential,
			UserID: owner.UUID,
		})
	} else {
		apiKey, err = s.db.GetAPIKeyByValue(ctx, credential)
	}
	if err == nil {
		return apiKey, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return db.ApiKey{}, ErrNotFound
	}
	return db.ApiKey{}, err
}

// CheckAndConsume is the usage gate: it denies when the key's limit is
// exhausted, otherwise it increments the counter and stamps last_used. The
// increment is a single conditional UPDATE, so concurrent callers can never
// push usage past the limit and no increments are lost.
func (s *Service) CheckAndConsume(ctx context.Context, key db.ApiKey) (db.ApiKey, error) {
	if key.UsageLimit.Valid && key.Usage >= key.UsageLimit.Int32 {
		return db.ApiKey{}, &RateLimitedError{Usage: key.Usage, Limit: key.UsageLimit.Int32}
	}

	updated, err := s.db.ConsumeAPIKeyUsage(ctx, key.ID)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		// A write failure must not read as "denied".
		return db.ApiKey{}, err
	}

	// The guarded UPDATE matched nothing: a concurrent caller took the last
	// slot between our read and the write. Re-read so the denial carries the
	// current numbers.
	current, err := s.db.GetAPIKeyByID(ctx, key.ID)
	if err != nil {
		return db.ApiKey{}, err
	}
	return db.ApiKey{}, &RateLimitedError{Usage: current.Usage, Limit: current.UsageLimit.Int32}
}

package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/pennywiseapp/pennywise_backend/internal/apperrors"
	"github.com/pennywiseapp/pennywise_backend/internal/core/domain"
	portsrepo "github.com/pennywiseapp/pennywise_backend/internal/core/ports/repositories"
	"github.com/pennywiseapp/pennywise_backend/internal/models"
	"github.com/pennywiseapp/pennywise_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const netWorthColumns = "entry_id, user_id, type, name, amount, created_at, created_by, last_updated_at, last_updated_by"

type PgxNetWorthRepository struct {
	pool *pgxpool.Pool
}

// newPgxNetWorthRepository creates a new repository for net worth entries.
func newPgxNetWorthRepository(pool *pgxpool.Pool) portsrepo.NetWorthRepositoryFacade {
	return &PgxNetWorthRepository{pool: pool}
}

var _ portsrepo.NetWorthRepositoryFacade = (*PgxNetWorthRepository)(nil)

func scanNetWorthEntry(row pgx.Row) (models.NetWorthEntry, error) {
	var m models.NetWorthEntry
	err := row.Scan(
		&m.EntryID,
		&m.UserID,
		&m.Type,
		&m.Name,
		&m.Amount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveNetWorthEntry inserts a new entry.
func (r *PgxNetWorthRepository) SaveNetWorthEntry(ctx context.Context, entry domain.NetWorthEntry) error {
	m := mapping.ToModelNetWorthEntry(entry)

	query := `
		INSERT INTO networth_entries (` + netWorthColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.EntryID,
		m.UserID,
		m.Type,
		m.Name,
		m.Amount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: net worth entry with ID %s already exists", apperrors.ErrDuplicate, m.EntryID)
		}
		return fmt.Errorf("failed to save net worth entry %s: %w", m.EntryID, err)
	}
	return nil
}

// FindNetWorthEntryByID retrieves an entry by its ID.
func (r *PgxNetWorthRepository) FindNetWorthEntryByID(ctx context.Context, entryID string) (*domain.NetWorthEntry, error) {
	query := `SELECT ` + netWorthColumns + ` FROM networth_entries WHERE entry_id = $1;`

	m, err := scanNetWorthEntry(r.pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find net worth entry by ID %s: %w", entryID, err)
	}

	d := mapping.ToDomainNetWorthEntry(m)
	return &d, nil
}

// ListNetWorthEntries retrieves all asset and debt entries for a user, oldest first.
func (r *PgxNetWorthRepository) ListNetWorthEntries(ctx context.Context, userID string) ([]domain.NetWorthEntry, error) {
	query := `SELECT ` + netWorthColumns + ` FROM networth_entries WHERE user_id = $1 ORDER BY created_at ASC;`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list net worth entries for user %s: %w", userID, err)
	}
	defer rows.Close()

	ms := make([]models.NetWorthEntry, 0)
	for rows.Next() {
		m, err := scanNetWorthEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan net worth entry row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating net worth entry rows: %w", err)
	}
	return mapping.ToDomainNetWorthEntrySlice(ms), nil
}

// UpdateNetWorthEntry updates an existing entry's details.
func (r *PgxNetWorthRepository) UpdateNetWorthEntry(ctx context.Context, entry domain.NetWorthEntry) error {
	m := mapping.ToModelNetWorthEntry(entry)

	query := `
		UPDATE networth_entries
		SET type = $2, name = $3, amount = $4, last_updated_at = $5, last_updated_by = $6
		WHERE entry_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.EntryID,
		m.Type,
		m.Name,
		m.Amount,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update net worth entry %s: %w", m.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteNetWorthEntry removes an entry permanently.
func (r *PgxNetWorthRepository) DeleteNetWorthEntry(ctx context.Context, entryID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM networth_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete net worth entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

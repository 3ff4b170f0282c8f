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

const billColumns = "bill_id, user_id, name, amount, due_date, created_at, created_by, last_updated_at, last_updated_by"

type PgxBillRepository struct {
	pool *pgxpool.Pool
}

// newPgxBillRepository creates a new repository for bill data.
func newPgxBillRepository(pool *pgxpool.Pool) portsrepo.BillRepositoryFacade {
	return &PgxBillRepository{pool: pool}
}

var _ portsrepo.BillRepositoryFacade = (*PgxBillRepository)(nil)

func scanBill(row pgx.Row) (models.Bill, error) {
	var m models.Bill
	err := row.Scan(
		&m.BillID,
		&m.UserID,
		&m.Name,
		&m.Amount,
		&m.DueDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveBill inserts a new bill.
func (r *PgxBillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	m := mapping.ToModelBill(bill)

	query := `
		INSERT INTO bills (` + billColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.BillID,
		m.UserID,
		m.Name,
		m.Amount,
		m.DueDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: bill with ID %s already exists", apperrors.ErrDuplicate, m.BillID)
		}
		return fmt.Errorf("failed to save bill %s: %w", m.BillID, err)
	}
	return nil
}

// FindBillByID retrieves a bill by its ID.
func (r *PgxBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE bill_id = $1;`

	m, err := scanBill(r.pool.QueryRow(ctx, query, billID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bill by ID %s: %w", billID, err)
	}

	d := mapping.ToDomainBill(m)
	return &d, nil
}

// ListBills retrieves all bills for a user ordered by due date ascending.
func (r *PgxBillRepository) ListBills(ctx context.Context, userID string) ([]domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE user_id = $1 ORDER BY due_date ASC;`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills for user %s: %w", userID, err)
	}
	defer rows.Close()

	ms := make([]models.Bill, 0)
	for rows.Next() {
		m, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bill rows: %w", err)
	}
	return mapping.ToDomainBillSlice(ms), nil
}

// UpdateBill updates an existing bill's details.
func (r *PgxBillRepository) UpdateBill(ctx context.Context, bill domain.Bill) error {
	m := mapping.ToModelBill(bill)

	query := `
		UPDATE bills
		SET name = $2, amount = $3, due_date = $4, last_updated_at = $5, last_updated_by = $6
		WHERE bill_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.BillID,
		m.Name,
		m.Amount,
		m.DueDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update bill %s: %w", m.BillID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBill removes a bill permanently.
func (r *PgxBillRepository) DeleteBill(ctx context.Context, billID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bills WHERE bill_id = $1;`, billID)
	if err != nil {
		return fmt.Errorf("failed to delete bill %s: %w", billID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TransactionRepository implements domain.TransactionRepository using PostgreSQL
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = `id, user_id, kind, amount, category, occurred_at, note, created_at, updated_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		t      domain.Transaction
		amount pgtype.Numeric
		note   pgtype.Text
	)
	err := row.Scan(&t.ID, &t.UserID, &t.Kind, &amount, &t.Category,
		&t.OccurredAt, &note, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Amount = pgNumericToDecimal(amount)
	t.Note = pgTextToStringPtr(note)
	return &t, nil
}

// Create creates a new transaction
func (r *TransactionRepository) Create(transaction *domain.Transaction) (*domain.Transaction, error) {
	row := r.pool.QueryRow(context.Background(),
		`INSERT INTO transactions (user_id, kind, amount, category, occurred_at, note)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+transactionColumns,
		transaction.UserID, string(transaction.Kind), decimalToPgNumeric(transaction.Amount),
		transaction.Category, transaction.OccurredAt, stringPtrToPgText(transaction.Note))
	return scanTransaction(row)
}

// GetByID retrieves a transaction by its ID within a user's data
func (r *TransactionRepository) GetByID(userID uuid.UUID, id int32) (*domain.Transaction, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+transactionColumns+` FROM transactions WHERE user_id = $1 AND id = $2`,
		userID, id)
	transaction, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return transaction, nil
}

// GetAllByUser retrieves a user's transactions with optional filters,
// newest first.
func (r *TransactionRepository) GetAllByUser(userID uuid.UUID, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`
	args := []any{userID}

	if filters != nil {
		if filters.StartDate != nil {
			args = append(args, *filters.StartDate)
			query += ` AND occurred_at >= $` + strconv.Itoa(len(args))
		}
		if filters.EndDate != nil {
			args = append(args, *filters.EndDate)
			query += ` AND occurred_at <= $` + strconv.Itoa(len(args))
		}
		if filters.Kind != nil {
			args = append(args, string(*filters.Kind))
			query += ` AND kind = $` + strconv.Itoa(len(args))
		}
		if filters.Category != nil {
			args = append(args, *filters.Category)
			query += ` AND category = $` + strconv.Itoa(len(args))
		}
	}
	query += ` ORDER BY occurred_at DESC, id DESC`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

// Update updates a transaction's details
func (r *TransactionRepository) Update(transaction *domain.Transaction) (*domain.Transaction, error) {
	row := r.pool.QueryRow(context.Background(),
		`UPDATE transactions
		 SET kind = $3, amount = $4, category = $5, occurred_at = $6, note = $7, updated_at = now()
		 WHERE user_id = $1 AND id = $2
		 RETURNING `+transactionColumns,
		transaction.UserID, transaction.ID, string(transaction.Kind),
		decimalToPgNumeric(transaction.Amount), transaction.Category,
		transaction.OccurredAt, stringPtrToPgText(transaction.Note))
	updated, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a transaction
func (r *TransactionRepository) Delete(userID uuid.UUID, id int32) error {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM transactions WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

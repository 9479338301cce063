package postgres

import (
	"context"
	"errors"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BudgetRepository implements domain.BudgetRepository using PostgreSQL
type BudgetRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

const budgetColumns = `id, user_id, category, monthly_limit, month, year, created_at, updated_at`

func scanBudget(row pgx.Row) (*domain.Budget, error) {
	var (
		b     domain.Budget
		limit pgtype.Numeric
		month pgtype.Int4
		year  pgtype.Int4
	)
	err := row.Scan(&b.ID, &b.UserID, &b.Category, &limit, &month, &year,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	b.MonthlyLimit = pgNumericToDecimal(limit)
	b.Month = pgInt4ToIntPtr(month)
	b.Year = pgInt4ToIntPtr(year)
	return &b, nil
}

// Create creates a new budget
func (r *BudgetRepository) Create(budget *domain.Budget) (*domain.Budget, error) {
	row := r.pool.QueryRow(context.Background(),
		`INSERT INTO budgets (user_id, category, monthly_limit, month, year)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+budgetColumns,
		budget.UserID, budget.Category, decimalToPgNumeric(budget.MonthlyLimit),
		intPtrToPgInt4(budget.Month), intPtrToPgInt4(budget.Year))
	return scanBudget(row)
}

// GetByID retrieves a budget by its ID within a user's data
func (r *BudgetRepository) GetByID(userID uuid.UUID, id int32) (*domain.Budget, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+budgetColumns+` FROM budgets WHERE user_id = $1 AND id = $2`,
		userID, id)
	budget, err := scanBudget(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return budget, nil
}

// GetAllByUser retrieves all budgets for a user
func (r *BudgetRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Budget, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+budgetColumns+` FROM budgets WHERE user_id = $1 ORDER BY category, id`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

// Update updates a budget's details
func (r *BudgetRepository) Update(budget *domain.Budget) (*domain.Budget, error) {
	row := r.pool.QueryRow(context.Background(),
		`UPDATE budgets
		 SET category = $3, monthly_limit = $4, month = $5, year = $6, updated_at = now()
		 WHERE user_id = $1 AND id = $2
		 RETURNING `+budgetColumns,
		budget.UserID, budget.ID, budget.Category,
		decimalToPgNumeric(budget.MonthlyLimit),
		intPtrToPgInt4(budget.Month), intPtrToPgInt4(budget.Year))
	updated, err := scanBudget(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a budget
func (r *BudgetRepository) Delete(userID uuid.UUID, id int32) error {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM budgets WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBudgetNotFound
	}
	return nil
}

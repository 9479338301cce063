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

// RecurringRuleRepository implements domain.RecurringRuleRepository using PostgreSQL
type RecurringRuleRepository struct {
	pool *pgxpool.Pool
}

// NewRecurringRuleRepository creates a new RecurringRuleRepository
func NewRecurringRuleRepository(pool *pgxpool.Pool) *RecurringRuleRepository {
	return &RecurringRuleRepository{pool: pool}
}

const recurringColumns = `id, user_id, title, kind, category, amount, frequency, next_occurrence, active, note, created_at, updated_at`

func scanRecurringRule(row pgx.Row) (*domain.RecurringRule, error) {
	var (
		rule   domain.RecurringRule
		amount pgtype.Numeric
		note   pgtype.Text
	)
	err := row.Scan(&rule.ID, &rule.UserID, &rule.Title, &rule.Kind, &rule.Category,
		&amount, &rule.Frequency, &rule.NextOccurrence, &rule.Active, &note,
		&rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rule.Amount = pgNumericToDecimal(amount)
	rule.Note = pgTextToStringPtr(note)
	return &rule, nil
}

// Create creates a new recurring rule
func (r *RecurringRuleRepository) Create(rule *domain.RecurringRule) (*domain.RecurringRule, error) {
	row := r.pool.QueryRow(context.Background(),
		`INSERT INTO recurring_rules (user_id, title, kind, category, amount, frequency, next_occurrence, active, note)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+recurringColumns,
		rule.UserID, rule.Title, string(rule.Kind), rule.Category,
		decimalToPgNumeric(rule.Amount), string(rule.Frequency),
		rule.NextOccurrence, rule.Active, stringPtrToPgText(rule.Note))
	return scanRecurringRule(row)
}

// GetByID retrieves a recurring rule by its ID within a user's data
func (r *RecurringRuleRepository) GetByID(userID uuid.UUID, id int32) (*domain.RecurringRule, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+recurringColumns+` FROM recurring_rules WHERE user_id = $1 AND id = $2`,
		userID, id)
	rule, err := scanRecurringRule(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecurringRuleNotFound
		}
		return nil, err
	}
	return rule, nil
}

// GetAllByUser retrieves a user's recurring rules, soonest due first.
// When activeOnly is set, only rules matching that active state return.
func (r *RecurringRuleRepository) GetAllByUser(userID uuid.UUID, activeOnly *bool) ([]*domain.RecurringRule, error) {
	query := `SELECT ` + recurringColumns + ` FROM recurring_rules WHERE user_id = $1`
	args := []any{userID}
	if activeOnly != nil {
		args = append(args, *activeOnly)
		query += ` AND active = $2`
	}
	query += ` ORDER BY next_occurrence, id`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.RecurringRule
	for rows.Next() {
		rule, err := scanRecurringRule(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rule)
	}
	return result, rows.Err()
}

// Update updates a recurring rule's details
func (r *RecurringRuleRepository) Update(rule *domain.RecurringRule) (*domain.RecurringRule, error) {
	row := r.pool.QueryRow(context.Background(),
		`UPDATE recurring_rules
		 SET title = $3, kind = $4, category = $5, amount = $6, frequency = $7,
		     next_occurrence = $8, active = $9, note = $10, updated_at = now()
		 WHERE user_id = $1 AND id = $2
		 RETURNING `+recurringColumns,
		rule.UserID, rule.ID, rule.Title, string(rule.Kind), rule.Category,
		decimalToPgNumeric(rule.Amount), string(rule.Frequency),
		rule.NextOccurrence, rule.Active, stringPtrToPgText(rule.Note))
	updated, err := scanRecurringRule(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecurringRuleNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a recurring rule
func (r *RecurringRuleRepository) Delete(userID uuid.UUID, id int32) error {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM recurring_rules WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecurringRuleNotFound
	}
	return nil
}

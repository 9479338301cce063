package postgres

import (
	"context"
	"errors"

	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// GoalRepository implements domain.GoalRepository using PostgreSQL
type GoalRepository struct {
	pool *pgxpool.Pool
}

// NewGoalRepository creates a new GoalRepository
func NewGoalRepository(pool *pgxpool.Pool) *GoalRepository {
	return &GoalRepository{pool: pool}
}

const goalColumns = `id, user_id, name, target_amount, saved_amount, target_date, created_at, updated_at`

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var (
		g          domain.Goal
		target     pgtype.Numeric
		saved      pgtype.Numeric
		targetDate pgtype.Date
	)
	err := row.Scan(&g.ID, &g.UserID, &g.Name, &target, &saved, &targetDate,
		&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	g.TargetAmount = pgNumericToDecimal(target)
	g.SavedAmount = pgNumericToDecimal(saved)
	if targetDate.Valid {
		g.TargetDate = &targetDate.Time
	}
	return &g, nil
}

// Create creates a new goal
func (r *GoalRepository) Create(goal *domain.Goal) (*domain.Goal, error) {
	var targetDate pgtype.Date
	if goal.TargetDate != nil {
		targetDate = pgtype.Date{Time: *goal.TargetDate, Valid: true}
	}
	row := r.pool.QueryRow(context.Background(),
		`INSERT INTO goals (user_id, name, target_amount, saved_amount, target_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+goalColumns,
		goal.UserID, goal.Name, decimalToPgNumeric(goal.TargetAmount),
		decimalToPgNumeric(goal.SavedAmount), targetDate)
	return scanGoal(row)
}

// GetByID retrieves a goal by its ID within a user's data
func (r *GoalRepository) GetByID(userID uuid.UUID, id int32) (*domain.Goal, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+goalColumns+` FROM goals WHERE user_id = $1 AND id = $2`,
		userID, id)
	goal, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

// GetAllByUser retrieves all goals for a user
func (r *GoalRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Goal, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+goalColumns+` FROM goals WHERE user_id = $1 ORDER BY created_at, id`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	return result, rows.Err()
}

// Update updates a goal's details
func (r *GoalRepository) Update(goal *domain.Goal) (*domain.Goal, error) {
	var targetDate pgtype.Date
	if goal.TargetDate != nil {
		targetDate = pgtype.Date{Time: *goal.TargetDate, Valid: true}
	}
	row := r.pool.QueryRow(context.Background(),
		`UPDATE goals
		 SET name = $3, target_amount = $4, saved_amount = $5, target_date = $6, updated_at = now()
		 WHERE user_id = $1 AND id = $2
		 RETURNING `+goalColumns,
		goal.UserID, goal.ID, goal.Name, decimalToPgNumeric(goal.TargetAmount),
		decimalToPgNumeric(goal.SavedAmount), targetDate)
	updated, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, err
	}
	return updated, nil
}

// UpdateSavedAmount sets only the saved amount of a goal
func (r *GoalRepository) UpdateSavedAmount(userID uuid.UUID, id int32, saved decimal.Decimal) (*domain.Goal, error) {
	row := r.pool.QueryRow(context.Background(),
		`UPDATE goals
		 SET saved_amount = $3, updated_at = now()
		 WHERE user_id = $1 AND id = $2
		 RETURNING `+goalColumns,
		userID, id, decimalToPgNumeric(saved))
	updated, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a goal
func (r *GoalRepository) Delete(userID uuid.UUID, id int32) error {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM goals WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGoalNotFound
	}
	return nil
}

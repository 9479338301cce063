package domain

import "errors"

// Domain errors
var (
	ErrNotFound              = errors.New("resource not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrInternalError         = errors.New("internal error")
	ErrUserNotFound          = errors.New("user not found")
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrBudgetNotFound        = errors.New("budget not found")
	ErrGoalNotFound          = errors.New("goal not found")
	ErrRecurringRuleNotFound = errors.New("recurring rule not found")
	ErrInvalidAmount         = errors.New("amount must be non-negative")
	ErrInvalidKind           = errors.New("kind must be one of: income, expense")
	ErrInvalidFrequency      = errors.New("frequency must be one of: daily, weekly, monthly, yearly")
	ErrInvalidMonth          = errors.New("month must be between 1 and 12")
	ErrNameRequired          = errors.New("name is required")
	ErrNameTooLong           = errors.New("name exceeds maximum length")
	ErrCategoryRequired      = errors.New("category is required")
	ErrCategoryTooLong       = errors.New("category exceeds maximum length")
	ErrNoteTooLong           = errors.New("note exceeds maximum length")
)

// Validation constants
const (
	MaxNameLength     = 255
	MaxCategoryLength = 100
	MaxNoteLength     = 1000
)

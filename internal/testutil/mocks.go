package testutil

import (
	"github.com/centavo-app/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	Users    map[string]*domain.User
	ByID     map[uuid.UUID]*domain.User
	CreateFn func(auth0ID, email string, name, pictureURL *string) (*domain.User, error)
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make(map[string]*domain.User),
		ByID:  make(map[uuid.UUID]*domain.User),
	}
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(id uuid.UUID) (*domain.User, error) {
	if user, ok := m.ByID[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetByAuth0ID retrieves a user by Auth0 ID
func (m *MockUserRepository) GetByAuth0ID(auth0ID string) (*domain.User, error) {
	if user, ok := m.Users[auth0ID]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// Create creates a new user
func (m *MockUserRepository) Create(user *domain.User) (*domain.User, error) {
	user.ID = uuid.New()
	m.Users[user.Auth0ID] = user
	m.ByID[user.ID] = user
	return user, nil
}

// Update updates an existing user
func (m *MockUserRepository) Update(user *domain.User) (*domain.User, error) {
	if _, ok := m.ByID[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	m.Users[user.Auth0ID] = user
	m.ByID[user.ID] = user
	return user, nil
}

// CreateOrGetByAuth0ID creates or retrieves a user by Auth0 ID
func (m *MockUserRepository) CreateOrGetByAuth0ID(auth0ID, email string, name, pictureURL *string) (*domain.User, error) {
	if m.CreateFn != nil {
		return m.CreateFn(auth0ID, email, name, pictureURL)
	}
	if user, ok := m.Users[auth0ID]; ok {
		return user, nil
	}
	user := &domain.User{
		ID:         uuid.New(),
		Auth0ID:    auth0ID,
		Email:      email,
		Name:       name,
		PictureURL: pictureURL,
		Currency:   domain.DefaultCurrency,
		Theme:      domain.DefaultTheme,
	}
	m.Users[auth0ID] = user
	m.ByID[user.ID] = user
	return user, nil
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.Users[user.Auth0ID] = user
	m.ByID[user.ID] = user
}

// MockTransactionRepository is a mock implementation of domain.TransactionRepository
type MockTransactionRepository struct {
	Transactions map[int32]*domain.Transaction
	NextID       int32
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		Transactions: make(map[int32]*domain.Transaction),
		NextID:       1,
	}
}

// Create creates a new transaction
func (m *MockTransactionRepository) Create(transaction *domain.Transaction) (*domain.Transaction, error) {
	transaction.ID = m.NextID
	m.NextID++
	m.Transactions[transaction.ID] = transaction
	return transaction, nil
}

// GetByID retrieves a transaction by ID within a user's data
func (m *MockTransactionRepository) GetByID(userID uuid.UUID, id int32) (*domain.Transaction, error) {
	if t, ok := m.Transactions[id]; ok && t.UserID == userID {
		return t, nil
	}
	return nil, domain.ErrTransactionNotFound
}

// GetAllByUser retrieves a user's transactions with optional filters
func (m *MockTransactionRepository) GetAllByUser(userID uuid.UUID, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	var result []*domain.Transaction
	for id := int32(1); id < m.NextID; id++ {
		t, ok := m.Transactions[id]
		if !ok || t.UserID != userID {
			continue
		}
		if filters != nil {
			if filters.StartDate != nil && t.OccurredAt.Before(*filters.StartDate) {
				continue
			}
			if filters.EndDate != nil && t.OccurredAt.After(*filters.EndDate) {
				continue
			}
			if filters.Kind != nil && t.Kind != *filters.Kind {
				continue
			}
			if filters.Category != nil && t.Category != *filters.Category {
				continue
			}
		}
		result = append(result, t)
	}
	return result, nil
}

// Update updates a transaction
func (m *MockTransactionRepository) Update(transaction *domain.Transaction) (*domain.Transaction, error) {
	existing, ok := m.Transactions[transaction.ID]
	if !ok || existing.UserID != transaction.UserID {
		return nil, domain.ErrTransactionNotFound
	}
	m.Transactions[transaction.ID] = transaction
	return transaction, nil
}

// Delete removes a transaction
func (m *MockTransactionRepository) Delete(userID uuid.UUID, id int32) error {
	if t, ok := m.Transactions[id]; ok && t.UserID == userID {
		delete(m.Transactions, id)
		return nil
	}
	return domain.ErrTransactionNotFound
}

// AddTransaction adds a transaction to the mock repository (helper for tests)
func (m *MockTransactionRepository) AddTransaction(transaction *domain.Transaction) {
	if transaction.ID == 0 {
		transaction.ID = m.NextID
		m.NextID++
	} else if transaction.ID >= m.NextID {
		m.NextID = transaction.ID + 1
	}
	m.Transactions[transaction.ID] = transaction
}

// MockBudgetRepository is a mock implementation of domain.BudgetRepository
type MockBudgetRepository struct {
	Budgets map[int32]*domain.Budget
	NextID  int32
}

// NewMockBudgetRepository creates a new MockBudgetRepository
func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{
		Budgets: make(map[int32]*domain.Budget),
		NextID:  1,
	}
}

// Create creates a new budget
func (m *MockBudgetRepository) Create(budget *domain.Budget) (*domain.Budget, error) {
	budget.ID = m.NextID
	m.NextID++
	m.Budgets[budget.ID] = budget
	return budget, nil
}

// GetByID retrieves a budget by ID within a user's data
func (m *MockBudgetRepository) GetByID(userID uuid.UUID, id int32) (*domain.Budget, error) {
	if b, ok := m.Budgets[id]; ok && b.UserID == userID {
		return b, nil
	}
	return nil, domain.ErrBudgetNotFound
}

// GetAllByUser retrieves all budgets for a user
func (m *MockBudgetRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Budget, error) {
	var result []*domain.Budget
	for id := int32(1); id < m.NextID; id++ {
		if b, ok := m.Budgets[id]; ok && b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

// Update updates a budget
func (m *MockBudgetRepository) Update(budget *domain.Budget) (*domain.Budget, error) {
	existing, ok := m.Budgets[budget.ID]
	if !ok || existing.UserID != budget.UserID {
		return nil, domain.ErrBudgetNotFound
	}
	m.Budgets[budget.ID] = budget
	return budget, nil
}

// Delete removes a budget
func (m *MockBudgetRepository) Delete(userID uuid.UUID, id int32) error {
	if b, ok := m.Budgets[id]; ok && b.UserID == userID {
		delete(m.Budgets, id)
		return nil
	}
	return domain.ErrBudgetNotFound
}

// AddBudget adds a budget to the mock repository (helper for tests)
func (m *MockBudgetRepository) AddBudget(budget *domain.Budget) {
	if budget.ID == 0 {
		budget.ID = m.NextID
		m.NextID++
	} else if budget.ID >= m.NextID {
		m.NextID = budget.ID + 1
	}
	m.Budgets[budget.ID] = budget
}

// MockGoalRepository is a mock implementation of domain.GoalRepository
type MockGoalRepository struct {
	Goals  map[int32]*domain.Goal
	NextID int32
}

// NewMockGoalRepository creates a new MockGoalRepository
func NewMockGoalRepository() *MockGoalRepository {
	return &MockGoalRepository{
		Goals:  make(map[int32]*domain.Goal),
		NextID: 1,
	}
}

// Create creates a new goal
func (m *MockGoalRepository) Create(goal *domain.Goal) (*domain.Goal, error) {
	goal.ID = m.NextID
	m.NextID++
	m.Goals[goal.ID] = goal
	return goal, nil
}

// GetByID retrieves a goal by ID within a user's data
func (m *MockGoalRepository) GetByID(userID uuid.UUID, id int32) (*domain.Goal, error) {
	if g, ok := m.Goals[id]; ok && g.UserID == userID {
		return g, nil
	}
	return nil, domain.ErrGoalNotFound
}

// GetAllByUser retrieves all goals for a user
func (m *MockGoalRepository) GetAllByUser(userID uuid.UUID) ([]*domain.Goal, error) {
	var result []*domain.Goal
	for id := int32(1); id < m.NextID; id++ {
		if g, ok := m.Goals[id]; ok && g.UserID == userID {
			result = append(result, g)
		}
	}
	return result, nil
}

// Update updates a goal
func (m *MockGoalRepository) Update(goal *domain.Goal) (*domain.Goal, error) {
	existing, ok := m.Goals[goal.ID]
	if !ok || existing.UserID != goal.UserID {
		return nil, domain.ErrGoalNotFound
	}
	m.Goals[goal.ID] = goal
	return goal, nil
}

// UpdateSavedAmount sets only the saved amount of a goal
func (m *MockGoalRepository) UpdateSavedAmount(userID uuid.UUID, id int32, saved decimal.Decimal) (*domain.Goal, error) {
	g, ok := m.Goals[id]
	if !ok || g.UserID != userID {
		return nil, domain.ErrGoalNotFound
	}
	g.SavedAmount = saved
	return g, nil
}

// Delete removes a goal
func (m *MockGoalRepository) Delete(userID uuid.UUID, id int32) error {
	if g, ok := m.Goals[id]; ok && g.UserID == userID {
		delete(m.Goals, id)
		return nil
	}
	return domain.ErrGoalNotFound
}

// AddGoal adds a goal to the mock repository (helper for tests)
func (m *MockGoalRepository) AddGoal(goal *domain.Goal) {
	if goal.ID == 0 {
		goal.ID = m.NextID
		m.NextID++
	} else if goal.ID >= m.NextID {
		m.NextID = goal.ID + 1
	}
	m.Goals[goal.ID] = goal
}

// MockRecurringRuleRepository is a mock implementation of domain.RecurringRuleRepository
type MockRecurringRuleRepository struct {
	Rules  map[int32]*domain.RecurringRule
	NextID int32
}

// NewMockRecurringRuleRepository creates a new MockRecurringRuleRepository
func NewMockRecurringRuleRepository() *MockRecurringRuleRepository {
	return &MockRecurringRuleRepository{
		Rules:  make(map[int32]*domain.RecurringRule),
		NextID: 1,
	}
}

// Create creates a new recurring rule
func (m *MockRecurringRuleRepository) Create(rule *domain.RecurringRule) (*domain.RecurringRule, error) {
	rule.ID = m.NextID
	m.NextID++
	m.Rules[rule.ID] = rule
	return rule, nil
}

// GetByID retrieves a recurring rule by ID within a user's data
func (m *MockRecurringRuleRepository) GetByID(userID uuid.UUID, id int32) (*domain.RecurringRule, error) {
	if r, ok := m.Rules[id]; ok && r.UserID == userID {
		return r, nil
	}
	return nil, domain.ErrRecurringRuleNotFound
}

// GetAllByUser retrieves a user's recurring rules
func (m *MockRecurringRuleRepository) GetAllByUser(userID uuid.UUID, activeOnly *bool) ([]*domain.RecurringRule, error) {
	var result []*domain.RecurringRule
	for id := int32(1); id < m.NextID; id++ {
		r, ok := m.Rules[id]
		if !ok || r.UserID != userID {
			continue
		}
		if activeOnly != nil && r.Active != *activeOnly {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

// Update updates a recurring rule
func (m *MockRecurringRuleRepository) Update(rule *domain.RecurringRule) (*domain.RecurringRule, error) {
	existing, ok := m.Rules[rule.ID]
	if !ok || existing.UserID != rule.UserID {
		return nil, domain.ErrRecurringRuleNotFound
	}
	m.Rules[rule.ID] = rule
	return rule, nil
}

// Delete removes a recurring rule
func (m *MockRecurringRuleRepository) Delete(userID uuid.UUID, id int32) error {
	if r, ok := m.Rules[id]; ok && r.UserID == userID {
		delete(m.Rules, id)
		return nil
	}
	return domain.ErrRecurringRuleNotFound
}

// AddRule adds a recurring rule to the mock repository (helper for tests)
func (m *MockRecurringRuleRepository) AddRule(rule *domain.RecurringRule) {
	if rule.ID == 0 {
		rule.ID = m.NextID
		m.NextID++
	} else if rule.ID >= m.NextID {
		m.NextID = rule.ID + 1
	}
	m.Rules[rule.ID] = rule
}

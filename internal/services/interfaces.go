package services

import (
	"time"

	"paisabook/internal/calculator"
	"paisabook/internal/models"
	"paisabook/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(accountName, accountNumber, ifsc, password string) (*models.User, error)
	GetUserByAccountNumber(accountNumber string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// GroupDetails bundles a group with the resolved member profiles for display.
type GroupDetails struct {
	Group   models.Group           `json:"group"`
	Members []models.MemberProfile `json:"members"`
}

// GroupServicer defines the contract for the group registry and the
// contribution ledger.
type GroupServicer interface {
	CreateGroup(creatorID, name string, memberIDs []string, purpose string) (*models.Group, error)
	GetUserGroups(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Group], error)
	GetGroupDetails(groupID, callerID string) (*GroupDetails, error)
	AddMembers(groupID, callerID string, memberIDs []string) (*models.Group, error)
	RemoveMember(groupID, callerID, memberID string) (*models.Group, error)
	DeleteGroup(groupID, callerID string) error
	PostExpense(groupID, callerID, description string, amount float64, paidBy string) ([]models.Contribution, error)
	ComputeBalances(groupID, callerID string) (*calculator.Summary, error)
}

// BudgetPatch holds optional fields for a partial budget update. Nil fields
// are left untouched; Saved is always re-derived after the patch.
type BudgetPatch struct {
	Amount     *float64
	Spent      *float64
	Period     *models.BudgetPeriod
	RangeStart *time.Time
	RangeEnd   *time.Time
}

// BudgetServicer defines the contract for personal budget plans.
type BudgetServicer interface {
	CreateBudget(userID string, amount, spent float64, period models.BudgetPeriod, rangeStart, rangeEnd *time.Time) (*models.Budget, error)
	GetUserBudgets(userID string) ([]models.Budget, error)
	UpdateBudget(userID, budgetID string, patch BudgetPatch) (*models.Budget, error)
}

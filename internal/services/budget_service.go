package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "paisabook/internal/errors"
	"paisabook/internal/models"
)

// budgetService handles personal budget plans.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// CreateBudget creates a budget for the user. Saved is derived as
// amount - spent at creation and kept derived on every later update.
func (s *budgetService) CreateBudget(
	userID string,
	amount, spent float64,
	period models.BudgetPeriod,
	rangeStart, rangeEnd *time.Time,
) (*models.Budget, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "budgetAmount must be positive")
	}
	if spent < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "totalSpent cannot be negative")
	}
	if period == models.BudgetPeriodCustom && (rangeStart == nil || rangeEnd == nil) {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "custom period requires a date range")
	}

	budget := &models.Budget{
		UserID:     userID,
		Amount:     amount,
		Spent:      spent,
		Saved:      amount - spent,
		Period:     period,
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
	}

	if err := s.db.Create(budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// GetUserBudgets returns the user's budgets, newest first.
func (s *budgetService) GetUserBudgets(userID string) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// UpdateBudget applies a partial update to a budget owned by the user and
// re-derives the saved amount.
func (s *budgetService) UpdateBudget(userID, budgetID string, patch BudgetPatch) (*models.Budget, error) {
	var budget models.Budget
	if err := s.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if patch.Amount != nil {
		if *patch.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "budgetAmount must be positive")
		}
		budget.Amount = *patch.Amount
	}
	if patch.Spent != nil {
		if *patch.Spent < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrValidation, "totalSpent cannot be negative")
		}
		budget.Spent = *patch.Spent
	}
	if patch.Period != nil {
		budget.Period = *patch.Period
	}
	if patch.RangeStart != nil {
		budget.RangeStart = patch.RangeStart
	}
	if patch.RangeEnd != nil {
		budget.RangeEnd = patch.RangeEnd
	}
	budget.Saved = budget.Amount - budget.Spent

	if err := s.db.Save(&budget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &budget, nil
}

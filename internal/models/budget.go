package models

import "time"

// BudgetPeriod represents the period type for a budget
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodCustom  BudgetPeriod = "custom"
)

// Budget represents a personal budget plan owned by a user.
// Saved is always derived as Amount - Spent and kept in lockstep by the service.
type Budget struct {
	Base
	UserID     string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount     float64      `gorm:"not null" json:"budget_amount"`
	Spent      float64      `gorm:"not null;default:0" json:"total_spent"`
	Saved      float64      `gorm:"not null;default:0" json:"total_saved"`
	Period     BudgetPeriod `gorm:"not null" json:"time_period"`
	RangeStart *time.Time   `json:"range_start,omitempty"`
	RangeEnd   *time.Time   `json:"range_end,omitempty"`
}

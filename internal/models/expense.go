package models

// Expense is a group-scoped expense record. Balances are derived from the
// contribution ledger, not from these rows; they exist so group spending
// history survives beyond the running totals.
type Expense struct {
	Base
	GroupID     string  `gorm:"type:uuid;not null;index" json:"group_id"`
	Description string  `gorm:"not null" json:"description"`
	Amount      float64 `gorm:"not null" json:"amount"`
	PaidBy      string  `gorm:"type:uuid;not null" json:"paid_by"`
}

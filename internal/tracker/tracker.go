// Package tracker implements the budget-category store, the overspend /
// underspend classification engine, and the gamified reward generator.
//
// A Tracker owns one user's category table for the lifetime of their
// session. Every mutation re-derives alerts and achievements from scratch,
// so the derived lists can never drift from the underlying numbers.
package tracker

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	apperrors "paisabook/internal/errors"
)

// Category is a named spending bucket with a limit and a running spent total.
type Category struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Limit float64 `json:"limit"`
	Spent float64 `json:"spent"`
	Color string  `json:"color"`
}

// Config controls the initial category table, the name->id registry used for
// form-submitted expenses, the suggestion catalog, and the randomness source
// for reward selection.
type Config struct {
	Categories  []Category
	Registry    map[string]string
	Suggestions map[string][]string
	Rand        *rand.Rand
}

// DefaultConfig returns the stock six-category setup.
func DefaultConfig() Config {
	categories := []Category{
		{ID: "1", Name: "Food & Dining", Limit: 10000, Spent: 7500, Color: "#FF6B6B"},
		{ID: "2", Name: "Transportation", Limit: 6000, Spent: 4200, Color: "#4ECDC4"},
		{ID: "3", Name: "Entertainment", Limit: 5000, Spent: 2000, Color: "#45B7D1"},
		{ID: "4", Name: "Shopping", Limit: 8000, Spent: 12000, Color: "#96CEB4"},
		{ID: "5", Name: "Utilities", Limit: 4000, Spent: 3800, Color: "#FFEAA7"},
		{ID: "6", Name: "Healthcare", Limit: 3000, Spent: 0, Color: "#DDA0DD"},
	}
	return Config{
		Categories:  categories,
		Registry:    registryFrom(categories),
		Suggestions: defaultSuggestions,
	}
}

func registryFrom(categories []Category) map[string]string {
	reg := make(map[string]string, len(categories))
	for _, c := range categories {
		reg[c.Name] = c.ID
	}
	return reg
}

// Tracker holds one session's budget-category state and its derived
// alert/achievement lists.
type Tracker struct {
	mu sync.Mutex

	categories  []Category
	registry    map[string]string
	suggestions map[string][]string
	rng         *rand.Rand

	alerts        []Alert
	achievements  []Achievement
	currentReward *Reward
}

// New creates a Tracker from the given config. Zero-value fields fall back
// to the defaults.
func New(cfg Config) *Tracker {
	if cfg.Categories == nil {
		cfg.Categories = DefaultConfig().Categories
	}
	if cfg.Registry == nil {
		cfg.Registry = registryFrom(cfg.Categories)
	}
	if cfg.Suggestions == nil {
		cfg.Suggestions = defaultSuggestions
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	t := &Tracker{
		categories:  append([]Category(nil), cfg.Categories...),
		registry:    cfg.Registry,
		suggestions: cfg.Suggestions,
		rng:         cfg.Rand,
	}
	t.recompute()
	return t
}

// Categories returns a snapshot of the category table.
func (t *Tracker) Categories() []Category {
	t.mu.Lock()
	defer t.mu.Unlock()
	categories := make([]Category, len(t.categories))
	copy(categories, t.categories)
	return categories
}

// UpdateSpending adds delta (signed) to the category's spent total, clamped
// to a minimum of 0. Spending past the limit is the overspend signal, not an
// error, so there is no upper clamp.
func (t *Tracker) UpdateSpending(categoryID string, delta float64) (*Category, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := t.find(categoryID)
	if c == nil {
		return nil, apperrors.ErrCategoryNotFound
	}
	c.Spent = math.Max(0, c.Spent+delta)
	t.recompute()

	snapshot := *c
	return &snapshot, nil
}

// AdjustLimit sets the category's limit to max(0, newLimit). Spent is never
// retroactively altered.
func (t *Tracker) AdjustLimit(categoryID string, newLimit float64) (*Category, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	c := t.find(categoryID)
	if c == nil {
		return nil, apperrors.ErrCategoryNotFound
	}
	c.Limit = math.Max(0, newLimit)
	t.recompute()

	snapshot := *c
	return &snapshot, nil
}

// QuickAdjustLimit scales the current limit by a preset multiplier
// (0.8x, 1.0x or 1.2x), rounded to the nearest whole amount.
func (t *Tracker) QuickAdjustLimit(categoryID string, multiplier float64) (*Category, error) {
	switch multiplier {
	case 0.8, 1.0, 1.2:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "multiplier must be 0.8, 1.0 or 1.2")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	c := t.find(categoryID)
	if c == nil {
		return nil, apperrors.ErrCategoryNotFound
	}
	c.Limit = math.Round(c.Limit * multiplier)
	t.recompute()

	snapshot := *c
	return &snapshot, nil
}

// RecordExpense maps a category name to its id through the configured
// registry and records the amount as spending.
func (t *Tracker) RecordExpense(categoryName string, amount float64) (*Category, error) {
	t.mu.Lock()
	id, ok := t.registry[categoryName]
	t.mu.Unlock()
	if !ok {
		return nil, apperrors.ErrUnknownCategory
	}
	return t.UpdateSpending(id, amount)
}

// Alerts returns the current overspending alerts.
func (t *Tracker) Alerts() []Alert {
	t.mu.Lock()
	defer t.mu.Unlock()
	alerts := make([]Alert, len(t.alerts))
	copy(alerts, t.alerts)
	return alerts
}

// DismissAlert removes an alert from the current list without touching the
// underlying category. The alert reappears on the next re-derivation if the
// category is still over its threshold.
func (t *Tracker) DismissAlert(alertID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, a := range t.alerts {
		if a.ID == alertID {
			t.alerts = append(t.alerts[:i], t.alerts[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrAlertNotFound
}

// Achievements returns the current unclaimed achievements.
func (t *Tracker) Achievements() []Achievement {
	t.mu.Lock()
	defer t.mu.Unlock()
	achievements := make([]Achievement, len(t.achievements))
	copy(achievements, t.achievements)
	return achievements
}

// TotalBudget returns the sum of all category limits.
func (t *Tracker) TotalBudget() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalBudget()
}

// TotalSpent returns the sum of all category spending.
func (t *Tracker) TotalSpent() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalSpent()
}

// TotalSaved returns TotalBudget - TotalSpent. Negative when overspent.
func (t *Tracker) TotalSaved() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalBudget() - t.totalSpent()
}

// Status derives the aggregate budget status from the sums. This is
// independent of the per-category classification: a single overspent
// category does not force the aggregate status to overspent.
func (t *Tracker) Status() GlobalStatus {
	t.mu.Lock()
	defer t.mu.Unlock()

	totalBudget := t.totalBudget()
	totalSpent := t.totalSpent()
	switch {
	case totalSpent > totalBudget:
		return StatusOverspent
	case totalSpent < totalBudget:
		return StatusUnderspent
	default:
		return StatusNeutral
	}
}

// TriggerReward draws a reward for the aggregate savings. The amount basis
// is clamped at zero; the overspent state never reaches this path because
// the caller gates on Status.
func (t *Tracker) TriggerReward() Reward {
	t.mu.Lock()
	defer t.mu.Unlock()

	saved := math.Max(t.totalBudget()-t.totalSpent(), 0)
	reward := t.generateReward(saved, "Overall")
	t.currentReward = &reward
	return reward
}

// ClaimReward consumes the pending reward, if any.
func (t *Tracker) ClaimReward() *Reward {
	t.mu.Lock()
	defer t.mu.Unlock()

	reward := t.currentReward
	t.currentReward = nil
	return reward
}

func (t *Tracker) find(categoryID string) *Category {
	for i := range t.categories {
		if t.categories[i].ID == categoryID {
			return &t.categories[i]
		}
	}
	return nil
}

func (t *Tracker) totalBudget() float64 {
	var sum float64
	for _, c := range t.categories {
		sum += c.Limit
	}
	return sum
}

func (t *Tracker) totalSpent() float64 {
	var sum float64
	for _, c := range t.categories {
		sum += c.Spent
	}
	return sum
}

// recompute re-derives alerts and achievements from the current category
// table. It is idempotent and safe to re-run with unchanged input.
// Callers must hold t.mu.
func (t *Tracker) recompute() {
	var alerts []Alert
	anyOverspent := false

	for _, c := range t.categories {
		if Classify(c.Limit, c.Spent) == CategoryOverspent {
			anyOverspent = true
			alerts = append(alerts, t.buildAlert(c))
		}
	}
	t.alerts = alerts

	// Underspend achievements are suppressed entirely while any category is
	// over its threshold, and the reward path is closed with them.
	if anyOverspent {
		t.achievements = nil
		t.currentReward = nil
		return
	}

	for _, c := range t.categories {
		if Classify(c.Limit, c.Spent) != CategoryUnderspent {
			continue
		}
		title := fmt.Sprintf("%s Saver!", c.Name)
		if t.hasAchievement(title) {
			continue
		}

		saved := c.Limit - c.Spent
		savedPct := int(math.Round(saved / c.Limit * 100))
		t.achievements = append(t.achievements, Achievement{
			ID:          fmt.Sprintf("achievement-%s", c.ID),
			Type:        AchievementUnderspending,
			Title:       title,
			Description: fmt.Sprintf("You saved ₹%.0f (%d%%) in %s", saved, savedPct, c.Name),
			SavedAmount: saved,
			Reward:      t.generateReward(saved, c.Name),
			UnlockedAt:  time.Now(),
		})
	}
}

func (t *Tracker) hasAchievement(title string) bool {
	for _, a := range t.achievements {
		if a.Type == AchievementUnderspending && a.Title == title {
			return true
		}
	}
	return false
}

func (t *Tracker) buildAlert(c Category) Alert {
	overAmount := c.Spent - c.Limit
	percentage := 100
	if c.Limit > 0 {
		percentage = int(math.Round(overAmount / c.Limit * 100))
	}

	return Alert{
		ID:          fmt.Sprintf("alert-%s", c.ID),
		Category:    c.Name,
		Spent:       c.Spent,
		Limit:       c.Limit,
		OverAmount:  overAmount,
		Percentage:  percentage,
		Severity:    SeverityFor(percentage),
		Suggestions: t.suggestionsFor(c.Name),
		Timestamp:   time.Now(),
	}
}

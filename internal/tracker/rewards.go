package tracker

import "time"

// RewardType enumerates the reward flavors.
type RewardType string

const (
	RewardCoupon   RewardType = "coupon"
	RewardOffer    RewardType = "offer"
	RewardCashback RewardType = "cashback"
)

// Reward is a presentational reward drawn from a fixed catalog. There is no
// external redemption integration.
type Reward struct {
	Type  RewardType `json:"type"`
	Value string     `json:"value"`
	Code  string     `json:"code,omitempty"`
}

// AchievementUnderspending is the only achievement type generated today.
const AchievementUnderspending = "underspending"

// Achievement marks a significantly underspent category and carries the
// reward unlocked by it.
type Achievement struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SavedAmount float64   `json:"saved_amount"`
	Reward      Reward    `json:"reward"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}

// Alert flags a category that breached the overspend threshold. Dismissing
// an alert never mutates the category it was derived from.
type Alert struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Spent       float64   `json:"spent"`
	Limit       float64   `json:"limit"`
	OverAmount  float64   `json:"over_amount"`
	Percentage  int       `json:"percentage"`
	Severity    Severity  `json:"severity"`
	Suggestions []string  `json:"suggestions"`
	Timestamp   time.Time `json:"timestamp"`
}

var rewardCatalog = []Reward{
	{Type: RewardCoupon, Value: "10% off next purchase", Code: "SAVE10"},
	{Type: RewardOffer, Value: "Free delivery on orders above ₹500", Code: "FREEDEL"},
	{Type: RewardCashback, Value: "₹100 cashback on next transaction", Code: "CASH100"},
	{Type: RewardCoupon, Value: "20% off dining out", Code: "DINE20"},
	{Type: RewardOffer, Value: "Buy 1 Get 1 free on entertainment", Code: "BOGO"},
	{Type: RewardCashback, Value: "₹50 cashback on utilities", Code: "UTIL50"},
}

// generateReward selects uniformly at random from the catalog. The saved
// amount and category are part of the reward contract but do not influence
// the draw. Callers must hold t.mu.
func (t *Tracker) generateReward(savedAmount float64, category string) Reward {
	return rewardCatalog[t.rng.Intn(len(rewardCatalog))]
}

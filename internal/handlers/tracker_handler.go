package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	apperrors "paisabook/internal/errors"
	"paisabook/internal/tracker"
)

// TrackerHandler serves the per-user budget-category tracker. Tracker state
// is session scoped: each authenticated user gets their own Tracker, created
// lazily from the default config and held in memory for the process lifetime.
type TrackerHandler struct {
	mu       sync.Mutex
	sessions map[string]*tracker.Tracker
	newFn    func() *tracker.Tracker
}

// NewTrackerHandler creates a TrackerHandler. newFn builds the tracker for a
// user's first request; pass nil to use tracker.DefaultConfig.
func NewTrackerHandler(newFn func() *tracker.Tracker) *TrackerHandler {
	if newFn == nil {
		newFn = func() *tracker.Tracker { return tracker.New(tracker.DefaultConfig()) }
	}
	return &TrackerHandler{
		sessions: make(map[string]*tracker.Tracker),
		newFn:    newFn,
	}
}

func (h *TrackerHandler) trackerFor(userID string) *tracker.Tracker {
	h.mu.Lock()
	defer h.mu.Unlock()

	t, ok := h.sessions[userID]
	if !ok {
		t = h.newFn()
		h.sessions[userID] = t
	}
	return t
}

// UpdateSpendingRequest represents a signed spending adjustment.
type UpdateSpendingRequest struct {
	Delta float64 `json:"delta" binding:"required"`
}

// AdjustLimitRequest represents a direct limit change.
type AdjustLimitRequest struct {
	Limit float64 `json:"limit" binding:"gte=0"`
}

// QuickAdjustRequest represents a preset limit scaling.
type QuickAdjustRequest struct {
	Multiplier float64 `json:"multiplier" binding:"required,limit_multiplier"`
}

// RecordExpenseRequest represents a form-submitted expense by category name.
type RecordExpenseRequest struct {
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
}

// GetCategories handles listing the caller's budget categories.
// @Summary     List categories
// @Description Get the caller's budget categories with limits and spending
// @Tags        tracker
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Categories"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /tracker/categories [get]
func (h *TrackerHandler) GetCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": h.trackerFor(userID).Categories()})
}

// UpdateSpending handles a signed spending adjustment on a category.
// @Summary     Update spending
// @Description Add a signed delta to a category's spent total, clamped at zero
// @Tags        tracker
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                true "Category ID"
// @Param       request body UpdateSpendingRequest true "Spending delta"
// @Success     200 {object} tracker.Category "Updated category"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /tracker/categories/{id}/spending [patch]
func (h *TrackerHandler) UpdateSpending(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSpendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	category, err := h.trackerFor(userID).UpdateSpending(c.Param("id"), req.Delta)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// AdjustLimit handles a direct limit change on a category.
// @Summary     Adjust limit
// @Description Set a category's limit; negative values clamp to zero
// @Tags        tracker
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Category ID"
// @Param       request body AdjustLimitRequest true "New limit"
// @Success     200 {object} tracker.Category "Updated category"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /tracker/categories/{id}/limit [patch]
func (h *TrackerHandler) AdjustLimit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AdjustLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	category, err := h.trackerFor(userID).AdjustLimit(c.Param("id"), req.Limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// QuickAdjustLimit handles a preset limit scaling on a category.
// @Summary     Quick-adjust limit
// @Description Scale a category's limit by a preset multiplier (0.8, 1.0 or 1.2)
// @Tags        tracker
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Category ID"
// @Param       request body QuickAdjustRequest true "Multiplier"
// @Success     200 {object} tracker.Category "Updated category"
// @Failure     400 {object} ErrorResponse "Invalid multiplier"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /tracker/categories/{id}/limit/quick [patch]
func (h *TrackerHandler) QuickAdjustLimit(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req QuickAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	category, err := h.trackerFor(userID).QuickAdjustLimit(c.Param("id"), req.Multiplier)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// RecordExpense handles a form-submitted expense addressed by category name.
// @Summary     Record expense
// @Description Record an expense against a category by display name
// @Tags        tracker
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RecordExpenseRequest true "Expense"
// @Success     200 {object} tracker.Category "Updated category"
// @Failure     400 {object} ErrorResponse "Unknown category"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /tracker/expenses [post]
func (h *TrackerHandler) RecordExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	category, err := h.trackerFor(userID).RecordExpense(req.Category, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// GetAlerts handles listing the caller's overspending alerts.
// @Summary     List alerts
// @Description Get the current overspending alerts with severity and suggestions
// @Tags        tracker
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Alerts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /tracker/alerts [get]
func (h *TrackerHandler) GetAlerts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": h.trackerFor(userID).Alerts()})
}

// DismissAlert handles dismissing an alert.
// @Summary     Dismiss alert
// @Description Remove an alert from the current list; it reappears if the category stays overspent
// @Tags        tracker
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Alert ID"
// @Success     200 {object} map[string]string "Confirmation"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Alert not found"
// @Router      /tracker/alerts/{id} [delete]
func (h *TrackerHandler) DismissAlert(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.trackerFor(userID).DismissAlert(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Alert dismissed"})
}

// GetAchievements handles listing the caller's underspend achievements.
// @Summary     List achievements
// @Description Get the current underspend achievements with attached rewards
// @Tags        tracker
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Achievements"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /tracker/achievements [get]
func (h *TrackerHandler) GetAchievements(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"achievements": h.trackerFor(userID).Achievements()})
}

// GetStatus handles the aggregate budget status report.
// @Summary     Budget status
// @Description Get the aggregate status and totals across all categories
// @Tags        tracker
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Status report"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /tracker/status [get]
func (h *TrackerHandler) GetStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	t := h.trackerFor(userID)
	c.JSON(http.StatusOK, gin.H{
		"status":       t.Status(),
		"total_budget": t.TotalBudget(),
		"total_spent":  t.TotalSpent(),
		"total_saved":  t.TotalSaved(),
	})
}

// TriggerReward handles drawing a reward for aggregate savings.
// @Summary     Trigger reward
// @Description Draw a reward for the caller's aggregate savings; only when underspent
// @Tags        tracker
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} tracker.Reward "Reward"
// @Failure     400 {object} ErrorResponse "Not eligible"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /tracker/rewards [post]
func (h *TrackerHandler) TriggerReward(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	t := h.trackerFor(userID)
	if t.Status() != tracker.StatusUnderspent {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, "rewards are only available while underspent overall"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"reward": t.TriggerReward()})
}

// ClaimReward handles consuming the pending reward.
// @Summary     Claim reward
// @Description Consume the pending reward, if one is waiting
// @Tags        tracker
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} tracker.Reward "Claimed reward"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No pending reward"
// @Router      /tracker/rewards/claim [post]
func (h *TrackerHandler) ClaimReward(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	reward := h.trackerFor(userID).ClaimReward()
	if reward == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrNotFound, "No pending reward"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"reward": reward})
}

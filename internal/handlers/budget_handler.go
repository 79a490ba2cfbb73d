package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "paisabook/internal/errors"
	"paisabook/internal/models"
	"paisabook/internal/services"
)

// BudgetHandler handles personal budget requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateBudgetRequest represents the request payload for creating a budget.
type CreateBudgetRequest struct {
	Amount     float64    `json:"budget_amount" binding:"required,gt=0"`
	Spent      float64    `json:"total_spent" binding:"gte=0"`
	Period     string     `json:"time_period" binding:"required,budget_period"`
	RangeStart *time.Time `json:"range_start"`
	RangeEnd   *time.Time `json:"range_end"`
}

// UpdateBudgetRequest represents the partial-update payload for a budget.
type UpdateBudgetRequest struct {
	Amount     *float64   `json:"budget_amount" binding:"omitempty,gt=0"`
	Spent      *float64   `json:"total_spent" binding:"omitempty,gte=0"`
	Period     *string    `json:"time_period" binding:"omitempty,budget_period"`
	RangeStart *time.Time `json:"range_start"`
	RangeEnd   *time.Time `json:"range_end"`
}

// CreateBudget handles the creation of a personal budget.
// @Summary     Create a budget
// @Description Create a personal budget for the caller
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBudgetRequest true "Budget details"
// @Success     201 {object} models.Budget "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	budget, err := h.budgetService.CreateBudget(userID, req.Amount, req.Spent, models.BudgetPeriod(req.Period), req.RangeStart, req.RangeEnd)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetUserBudgets handles listing the caller's budgets.
// @Summary     List budgets
// @Description Get all budgets belonging to the caller, newest first
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Budgets"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetUserBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.budgetService.GetUserBudgets(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// UpdateBudget handles partial updates to a budget.
// @Summary     Update a budget
// @Description Partially update a budget; saved total is re-derived
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Budget ID"
// @Param       request body UpdateBudgetRequest true "Fields to update"
// @Success     200 {object} models.Budget "Updated budget"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/{id} [patch]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	patch := services.BudgetPatch{
		Amount:     req.Amount,
		Spent:      req.Spent,
		RangeStart: req.RangeStart,
		RangeEnd:   req.RangeEnd,
	}
	if req.Period != nil {
		period := models.BudgetPeriod(*req.Period)
		patch.Period = &period
	}

	budget, err := h.budgetService.UpdateBudget(userID, c.Param("id"), patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

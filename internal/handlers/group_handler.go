package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "paisabook/internal/errors"
	"paisabook/internal/pagination"
	"paisabook/internal/services"
)

// GroupHandler handles group registry and ledger requests.
type GroupHandler struct {
	groupService services.GroupServicer
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(groupService services.GroupServicer) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// CreateGroupRequest represents the request payload for creating a group.
type CreateGroupRequest struct {
	Name    string   `json:"name" binding:"required,min=1,max=100"`
	Members []string `json:"members"`
	Purpose string   `json:"purpose" binding:"max=500"`
}

// AddMembersRequest represents the request payload for adding members.
type AddMembersRequest struct {
	Members []string `json:"members" binding:"required,min=1"`
}

// PostExpenseRequest represents the request payload for recording an expense.
type PostExpenseRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=200"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PaidBy      string  `json:"paid_by" binding:"required"`
}

// CreateGroup handles the creation of a new group.
// @Summary     Create a group
// @Description Create a shared-expense group with the caller as creator
// @Tags        groups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateGroupRequest true "Group details"
// @Success     201 {object} models.Group "Group created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	group, err := h.groupService.CreateGroup(userID, req.Name, req.Members, req.Purpose)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"group": group})
}

// GetUserGroups handles listing the caller's groups.
// @Summary     List groups
// @Description Get a paginated list of groups the caller belongs to
// @Tags        groups
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Group] "Paginated groups"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /groups [get]
func (h *GroupHandler) GetUserGroups(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	result, err := h.groupService.GetUserGroups(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetGroupDetails handles retrieving a group with resolved member profiles.
// @Summary     Get group details
// @Description Get a group with member display profiles; members only
// @Tags        groups
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Group ID"
// @Success     200 {object} services.GroupDetails "Group details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not a member"
// @Failure     404 {object} ErrorResponse "Group not found"
// @Router      /groups/{id} [get]
func (h *GroupHandler) GetGroupDetails(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	details, err := h.groupService.GetGroupDetails(c.Param("id"), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// AddMembers handles adding members to a group.
// @Summary     Add members
// @Description Add members to a group; creator only, idempotent
// @Tags        groups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Group ID"
// @Param       request body AddMembersRequest true "Member IDs"
// @Success     200 {object} models.Group "Updated group"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not the creator"
// @Failure     404 {object} ErrorResponse "Group not found"
// @Router      /groups/{id}/members [post]
func (h *GroupHandler) AddMembers(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	group, err := h.groupService.AddMembers(c.Param("id"), userID, req.Members)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"group": group})
}

// RemoveMember handles removing a member from a group.
// @Summary     Remove member
// @Description Remove a member from a group; creator only, creator immune
// @Tags        groups
// @Produce     json
// @Security    BearerAuth
// @Param       id       path string true "Group ID"
// @Param       memberId path string true "Member ID"
// @Success     200 {object} models.Group "Updated group"
// @Failure     400 {object} ErrorResponse "Creator cannot be removed"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not the creator"
// @Failure     404 {object} ErrorResponse "Group not found"
// @Router      /groups/{id}/members/{memberId} [delete]
func (h *GroupHandler) RemoveMember(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	group, err := h.groupService.RemoveMember(c.Param("id"), userID, c.Param("memberId"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"group": group})
}

// DeleteGroup handles deleting a group.
// @Summary     Delete group
// @Description Delete a group and purge its ledger; creator only
// @Tags        groups
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Group ID"
// @Success     200 {object} map[string]string "Confirmation"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not the creator"
// @Failure     404 {object} ErrorResponse "Group not found"
// @Router      /groups/{id} [delete]
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.groupService.DeleteGroup(c.Param("id"), userID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Group deleted"})
}

// PostExpense handles recording a group expense.
// @Summary     Post expense
// @Description Record an expense paid by a member; folds into the payer's cumulative contribution
// @Tags        groups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Group ID"
// @Param       request body PostExpenseRequest true "Expense details"
// @Success     201 {object} map[string]interface{} "Updated contributions"
// @Failure     400 {object} ErrorResponse "Invalid input or payer not a member"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not a member"
// @Failure     404 {object} ErrorResponse "Group not found"
// @Router      /groups/{id}/expenses [post]
func (h *GroupHandler) PostExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PostExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	contributions, err := h.groupService.PostExpense(c.Param("id"), userID, req.Description, req.Amount, req.PaidBy)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"contributions": contributions})
}

// GetBalances handles the equal-split balance computation.
// @Summary     Compute balances
// @Description Compute the equal-split balance sheet for a group; members only
// @Tags        groups
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Group ID"
// @Success     200 {object} calculator.Summary "Balance sheet"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Not a member"
// @Failure     404 {object} ErrorResponse "Group not found"
// @Router      /groups/{id}/balances [get]
func (h *GroupHandler) GetBalances(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.groupService.ComputeBalances(c.Param("id"), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"paisabook/internal/calculator"
	apperrors "paisabook/internal/errors"
	"paisabook/internal/models"
	"paisabook/internal/pagination"
)

// groupService handles the group registry and the contribution ledger.
type groupService struct {
	db *gorm.DB
}

// NewGroupService creates a new GroupServicer.
func NewGroupService(db *gorm.DB) GroupServicer {
	return &groupService{db: db}
}

// CreateGroup creates a group with the creator plus the given members,
// deduplicated, and one zero contribution entry per member.
func (s *groupService) CreateGroup(creatorID, name string, memberIDs []string, purpose string) (*models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "group name is required")
	}

	// Member set: creator first, then the rest deduplicated.
	ids := []string{creatorID}
	seen := map[string]bool{creatorID: true}
	for _, id := range memberIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	members, err := s.resolveUsers(ids)
	if err != nil {
		return nil, err
	}

	contributions := make([]models.Contribution, 0, len(ids))
	for _, id := range ids {
		contributions = append(contributions, models.Contribution{MemberID: id, AmountPaid: 0})
	}

	group := &models.Group{
		Name:          name,
		CreatedBy:     creatorID,
		Purpose:       purpose,
		Members:       members,
		Contributions: contributions,
	}

	if err := s.db.Create(group).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return group, nil
}

// GetUserGroups returns a paginated list of groups the user belongs to.
func (s *groupService) GetUserGroups(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Group], error) {
	page.Defaults()

	base := s.db.Model(&models.Group{}).
		Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var groups []models.Group
	if err := base.Preload("Contributions").Scopes(pagination.Paginate(page)).Find(&groups).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(groups, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetGroupDetails returns the group with resolved member display profiles.
// Members see account identifiers only, never budgets or credentials.
func (s *groupService) GetGroupDetails(groupID, callerID string) (*GroupDetails, error) {
	group, err := s.getGroup(groupID, "Members", "Contributions", "Expenses")
	if err != nil {
		return nil, err
	}
	if !group.IsMember(callerID) {
		return nil, apperrors.ErrNotGroupMember
	}

	profiles := make([]models.MemberProfile, 0, len(group.Members))
	for i := range group.Members {
		profiles = append(profiles, group.Members[i].Profile())
	}

	return &GroupDetails{Group: *group, Members: profiles}, nil
}

// AddMembers adds the given users to the group with a zero contribution
// entry each. Only the creator may add members; already-present members are
// skipped, so the call is idempotent.
func (s *groupService) AddMembers(groupID, callerID string, memberIDs []string) (*models.Group, error) {
	group, err := s.getGroup(groupID, "Members", "Contributions")
	if err != nil {
		return nil, err
	}
	if group.CreatedBy != callerID {
		return nil, apperrors.ErrNotGroupCreator
	}

	var toAdd []string
	seen := map[string]bool{}
	for _, id := range memberIDs {
		if id == "" || seen[id] || group.IsMember(id) {
			continue
		}
		seen[id] = true
		toAdd = append(toAdd, id)
	}
	if len(toAdd) == 0 {
		return group, nil
	}

	users, err := s.resolveUsers(toAdd)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for i := range users {
			if err := tx.Model(group).Association("Members").Append(&users[i]); err != nil {
				return err
			}
			contribution := models.Contribution{GroupID: group.ID, MemberID: users[i].ID, AmountPaid: 0}
			if err := tx.Create(&contribution).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.getGroup(groupID, "Members", "Contributions")
}

// RemoveMember removes a member and prunes their contribution entry. The
// creator can never be removed. Other members' totals are left as they are;
// nothing is redistributed.
func (s *groupService) RemoveMember(groupID, callerID, memberID string) (*models.Group, error) {
	group, err := s.getGroup(groupID, "Members", "Contributions")
	if err != nil {
		return nil, err
	}
	if group.CreatedBy != callerID {
		return nil, apperrors.ErrNotGroupCreator
	}
	if memberID == group.CreatedBy {
		return nil, apperrors.ErrCreatorImmutable
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		member := models.User{Base: models.Base{ID: memberID}}
		if err := tx.Model(group).Association("Members").Delete(&member); err != nil {
			return err
		}
		return tx.Where("group_id = ? AND member_id = ?", group.ID, memberID).
			Delete(&models.Contribution{}).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.getGroup(groupID, "Members", "Contributions")
}

// DeleteGroup purges the group along with its contributions, expenses and
// membership rows. Creator only.
func (s *groupService) DeleteGroup(groupID, callerID string) error {
	group, err := s.getGroup(groupID)
	if err != nil {
		return err
	}
	if group.CreatedBy != callerID {
		return apperrors.ErrNotGroupCreator
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", group.ID).Delete(&models.Contribution{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", group.ID).Delete(&models.Expense{}).Error; err != nil {
			return err
		}
		if err := tx.Model(group).Association("Members").Clear(); err != nil {
			return err
		}
		return tx.Delete(group).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// PostExpense records a group expense and folds it into the payer's
// cumulative contribution. The ledger keeps running totals only; this
// operation is additive and not idempotent, so retries double-count.
func (s *groupService) PostExpense(groupID, callerID, description string, amount float64, paidBy string) ([]models.Contribution, error) {
	if strings.TrimSpace(description) == "" || paidBy == "" {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "description, amount and paidBy are required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "amount must be positive")
	}

	group, err := s.getGroup(groupID, "Members", "Contributions")
	if err != nil {
		return nil, err
	}
	if !group.IsMember(callerID) {
		return nil, apperrors.ErrNotGroupMember
	}
	if !group.IsMember(paidBy) {
		return nil, apperrors.ErrPayerNotMember
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		expense := models.Expense{
			GroupID:     group.ID,
			Description: description,
			Amount:      amount,
			PaidBy:      paidBy,
		}
		if err := tx.Create(&expense).Error; err != nil {
			return err
		}

		if group.ContributionFor(paidBy) != nil {
			return tx.Model(&models.Contribution{}).
				Where("group_id = ? AND member_id = ?", group.ID, paidBy).
				Update("amount_paid", gorm.Expr("amount_paid + ?", amount)).Error
		}
		// Missing entry means inconsistent state; repair it in place.
		contribution := models.Contribution{GroupID: group.ID, MemberID: paidBy, AmountPaid: amount}
		return tx.Create(&contribution).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var contributions []models.Contribution
	if err := s.db.Where("group_id = ?", group.ID).Find(&contributions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return contributions, nil
}

// ComputeBalances derives each member's net position under the equal-split
// policy. Pure read; nothing is cached or persisted.
func (s *groupService) ComputeBalances(groupID, callerID string) (*calculator.Summary, error) {
	group, err := s.getGroup(groupID, "Members", "Contributions")
	if err != nil {
		return nil, err
	}
	if !group.IsMember(callerID) {
		return nil, apperrors.ErrNotGroupMember
	}

	memberIDs := make([]string, 0, len(group.Members))
	names := make(map[string]string, len(group.Members))
	for _, m := range group.Members {
		memberIDs = append(memberIDs, m.ID)
		names[m.ID] = m.AccountName
	}

	paid := make(map[string]float64, len(group.Contributions))
	for _, c := range group.Contributions {
		paid[c.MemberID] = c.AmountPaid
	}

	summary := calculator.EqualSplit(memberIDs, paid)
	for i := range summary.Details {
		summary.Details[i].Name = names[summary.Details[i].MemberID]
	}
	return &summary, nil
}

// getGroup loads a group by ID with the given associations preloaded.
func (s *groupService) getGroup(groupID string, preloads ...string) (*models.Group, error) {
	query := s.db
	for _, preload := range preloads {
		query = query.Preload(preload)
	}

	var group models.Group
	if err := query.First(&group, "id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &group, nil
}

// resolveUsers loads the given user IDs, failing validation if any is unknown.
func (s *groupService) resolveUsers(ids []string) ([]models.User, error) {
	var users []models.User
	if err := s.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(users) != len(ids) {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "one or more members do not exist")
	}
	return users, nil
}

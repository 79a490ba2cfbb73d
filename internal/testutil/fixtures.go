package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"paisabook/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique account number.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	n := nextID()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		AccountName:   fmt.Sprintf("Test User %d", n),
		AccountNumber: fmt.Sprintf("%012d", n),
		IFSC:          "HDFC0001234",
		PasswordHash:  string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestGroup creates a group owned by creator with the given extra
// members, each with a zero contribution entry.
func CreateTestGroup(t *testing.T, db *gorm.DB, creator *models.User, members ...*models.User) *models.Group {
	t.Helper()

	all := append([]*models.User{creator}, members...)
	groupMembers := make([]models.User, 0, len(all))
	contributions := make([]models.Contribution, 0, len(all))
	for _, u := range all {
		groupMembers = append(groupMembers, *u)
		contributions = append(contributions, models.Contribution{MemberID: u.ID, AmountPaid: 0})
	}

	group := &models.Group{
		Name:          fmt.Sprintf("Test Group %d", nextID()),
		CreatedBy:     creator.ID,
		Members:       groupMembers,
		Contributions: contributions,
	}
	if err := db.Create(group).Error; err != nil {
		t.Fatalf("failed to create test group: %v", err)
	}
	return group
}

// CreateTestBudget creates a monthly budget for the user.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID string) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID: userID,
		Amount: 10000,
		Spent:  2500,
		Saved:  7500,
		Period: models.BudgetPeriodMonthly,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

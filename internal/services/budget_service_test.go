package services

import (
	"testing"
	"time"

	"paisabook/internal/models"
	"paisabook/internal/testutil"
)

func TestCreateBudget(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		budget, err := svc.CreateBudget(user.ID, 20000, 5000, models.BudgetPeriodMonthly, nil, nil)
		testutil.AssertNoError(t, err)

		if budget.ID == "" {
			t.Fatal("expected non-empty budget ID")
		}
		if budget.Saved != 15000 {
			t.Errorf("expected saved 15000, got %f", budget.Saved)
		}
		if budget.Period != models.BudgetPeriodMonthly {
			t.Errorf("expected monthly period, got %s", budget.Period)
		}
	})

	t.Run("overspent_budget_has_negative_saved", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		budget, err := svc.CreateBudget(user.ID, 1000, 1500, models.BudgetPeriodWeekly, nil, nil)
		testutil.AssertNoError(t, err)

		if budget.Saved != -500 {
			t.Errorf("expected saved -500, got %f", budget.Saved)
		}
	})

	t.Run("custom_period_requires_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudget(user.ID, 1000, 0, models.BudgetPeriodCustom, nil, nil)
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")

		start := time.Now()
		end := start.AddDate(0, 0, 14)
		budget, err := svc.CreateBudget(user.ID, 1000, 0, models.BudgetPeriodCustom, &start, &end)
		testutil.AssertNoError(t, err)
		if budget.RangeStart == nil || budget.RangeEnd == nil {
			t.Error("expected range to be stored")
		}
	})

	t.Run("invalid_amounts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateBudget(user.ID, 0, 0, models.BudgetPeriodMonthly, nil, nil)
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")

		_, err = svc.CreateBudget(user.ID, 1000, -1, models.BudgetPeriodMonthly, nil, nil)
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestGetUserBudgets(t *testing.T) {
	t.Run("returns_own_budgets_newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		testutil.CreateTestBudget(t, db, user1.ID)
		testutil.CreateTestBudget(t, db, user1.ID)
		testutil.CreateTestBudget(t, db, user2.ID)

		budgets, err := svc.GetUserBudgets(user1.ID)
		testutil.AssertNoError(t, err)

		if len(budgets) != 2 {
			t.Errorf("expected 2 budgets for user1, got %d", len(budgets))
		}
	})

	t.Run("empty_for_new_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)

		budgets, err := svc.GetUserBudgets(user.ID)
		testutil.AssertNoError(t, err)

		if len(budgets) != 0 {
			t.Errorf("expected no budgets, got %d", len(budgets))
		}
	})
}

func TestUpdateBudget(t *testing.T) {
	t.Run("partial_update_rederives_saved", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID)

		spent := 6000.0
		updated, err := svc.UpdateBudget(user.ID, budget.ID, BudgetPatch{Spent: &spent})
		testutil.AssertNoError(t, err)

		if updated.Spent != 6000 {
			t.Errorf("expected spent 6000, got %f", updated.Spent)
		}
		if updated.Saved != 4000 {
			t.Errorf("expected saved re-derived to 4000, got %f", updated.Saved)
		}
		if updated.Amount != budget.Amount {
			t.Errorf("expected amount untouched, got %f", updated.Amount)
		}
	})

	t.Run("cannot_update_other_users_budget", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, owner.ID)

		amount := 500.0
		_, err := svc.UpdateBudget(other.ID, budget.ID, BudgetPatch{Amount: &amount})
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})

	t.Run("rejects_invalid_patch_values", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)
		user := testutil.CreateTestUser(t, db)
		budget := testutil.CreateTestBudget(t, db, user.ID)

		bad := -100.0
		_, err := svc.UpdateBudget(user.ID, budget.ID, BudgetPatch{Amount: &bad})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")

		_, err = svc.UpdateBudget(user.ID, budget.ID, BudgetPatch{Spent: &bad})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

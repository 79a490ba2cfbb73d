package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestBudgetFlow_CreateListUpdate(t *testing.T) {
	app := setupApp(t)
	token, _ := app.signupUser(t, "Budgeter")

	// Create a monthly budget
	rec := app.request("POST", "/api/v1/budgets",
		`{"budget_amount":20000,"total_spent":5000,"time_period":"monthly"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	budget := parseJSON(t, rec)["budget"].(map[string]interface{})
	budgetID := budget["id"].(string)
	if budget["total_saved"].(float64) != 15000 {
		t.Errorf("expected derived saved 15000, got %v", budget["total_saved"])
	}

	// List shows it
	rec = app.request("GET", "/api/v1/budgets", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	budgets := parseJSON(t, rec)["budgets"].([]interface{})
	if len(budgets) != 1 {
		t.Fatalf("expected 1 budget, got %d", len(budgets))
	}

	// Patch spent; saved is re-derived
	rec = app.request("PATCH", fmt.Sprintf("/api/v1/budgets/%s", budgetID),
		`{"total_spent":12000}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	updated := parseJSON(t, rec)["budget"].(map[string]interface{})
	if updated["total_saved"].(float64) != 8000 {
		t.Errorf("expected saved re-derived to 8000, got %v", updated["total_saved"])
	}
	if updated["budget_amount"].(float64) != 20000 {
		t.Errorf("expected amount untouched, got %v", updated["budget_amount"])
	}
}

func TestBudgetFlow_Validation(t *testing.T) {
	app := setupApp(t)
	token, _ := app.signupUser(t, "Strict")

	// Unknown period
	rec := app.request("POST", "/api/v1/budgets",
		`{"budget_amount":1000,"time_period":"yearly"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown period, got %d", rec.Code)
	}

	// Custom period without a range
	rec = app.request("POST", "/api/v1/budgets",
		`{"budget_amount":1000,"time_period":"custom"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for custom without range, got %d", rec.Code)
	}

	// Budgets are private; another user cannot patch them
	rec = app.request("POST", "/api/v1/budgets",
		`{"budget_amount":1000,"time_period":"weekly"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	budgetID := parseJSON(t, rec)["budget"].(map[string]interface{})["id"].(string)

	otherToken, _ := app.signupUser(t, "Intruder")
	rec = app.request("PATCH", fmt.Sprintf("/api/v1/budgets/%s", budgetID),
		`{"total_spent":999}`, otherToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign budget, got %d", rec.Code)
	}
}

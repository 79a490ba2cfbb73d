package integration

import (
	"net/http"
	"testing"
)

func TestTrackerFlow_OverspendAlertLifecycle(t *testing.T) {
	app := setupApp(t)
	token, _ := app.signupUser(t, "Tracker")

	// The stock setup starts with Shopping overspent (12000 against 8000).
	rec := app.request("GET", "/api/v1/tracker/alerts", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	alerts := parseJSON(t, rec)["alerts"].([]interface{})
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	alert := alerts[0].(map[string]interface{})
	if alert["category"] != "Shopping" {
		t.Errorf("expected Shopping alert, got %v", alert["category"])
	}
	if alert["percentage"].(float64) != 50 {
		t.Errorf("expected 50%% over, got %v", alert["percentage"])
	}
	if alert["severity"] != "critical" {
		t.Errorf("expected critical severity, got %v", alert["severity"])
	}
	if len(alert["suggestions"].([]interface{})) == 0 {
		t.Error("expected suggestions on the alert")
	}
	alertID := alert["id"].(string)

	// Dismiss, then mutate spending: the alert re-derives because the
	// category is still over its threshold.
	rec = app.request("DELETE", "/api/v1/tracker/alerts/"+alertID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = app.request("GET", "/api/v1/tracker/alerts", "", token)
	if got := len(parseJSON(t, rec)["alerts"].([]interface{})); got != 0 {
		t.Fatalf("expected no alerts after dismissal, got %d", got)
	}

	rec = app.request("PATCH", "/api/v1/tracker/categories/4/spending", `{"delta":100}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/tracker/alerts", "", token)
	if got := len(parseJSON(t, rec)["alerts"].([]interface{})); got != 1 {
		t.Fatalf("expected alert to reappear, got %d", got)
	}

	// Bring Shopping back under control: the alert clears for good.
	rec = app.request("PATCH", "/api/v1/tracker/categories/4/spending", `{"delta":-8100}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = app.request("GET", "/api/v1/tracker/alerts", "", token)
	if got := len(parseJSON(t, rec)["alerts"].([]interface{})); got != 0 {
		t.Fatalf("expected no alerts once within limit, got %d", got)
	}
}

func TestTrackerFlow_AchievementsAndRewards(t *testing.T) {
	app := setupApp(t)
	token, _ := app.signupUser(t, "Saver")

	// Achievements are suppressed while Shopping is overspent.
	rec := app.request("GET", "/api/v1/tracker/achievements", "", token)
	if got := len(parseJSON(t, rec)["achievements"].([]interface{})); got != 0 {
		t.Fatalf("expected achievements suppressed, got %d", got)
	}

	// Resolve the overspend; the underspent categories unlock achievements.
	rec = app.request("PATCH", "/api/v1/tracker/categories/4/spending", `{"delta":-8000}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/tracker/achievements", "", token)
	achievements := parseJSON(t, rec)["achievements"].([]interface{})
	if len(achievements) == 0 {
		t.Fatal("expected achievements once nothing is overspent")
	}
	for _, raw := range achievements {
		a := raw.(map[string]interface{})
		if a["reward"] == nil {
			t.Errorf("expected a reward attached to %v", a["title"])
		}
	}

	// Aggregate status and totals
	rec = app.request("GET", "/api/v1/tracker/status", "", token)
	status := parseJSON(t, rec)
	if status["status"] != "underspent" {
		t.Errorf("expected underspent status, got %v", status["status"])
	}
	saved := status["total_saved"].(float64)
	if saved <= 0 {
		t.Errorf("expected positive savings, got %v", saved)
	}

	// Trigger and claim an aggregate reward
	rec = app.request("POST", "/api/v1/tracker/rewards", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 triggering reward, got %d: %s", rec.Code, rec.Body.String())
	}
	reward := parseJSON(t, rec)["reward"].(map[string]interface{})
	if reward["code"] == "" {
		t.Error("expected a reward code")
	}
	rec = app.request("POST", "/api/v1/tracker/rewards/claim", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 claiming, got %d", rec.Code)
	}
	rec = app.request("POST", "/api/v1/tracker/rewards/claim", "", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on double claim, got %d", rec.Code)
	}
}

func TestTrackerFlow_LimitsAndNamedExpenses(t *testing.T) {
	app := setupApp(t)
	token, _ := app.signupUser(t, "Adjuster")

	// Quick-adjust Transportation (6000) down to 4800
	rec := app.request("PATCH", "/api/v1/tracker/categories/2/limit/quick", `{"multiplier":0.8}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	category := parseJSON(t, rec)["category"].(map[string]interface{})
	if category["limit"].(float64) != 4800 {
		t.Errorf("expected limit 4800, got %v", category["limit"])
	}

	// Direct limit set
	rec = app.request("PATCH", "/api/v1/tracker/categories/2/limit", `{"limit":7000}`, token)
	category = parseJSON(t, rec)["category"].(map[string]interface{})
	if category["limit"].(float64) != 7000 {
		t.Errorf("expected limit 7000, got %v", category["limit"])
	}

	// Record an expense by category name
	rec = app.request("POST", "/api/v1/tracker/expenses",
		`{"category":"Healthcare","amount":450}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	category = parseJSON(t, rec)["category"].(map[string]interface{})
	if category["spent"].(float64) != 450 {
		t.Errorf("expected spent 450, got %v", category["spent"])
	}

	// Unknown names are rejected
	rec = app.request("POST", "/api/v1/tracker/expenses",
		`{"category":"Gambling","amount":450}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown category, got %d", rec.Code)
	}
}

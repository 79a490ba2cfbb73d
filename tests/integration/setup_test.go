package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"paisabook/internal/handlers"
	"paisabook/internal/logger"
	"paisabook/internal/middleware"
	"paisabook/internal/models"
	"paisabook/internal/services"
	"paisabook/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

// userCounter produces unique account numbers across tests.
var userCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Budget{},
		&models.Group{},
		&models.Contribution{},
		&models.Expense{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	groupService := services.NewGroupService(db)
	budgetService := services.NewBudgetService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	groupHandler := handlers.NewGroupHandler(groupService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	trackerHandler := handlers.NewTrackerHandler(nil)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	groups := protected.Group("/groups")
	groups.POST("", groupHandler.CreateGroup)
	groups.GET("", groupHandler.GetUserGroups)
	groups.GET("/:id", groupHandler.GetGroupDetails)
	groups.DELETE("/:id", groupHandler.DeleteGroup)
	groups.POST("/:id/members", groupHandler.AddMembers)
	groups.DELETE("/:id/members/:memberId", groupHandler.RemoveMember)
	groups.POST("/:id/expenses", groupHandler.PostExpense)
	groups.GET("/:id/balances", groupHandler.GetBalances)

	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetUserBudgets)
	budgets.PATCH("/:id", budgetHandler.UpdateBudget)

	trackerRoutes := protected.Group("/tracker")
	trackerRoutes.GET("/categories", trackerHandler.GetCategories)
	trackerRoutes.PATCH("/categories/:id/spending", trackerHandler.UpdateSpending)
	trackerRoutes.PATCH("/categories/:id/limit", trackerHandler.AdjustLimit)
	trackerRoutes.PATCH("/categories/:id/limit/quick", trackerHandler.QuickAdjustLimit)
	trackerRoutes.POST("/expenses", trackerHandler.RecordExpense)
	trackerRoutes.GET("/alerts", trackerHandler.GetAlerts)
	trackerRoutes.DELETE("/alerts/:id", trackerHandler.DismissAlert)
	trackerRoutes.GET("/achievements", trackerHandler.GetAchievements)
	trackerRoutes.GET("/status", trackerHandler.GetStatus)
	trackerRoutes.POST("/rewards", trackerHandler.TriggerReward)
	trackerRoutes.POST("/rewards/claim", trackerHandler.ClaimReward)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// signupUser registers a new user with a unique account number and returns
// the token and user ID.
func (app *testApp) signupUser(t *testing.T, name string) (token, userID string) {
	t.Helper()
	accountNumber := fmt.Sprintf("%012d", userCounter.Add(1))
	body := fmt.Sprintf(`{"account_name":%q,"account_number":%q,"ifsc":"HDFC0001234","password":"password123"}`,
		name, accountNumber)
	rec := app.request("POST", "/api/v1/auth/signup", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(string)
}

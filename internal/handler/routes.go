package handler

import (
	"github.com/centavo-app/centavo-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes. The rate limiter keys on the user
// ID the auth middleware resolves, so it runs after Authenticate on every
// protected group.
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, authHandler *AuthHandler, profileHandler *ProfileHandler, transactionHandler *TransactionHandler, budgetHandler *BudgetHandler, goalHandler *GoalHandler, recurringHandler *RecurringHandler, reportHandler *ReportHandler) {
	protected := []echo.MiddlewareFunc{
		authMiddleware.Authenticate(),
		middleware.RateLimitMiddleware(rateLimiter),
	}

	// API version 1
	api := e.Group("/api/v1")

	// Auth routes (protected)
	auth := api.Group("/auth")
	auth.Use(protected...)
	auth.POST("/callback", authHandler.Callback)
	auth.GET("/me", authHandler.Me)
	auth.POST("/logout", authHandler.Logout)

	// Profile routes (protected)
	profile := api.Group("/profile")
	profile.Use(protected...)
	profile.GET("", profileHandler.GetProfile)
	profile.PUT("", profileHandler.UpdateProfile)
	profile.POST("/avatar", profileHandler.UploadAvatar)
	profile.DELETE("/avatar", profileHandler.DeleteAvatar)

	// Transaction routes (protected)
	transactions := api.Group("/transactions")
	transactions.Use(protected...)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Budget routes (protected)
	budgets := api.Group("/budgets")
	budgets.Use(protected...)
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	// Goal routes (protected)
	goals := api.Group("/goals")
	goals.Use(protected...)
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.PATCH("/:id/saved", goalHandler.UpdateSavedAmount)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	// Recurring rule routes (protected)
	recurring := api.Group("/recurring")
	recurring.Use(protected...)
	recurring.POST("", recurringHandler.CreateRecurringRule)
	recurring.GET("", recurringHandler.GetRecurringRules)
	recurring.PUT("/:id", recurringHandler.UpdateRecurringRule)
	recurring.PATCH("/:id/toggle-active", recurringHandler.ToggleActive)
	recurring.DELETE("/:id", recurringHandler.DeleteRecurringRule)

	// Report routes (protected)
	reports := api.Group("/reports")
	reports.Use(protected...)
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/summary/filtered", reportHandler.GetFilteredSummary)
	reports.GET("/breakdown", reportHandler.GetBreakdown)
	reports.GET("/trend", reportHandler.GetTrend)
	reports.GET("/budgets", reportHandler.GetBudgetReport)
	reports.GET("/calendar", reportHandler.GetCalendar)
	reports.GET("/goals", reportHandler.GetGoalsProgress)
	reports.GET("/categories", reportHandler.GetCategories)
	reports.GET("/export", reportHandler.ExportCSV)
}

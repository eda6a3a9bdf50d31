package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opavlenko/finance-manager/internal/config"
	"github.com/opavlenko/finance-manager/internal/handlers"
	"github.com/opavlenko/finance-manager/internal/middleware"
)

// New збирає gin-движок з усіма маршрутами та проміжними обробниками.
func New(pool *pgxpool.Pool, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.SecurityHeaders())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimitPerMinute)
	auth := api.Group("/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Register(pool, cfg.JWTSecret))
		auth.POST("/login", handlers.Login(pool, cfg.JWTSecret))
		auth.GET("/me", middleware.Authenticated(cfg.JWTSecret), handlers.Me(pool))
	}

	protected := api.Group("")
	protected.Use(middleware.Authenticated(cfg.JWTSecret))
	{
		accounts := protected.Group("/accounts")
		{
			accounts.GET("", handlers.ListAccounts(pool))
			accounts.POST("", handlers.CreateAccount(pool))
			accounts.GET("/:id", handlers.GetAccount(pool))
			accounts.PUT("/:id", handlers.UpdateAccount(pool))
			accounts.DELETE("/:id", handlers.DeleteAccount(pool))
		}

		categories := protected.Group("/categories")
		{
			categories.GET("", handlers.ListCategories(pool))
			categories.POST("", handlers.CreateCategory(pool))
			categories.GET("/:id", handlers.GetCategory(pool))
			categories.PUT("/:id", handlers.UpdateCategory(pool))
			categories.DELETE("/:id", handlers.DeleteCategory(pool))
		}

		transactions := protected.Group("/transactions")
		{
			transactions.GET("", handlers.ListTransactions(pool))
			transactions.POST("", handlers.CreateTransaction(pool))
			transactions.GET("/summary", handlers.TransactionsSummary(pool))
			transactions.GET("/:id", handlers.GetTransaction(pool))
			transactions.PUT("/:id", handlers.UpdateTransaction(pool))
			transactions.DELETE("/:id", handlers.DeleteTransaction(pool))
		}

		budgets := protected.Group("/budgets")
		{
			budgets.GET("", handlers.ListBudgets(pool))
			budgets.POST("", handlers.CreateBudget(pool))
			budgets.GET("/:id", handlers.GetBudget(pool))
			budgets.PUT("/:id", handlers.UpdateBudget(pool))
			budgets.DELETE("/:id", handlers.DeleteBudget(pool))
		}

		exchange := protected.Group("/exchange-rates")
		{
			exchange.GET("", handlers.ExchangeRates())
			exchange.GET("/convert", handlers.ConvertCurrency())
		}

		admin := protected.Group("/admin")
		admin.Use(middleware.AdminRequired(pool))
		{
			admin.GET("/dashboard", handlers.AdminDashboard(pool))
			admin.GET("/users", handlers.AdminListUsers(pool))
			admin.GET("/users/:id", handlers.AdminGetUser(pool))
			admin.PUT("/users/:id", handlers.AdminUpdateUser(pool))
			admin.DELETE("/users/:id", handlers.AdminDeleteUser(pool))
			admin.GET("/logs", handlers.AdminListLogs(pool))
			admin.GET("/system-info", handlers.AdminSystemInfo(pool))
		}
	}

	return r
}

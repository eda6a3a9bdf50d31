package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opavlenko/finance-manager/internal/budget"
	"github.com/opavlenko/finance-manager/internal/database"
	"github.com/opavlenko/finance-manager/internal/middleware"
	"github.com/opavlenko/finance-manager/internal/validation"
	"github.com/opavlenko/finance-manager/models"
)

func validPeriod(period string) bool {
	return period == models.PeriodWeek || period == models.PeriodMonth || period == models.PeriodYear
}

// attachSpending наповнює обчислювані поля бюджету поточними витратами.
func attachSpending(pool *pgxpool.Pool, b *models.Budget) error {
	spent, err := database.GetSpentForBudget(pool, b.UserID, b.CategoryID, b.StartDate, b.EndDate)
	if err != nil {
		return err
	}
	b.Spent = spent
	b.Remaining = b.Amount.Sub(spent)
	b.Percent = budget.Progress(spent, b.Amount)
	return nil
}

// ListBudgets — GET /api/budgets?period=week|month|year.
func ListBudgets(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		period := c.Query("period")
		if period != "" && !validPeriod(period) {
			c.JSON(http.StatusBadRequest, gin.H{"error": `Period must be "week", "month", or "year"`})
			return
		}
		budgets, err := database.GetBudgetsByUserID(pool, middleware.UserID(c), period)
		if err != nil {
			serverError(c, err)
			return
		}
		for i := range budgets {
			if err := attachSpending(pool, &budgets[i]); err != nil {
				serverError(c, err)
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"budgets": budgets})
	}
}

// CreateBudget — POST /api/budgets. Бюджет створюється лише для власної
// категорії витрат; кінцева дата виводиться з періоду, якщо не передана.
func CreateBudget(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.BudgetCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if req.CategoryID == 0 || req.Amount.IsZero() || req.Period == "" || req.StartDate == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		if !validPeriod(req.Period) {
			c.JSON(http.StatusBadRequest, gin.H{"error": `Period must be "week", "month", or "year"`})
			return
		}
		if msg := validation.Amount(req.Amount.String()); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		userID := middleware.UserID(c)
		category, err := database.GetCategoryByID(pool, req.CategoryID, userID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			serverError(c, err)
			return
		}
		if category.Type != models.CategoryTypeExpense {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Budget can only be created for expense categories"})
			return
		}

		startDate, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
			return
		}
		var endDate time.Time
		if req.EndDate == "" {
			endDate, err = budget.DeriveEndDate(startDate, req.Period)
			if err != nil {
				serverError(c, err)
				return
			}
		} else {
			endDate, err = time.Parse(dateLayout, req.EndDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
				return
			}
		}
		if !endDate.After(startDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "End date must be after start date"})
			return
		}

		b := models.Budget{
			UserID:     userID,
			CategoryID: req.CategoryID,
			Amount:     req.Amount,
			Period:     req.Period,
			StartDate:  startDate,
			EndDate:    endDate,
		}
		if err := database.CreateBudget(pool, &b); err != nil {
			serverError(c, err)
			return
		}
		b.CategoryName = &category.Name
		b.CategoryColor = category.Color
		if err := attachSpending(pool, &b); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Budget created successfully",
			"budget":  b,
		})
	}
}

// GetBudget — GET /api/budgets/:id.
func GetBudget(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := pathID(c)
		if id == 0 {
			return
		}
		b, err := database.GetBudgetByID(pool, id, middleware.UserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
				return
			}
			serverError(c, err)
			return
		}
		if err := attachSpending(pool, b); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"budget": b})
	}
}

// UpdateBudget — PUT /api/budgets/:id. Приймаються лише сума та початкова
// дата; період і кінцева дата після створення незмінні.
func UpdateBudget(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := pathID(c)
		if id == 0 {
			return
		}
		var req models.BudgetUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		userID := middleware.UserID(c)
		b, err := database.GetBudgetByID(pool, id, userID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
				return
			}
			serverError(c, err)
			return
		}

		if req.Amount != nil {
			if msg := validation.Amount(req.Amount.String()); msg != "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": msg})
				return
			}
			b.Amount = *req.Amount
		}
		if req.StartDate != nil {
			startDate, err := time.Parse(dateLayout, *req.StartDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date format. Use YYYY-MM-DD"})
				return
			}
			if !b.EndDate.After(startDate) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "End date must be after start date"})
				return
			}
			b.StartDate = startDate
		}

		if err := database.UpdateBudget(pool, b); err != nil {
			serverError(c, err)
			return
		}
		if err := attachSpending(pool, b); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Budget updated successfully",
			"budget":  b,
		})
	}
}

// DeleteBudget — DELETE /api/budgets/:id.
func DeleteBudget(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := pathID(c)
		if id == 0 {
			return
		}
		if err := database.DeleteBudget(pool, id, middleware.UserID(c)); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
				return
			}
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
	}
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opavlenko/finance-manager/internal/database"
	"github.com/opavlenko/finance-manager/internal/middleware"
	"github.com/opavlenko/finance-manager/internal/validation"
	"github.com/opavlenko/finance-manager/models"
)

const dateLayout = "2006-01-02"

func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format. Use YYYY-MM-DD"})
		return nil, false
	}
	return &t, true
}

// перевіряє належність категорії та збіг її типу з типом транзакції
func checkCategory(c *gin.Context, pool *pgxpool.Pool, userID, categoryID int, txType string) bool {
	category, err := database.GetCategoryByID(pool, categoryID, userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return false
		}
		serverError(c, err)
		return false
	}
	if category.Type != txType {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category type does not match transaction type"})
		return false
	}
	return true
}

// ListTransactions — GET /api/transactions з фільтрами type, category_id,
// start_date, end_date.
func ListTransactions(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := database.TransactionFilter{Type: c.Query("type")}
		if filter.Type != "" && filter.Type != models.CategoryTypeIncome && filter.Type != models.CategoryTypeExpense {
			c.JSON(http.StatusBadRequest, gin.H{"error": `Type must be either "income" or "expense"`})
			return
		}
		if raw := c.Query("category_id"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil || id <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id value"})
				return
			}
			filter.CategoryID = &id
		}
		var ok bool
		if filter.StartDate, ok = parseDateQuery(c, "start_date"); !ok {
			return
		}
		if filter.EndDate, ok = parseDateQuery(c, "end_date"); !ok {
			return
		}

		transactions, err := database.GetTransactionsByUserID(pool, middleware.UserID(c), filter)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"transactions": transactions})
	}
}

// CreateTransaction — POST /api/transactions.
func CreateTransaction(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.TransactionCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if req.Amount.IsZero() || req.Type == "" || req.Date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		if req.Type != models.CategoryTypeIncome && req.Type != models.CategoryTypeExpense {
			c.JSON(http.StatusBadRequest, gin.H{"error": `Type must be either "income" or "expense"`})
			return
		}
		if msg := validation.Amount(req.Amount.String()); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		if msg := validation.Description(req.Description, false); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		date, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
			return
		}

		userID := middleware.UserID(c)
		if req.CategoryID != nil && !checkCategory(c, pool, userID, *req.CategoryID, req.Type) {
			return
		}

		transaction := models.Transaction{
			UserID:      userID,
			CategoryID:  req.CategoryID,
			Amount:      req.Amount,
			Description: req.Description,
			Type:        req.Type,
			Date:        date,
		}
		if err := database.CreateTransaction(pool, &transaction); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":     "Transaction created successfully",
			"transaction": transaction,
		})
	}
}

// GetTransaction — GET /api/transactions/:id.
func GetTransaction(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := pathID(c)
		if id == 0 {
			return
		}
		transaction, err := database.GetTransactionByID(pool, id, middleware.UserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
				return
			}
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"transaction": transaction})
	}
}

// UpdateTransaction — PUT /api/transactions/:id. Тип транзакції незмінний,
// категорію можна міняти лише на категорію того ж типу.
func UpdateTransaction(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := pathID(c)
		if id == 0 {
			return
		}
		var req models.TransactionUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		userID := middleware.UserID(c)
		transaction, err := database.GetTransactionByID(pool, id, userID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
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
			transaction.Amount = *req.Amount
		}
		if req.Description != nil {
			if msg := validation.Description(*req.Description, false); msg != "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": msg})
				return
			}
			transaction.Description = *req.Description
		}
		if req.Date != nil {
			date, err := time.Parse(dateLayout, *req.Date)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
				return
			}
			transaction.Date = date
		}
		if req.CategoryID != nil {
			if !checkCategory(c, pool, userID, *req.CategoryID, transaction.Type) {
				return
			}
			transaction.CategoryID = req.CategoryID
		}

		if err := database.UpdateTransaction(pool, transaction); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":     "Transaction updated successfully",
			"transaction": transaction,
		})
	}
}

// DeleteTransaction — DELETE /api/transactions/:id.
func DeleteTransaction(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := pathID(c)
		if id == 0 {
			return
		}
		if err := database.DeleteTransaction(pool, id, middleware.UserID(c)); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
				return
			}
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
	}
}

// TransactionsSummary — GET /api/transactions/summary?start_date&end_date.
func TransactionsSummary(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ok bool
		var startDate, endDate *time.Time
		if startDate, ok = parseDateQuery(c, "start_date"); !ok {
			return
		}
		if endDate, ok = parseDateQuery(c, "end_date"); !ok {
			return
		}

		summary, err := database.GetSummary(pool, middleware.UserID(c), startDate, endDate)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"summary": summary})
	}
}

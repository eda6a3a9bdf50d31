package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/opavlenko/finance-manager/internal/database"
	"github.com/opavlenko/finance-manager/internal/middleware"
	"github.com/opavlenko/finance-manager/internal/validation"
	"github.com/opavlenko/finance-manager/models"
)

const defaultCurrency = "UAH"

// pathID читає числовий параметр шляху; 0 — помилка вже відправлена.
func pathID(c *gin.Context) int {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0
	}
	return id
}

// ListAccounts — GET /api/accounts?is_active=true|false.
func ListAccounts(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var isActive *bool
		if raw := c.Query("is_active"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid is_active value"})
				return
			}
			isActive = &v
		}
		accounts, err := database.GetAccountsByUserID(pool, middleware.UserID(c), isActive)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"accounts": accounts})
	}
}

// CreateAccount — POST /api/accounts.
func CreateAccount(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AccountCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: name"})
			return
		}
		if msg := validation.AccountName(req.Name); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		account := models.Account{
			UserID:   middleware.UserID(c),
			Name:     req.Name,
			Balance:  decimal.Zero,
			Currency: defaultCurrency,
			IsActive: true,
		}
		if req.Balance != nil {
			account.Balance = *req.Balance
		}
		if req.Currency != nil {
			if msg := validation.Currency(*req.Currency); msg != "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": msg})
				return
			}
			account.Currency = *req.Currency
		}
		if req.IsActive != nil {
			account.IsActive = *req.IsActive
		}

		if err := database.CreateAccount(pool, &account); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Account created successfully",
			"account": account,
		})
	}
}

// GetAccount — GET /api/accounts/:id.
func GetAccount(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := pathID(c)
		if id == 0 {
			return
		}
		account, err := database.GetAccountByID(pool, id, middleware.UserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
				return
			}
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"account": account})
	}
}

// UpdateAccount — PUT /api/accounts/:id, часткове оновлення.
func UpdateAccount(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := pathID(c)
		if id == 0 {
			return
		}
		var req models.AccountUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		account, err := database.GetAccountByID(pool, id, middleware.UserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
				return
			}
			serverError(c, err)
			return
		}

		if req.Name != nil {
			if msg := validation.AccountName(*req.Name); msg != "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": msg})
				return
			}
			account.Name = *req.Name
		}
		if req.Balance != nil {
			account.Balance = *req.Balance
		}
		if req.Currency != nil {
			if msg := validation.Currency(*req.Currency); msg != "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": msg})
				return
			}
			account.Currency = *req.Currency
		}
		if req.IsActive != nil {
			account.IsActive = *req.IsActive
		}

		if err := database.UpdateAccount(pool, account); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Account updated successfully",
			"account": account,
		})
	}
}

// DeleteAccount — DELETE /api/accounts/:id.
func DeleteAccount(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := pathID(c)
		if id == 0 {
			return
		}
		if err := database.DeleteAccount(pool, id, middleware.UserID(c)); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
				return
			}
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
	}
}

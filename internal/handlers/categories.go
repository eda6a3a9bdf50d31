package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opavlenko/finance-manager/internal/database"
	"github.com/opavlenko/finance-manager/internal/middleware"
	"github.com/opavlenko/finance-manager/internal/validation"
	"github.com/opavlenko/finance-manager/models"
)

// ListCategories — GET /api/categories?type=income|expense.
func ListCategories(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryType := c.Query("type")
		if categoryType != "" && categoryType != models.CategoryTypeIncome && categoryType != models.CategoryTypeExpense {
			c.JSON(http.StatusBadRequest, gin.H{"error": `Type must be either "income" or "expense"`})
			return
		}
		categories, err := database.GetCategoriesByUserID(pool, middleware.UserID(c), categoryType)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}

// CreateCategory — POST /api/categories.
func CreateCategory(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CategoryCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if req.Name == "" || req.Type == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		if req.Type != models.CategoryTypeIncome && req.Type != models.CategoryTypeExpense {
			c.JSON(http.StatusBadRequest, gin.H{"error": `Type must be either "income" or "expense"`})
			return
		}
		if msg := validation.CategoryName(req.Name); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		category := models.Category{
			UserID: middleware.UserID(c),
			Name:   req.Name,
			Type:   req.Type,
		}
		if req.Color != nil {
			if msg := validation.Color(*req.Color); msg != "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": msg})
				return
			}
			category.Color = *req.Color
		}

		if err := database.CreateCategory(pool, &category); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":  "Category created successfully",
			"category": category,
		})
	}
}

// GetCategory — GET /api/categories/:id.
func GetCategory(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := pathID(c)
		if id == 0 {
			return
		}
		category, err := database.GetCategoryByID(pool, id, middleware.UserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"category": category})
	}
}

// UpdateCategory — PUT /api/categories/:id. Тип категорії не змінюється.
func UpdateCategory(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := pathID(c)
		if id == 0 {
			return
		}
		var req models.CategoryUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		category, err := database.GetCategoryByID(pool, id, middleware.UserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			serverError(c, err)
			return
		}

		if req.Name != nil {
			if msg := validation.CategoryName(*req.Name); msg != "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": msg})
				return
			}
			category.Name = *req.Name
		}
		if req.Color != nil {
			if msg := validation.Color(*req.Color); msg != "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": msg})
				return
			}
			category.Color = *req.Color
		}

		if err := database.UpdateCategory(pool, category); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":  "Category updated successfully",
			"category": category,
		})
	}
}

// DeleteCategory — DELETE /api/categories/:id. Транзакції категорії
// залишаються без категорії (ON DELETE SET NULL).
func DeleteCategory(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := pathID(c)
		if id == 0 {
			return
		}
		if err := database.DeleteCategory(pool, id, middleware.UserID(c)); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				return
			}
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}

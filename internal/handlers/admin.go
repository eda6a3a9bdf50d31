package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opavlenko/finance-manager/internal/database"
	"github.com/opavlenko/finance-manager/internal/middleware"
	"github.com/opavlenko/finance-manager/internal/validation"
	"github.com/opavlenko/finance-manager/models"
)

// writeAdminLog пише запис у журнал дій; невдача логування не валить запит.
func writeAdminLog(pool *pgxpool.Pool, c *gin.Context, action string, targetType *string, targetID *int, details *string) {
	entry := models.AdminLog{
		AdminID:    middleware.UserID(c),
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    details,
		IPAddress:  c.ClientIP(),
	}
	if err := database.InsertAdminLog(pool, &entry); err != nil {
		log.Printf("не вдалося записати журнал адміністратора: %v", err)
	}
}

func strPtr(s string) *string { return &s }

func pageParams(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	return page, perPage
}

// AdminDashboard — GET /api/admin/dashboard.
func AdminDashboard(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := database.GetDashboardStats(pool)
		if err != nil {
			serverError(c, err)
			return
		}
		writeAdminLog(pool, c, models.ActionViewDashboard, nil, nil, nil)
		c.JSON(http.StatusOK, stats)
	}
}

// AdminListUsers — GET /api/admin/users?page&per_page&search&role.
func AdminListUsers(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, perPage := pageParams(c)
		users, total, err := database.ListUsers(pool, page, perPage, c.Query("search"), c.Query("role"))
		if err != nil {
			serverError(c, err)
			return
		}
		pages := (total + perPage - 1) / perPage
		c.JSON(http.StatusOK, gin.H{
			"users":        users,
			"total":        total,
			"pages":        pages,
			"current_page": page,
		})
	}
}

// AdminGetUser — GET /api/admin/users/:id, користувач + його статистика.
func AdminGetUser(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := pathID(c)
		if id == 0 {
			return
		}
		user, err := database.GetUserByID(pool, id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			serverError(c, err)
			return
		}
		stats, err := database.GetUserStatistics(pool, id)
		if err != nil {
			serverError(c, err)
			return
		}
		writeAdminLog(pool, c, models.ActionViewUserDetails, strPtr("user"), &id, nil)
		c.JSON(http.StatusOK, gin.H{
			"user":       user,
			"statistics": stats,
		})
	}
}

// AdminUpdateUser — PUT /api/admin/users/:id.
func AdminUpdateUser(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := pathID(c)
		if id == 0 {
			return
		}
		var req models.AdminUserUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		user, err := database.GetUserByID(pool, id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			serverError(c, err)
			return
		}

		if req.Username != nil {
			if msg := validation.Username(*req.Username); msg != "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": msg})
				return
			}
			taken, err := database.UsernameExists(pool, *req.Username, id)
			if err != nil {
				serverError(c, err)
				return
			}
			if taken {
				c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
				return
			}
			user.Username = *req.Username
		}
		if req.Email != nil {
			if msg := validation.Email(*req.Email); msg != "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": msg})
				return
			}
			taken, err := database.EmailExists(pool, *req.Email, id)
			if err != nil {
				serverError(c, err)
				return
			}
			if taken {
				c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
				return
			}
			user.Email = *req.Email
		}
		if req.Role != nil {
			if *req.Role != models.RoleUser && *req.Role != models.RoleAdmin {
				c.JSON(http.StatusBadRequest, gin.H{"error": `Role must be either "user" or "admin"`})
				return
			}
			user.Role = *req.Role
		}

		if err := database.UpdateUser(pool, user); err != nil {
			serverError(c, err)
			return
		}
		writeAdminLog(pool, c, models.ActionUpdateUser, strPtr("user"), &id, nil)
		c.JSON(http.StatusOK, gin.H{
			"message": "User updated successfully",
			"user":    user,
		})
	}
}

// AdminDeleteUser — DELETE /api/admin/users/:id. Себе та іншого
// адміністратора видалити не можна.
func AdminDeleteUser(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := pathID(c)
		if id == 0 {
			return
		}
		if id == middleware.UserID(c) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete yourself"})
			return
		}

		user, err := database.GetUserByID(pool, id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			serverError(c, err)
			return
		}
		if user.Role == models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Cannot delete another admin"})
			return
		}

		if err := database.DeleteUser(pool, id); err != nil {
			serverError(c, err)
			return
		}
		writeAdminLog(pool, c, models.ActionDeleteUser, strPtr("user"), &id,
			strPtr(fmt.Sprintf("deleted user %s", user.Username)))
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("User %s deleted successfully", user.Username),
		})
	}
}

// AdminListLogs — GET /api/admin/logs?page&per_page&action.
func AdminListLogs(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, perPage := pageParams(c)
		logs, total, err := database.ListAdminLogs(pool, page, perPage, c.Query("action"))
		if err != nil {
			serverError(c, err)
			return
		}
		pages := (total + perPage - 1) / perPage
		c.JSON(http.StatusOK, gin.H{
			"logs":         logs,
			"total":        total,
			"pages":        pages,
			"current_page": page,
		})
	}
}

// AdminSystemInfo — GET /api/admin/system-info.
func AdminSystemInfo(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, err := database.GetSystemInfo(pool)
		if err != nil {
			serverError(c, err)
			return
		}
		writeAdminLog(pool, c, models.ActionViewSystemInfo, nil, nil, nil)
		c.JSON(http.StatusOK, info)
	}
}

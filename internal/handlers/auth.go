package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/opavlenko/finance-manager/internal/database"
	"github.com/opavlenko/finance-manager/internal/middleware"
	"github.com/opavlenko/finance-manager/internal/validation"
	"github.com/opavlenko/finance-manager/models"
)

const passwordMinLength = 6

// Register — POST /api/auth/register.
func Register(pool *pgxpool.Pool, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if req.Username == "" || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		failures := validation.Form(map[string]string{
			"username": req.Username,
			"email":    req.Email,
			"password": req.Password,
		}, map[string]validation.Validator{
			"username": validation.Username,
			"email":    validation.Email,
			"password": func(v string) string { return validation.Password(v, passwordMinLength) },
		})
		if len(failures) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "errors": failures})
			return
		}

		if taken, err := database.UsernameExists(pool, req.Username, 0); err != nil {
			serverError(c, err)
			return
		} else if taken {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
			return
		}
		if taken, err := database.EmailExists(pool, req.Email, 0); err != nil {
			serverError(c, err)
			return
		} else if taken {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			serverError(c, err)
			return
		}
		user := models.User{
			Username: req.Username,
			Email:    req.Email,
			Password: string(hash),
			Role:     models.RoleUser,
		}
		if err := database.CreateUser(pool, &user); err != nil {
			serverError(c, err)
			return
		}

		token, err := middleware.GenerateToken(user.ID, jwtSecret)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":      "User registered successfully",
			"access_token": token,
			"user":         user,
		})
	}
}

// Login — POST /api/auth/login.
func Login(pool *pgxpool.Pool, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		user, err := database.GetUserByEmail(pool, req.Email)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
				return
			}
			serverError(c, err)
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := middleware.GenerateToken(user.ID, jwtSecret)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":      "Login successful",
			"access_token": token,
			"user":         user,
		})
	}
}

// Me — GET /api/auth/me.
func Me(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := database.GetUserByID(pool, middleware.UserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}

func serverError(c *gin.Context, err error) {
	log.Printf("внутрішня помилка: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/opavlenko/finance-manager/internal/database"
	"github.com/opavlenko/finance-manager/models"
)

// UserIDKey — ключ контексту gin, під яким лежить id автентифікованого користувача.
const UserIDKey = "userID"

const tokenTTL = time.Hour

// GenerateToken видає HS256-токен з id користувача у claim "sub".
func GenerateToken(userID int, secret string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.New("не вдалося підписати токен")
	}
	return signed, nil
}

// ParseToken перевіряє підпис і строк дії токена та повертає id користувача.
func ParseToken(tokenStr, secret string) (int, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("недійсний або протермінований токен")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("недійсні claims токена")
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, errors.New("у токені відсутній claim sub")
	}
	return int(sub), nil
}

// Authenticated вимагає заголовок Authorization: Bearer <token> і кладе
// id користувача в контекст запиту.
func Authenticated(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			return
		}
		userID, err := ParseToken(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID дістає id користувача, покладений Authenticated.
func UserID(c *gin.Context) int {
	return c.GetInt(UserIDKey)
}

// AdminRequired пускає далі лише користувачів із роллю admin.
// Ставиться після Authenticated.
func AdminRequired(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := database.GetUserByID(pool, UserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
				return
			}
			log.Printf("помилка перевірки ролі: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
	"xinquan/internal/db"
	"xinquan/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const CheckUserKey = "user"

const tokenTTL = 30 * 24 * time.Hour

func tokenSecret() []byte {
	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	return []byte(secret)
}

// IssueToken 为用户签发 Bearer token
func IssueToken(user *models.User) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tokenSecret())
}

// LoadUser 解析 Authorization: Bearer 头并把当前用户放进上下文。
// token 无效或用户已不存在时静默跳过，由 AuthRequired 统一拦截。
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			if user := resolveToken(strings.TrimPrefix(auth, "Bearer ")); user != nil {
				c.Set(CheckUserKey, user)
			}
		}
		c.Next()
	}
}

func resolveToken(tokenStr string) *models.User {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return tokenSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil {
		return nil
	}

	var user models.User
	if err := db.DB.First(&user, uint(id)).Error; err != nil {
		return nil
	}
	return &user
}

// AuthRequired ensures a user is authenticated
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ValidateToken rejects requests without a valid bearer token and puts the
// authenticated user's ID into the context as "user_id".
func ValidateToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := userIDFromHeader(c, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}

// OptionalToken sets "user_id" when a valid token is present but lets the
// request through either way. Used on public catalog pages that show
// already-in-cart markers for signed-in visitors.
func OptionalToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, err := userIDFromHeader(c, secret); err == nil {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

func userIDFromHeader(c *gin.Context, secret string) (string, error) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		return "", errors.New("Authorization header is missing")
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("Invalid token claims")
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", errors.New("Invalid token claims")
	}
	return userID, nil
}

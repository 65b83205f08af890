package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/siddarthasubedi1/Electro-ecommerce/config"
	"github.com/siddarthasubedi1/Electro-ecommerce/models"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		fieldErrs := models.ValidateRegistration(input.Email, input.Password, input.FirstName, input.LastName)

		// Taken emails surface as a field error, same as a malformed one
		if _, exists := fieldErrs["email"]; !exists {
			var count int64
			if err := db.Model(&models.User{}).
				Where("email = ?", models.NormalizeEmail(input.Email)).
				Count(&count).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
				return
			}
			if count > 0 {
				fieldErrs["email"] = "An account with this email already exists"
			}
		}

		if len(fieldErrs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
			return
		}

		user, err := models.NewUser(input.Email, input.Password, input.FirstName, input.LastName)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}
		if err := db.Create(user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		c.JSON(http.StatusCreated, user)
	}
}

// POST /auth/login
func Login(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// One generic message for every failure mode so the response never
		// reveals whether the email exists.
		var user models.User
		err := db.Where("email = ?", models.NormalizeEmail(input.Email)).First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Email or password is invalid"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			}
			return
		}
		if !user.IsActive || !user.CheckPassword(input.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Email or password is invalid"})
			return
		}

		token, err := IssueToken(user.ID, cfg.JWTSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

// IssueToken signs a session token carrying the user's ID.
func IssueToken(userID, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

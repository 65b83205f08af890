package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&User{}, &Category{}, &Tag{}, &Product{}, &Cart{}, &CartItem{}))
	return db
}

func TestNewUserNormalizesEmailAndHashesPassword(t *testing.T) {
	user, err := NewUser("  John.Doe@Example.COM ", "Secret123", "John", "Doe")
	require.NoError(t, err)

	assert.Equal(t, "john.doe@example.com", user.Email)
	assert.NotEmpty(t, user.ID)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "Secret123", user.PasswordHash)
	assert.True(t, user.CheckPassword("Secret123"))
	assert.False(t, user.CheckPassword("secret123"))
}

func TestBeforeSaveForcesLowercaseEmail(t *testing.T) {
	db := setupTestDB(t)

	user, err := NewUser("first@example.com", "Secret123", "Jane", "Roe")
	require.NoError(t, err)
	require.NoError(t, db.Create(user).Error)

	// Mutate the field directly, bypassing the factory
	user.Email = "CHANGED@Example.COM"
	require.NoError(t, db.Save(user).Error)

	var stored User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, "changed@example.com", stored.Email)
}

func TestValidateRegistration(t *testing.T) {
	cases := []struct {
		name      string
		email     string
		password  string
		firstName string
		lastName  string
		wantField string
	}{
		{"valid", "jane@example.com", "Secret123", "Jane", "Roe", ""},
		{"missing email", "", "Secret123", "Jane", "Roe", "email"},
		{"malformed email", "not-an-email", "Secret123", "Jane", "Roe", "email"},
		{"too short", "jane@example.com", "Ab1", "Jane", "Roe", "password"},
		{"entirely numeric", "jane@example.com", "12345678", "Jane", "Roe", "password"},
		{"common password", "jane@example.com", "password123", "Jane", "Roe", "password"},
		{"similar to first name", "jane@example.com", "jonathan99", "Jonathan", "Roe", "password"},
		{"similar to email local part", "jane.roe@example.com", "jane.roe1", "Amy", "Smith", "password"},
		{"missing first name", "jane@example.com", "Secret123", "", "Roe", "first_name"},
		{"missing last name", "jane@example.com", "Secret123", "Jane", "", "last_name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidateRegistration(tc.email, tc.password, tc.firstName, tc.lastName)
			if tc.wantField == "" {
				assert.Empty(t, errs)
			} else {
				assert.Contains(t, errs, tc.wantField)
			}
		})
	}
}

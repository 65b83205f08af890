package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	IsStaff      bool      `gorm:"default:false" json:"-"`
	IsSuperuser  bool      `gorm:"default:false" json:"-"`
	DateJoined   time.Time `json:"date_joined"`
	Cart         *Cart     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// NewUser builds a registered user: email lower-cased, password hashed.
func NewUser(email, password, firstName, lastName string) (*User, error) {
	user := &User{
		ID:         uuid.NewString(),
		Email:      NormalizeEmail(email),
		FirstName:  firstName,
		LastName:   lastName,
		IsActive:   true,
		DateJoined: time.Now(),
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	return user, nil
}

// NormalizeEmail lower-cases an email so lookups and the unique index agree
// regardless of how the caller typed it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// BeforeSave re-forces the lowercase invariant even when a caller mutates
// Email directly instead of going through NewUser.
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Email = NormalizeEmail(u.Email)
	return nil
}

func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

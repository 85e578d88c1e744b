package models

import (
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Username  string  `gorm:"type:varchar(150);index:uniq_username,unique;not null"`
	FirstName string  `gorm:"type:varchar(150)"`
	LastName  string  `gorm:"type:varchar(150)"`
	Email     string  `gorm:"type:varchar(254)"`
	Password  string  `gorm:"type:varchar(128)"`
	Grants    []Grant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

const UsernameMaxLength = 150

func (u *User) SetPassword(plainTextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

func (u *User) CheckPassword(plainTextPassword string) bool {
	if u.Password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plainTextPassword)) == nil
}

// FullName returns "First Last", falling back to the username
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

func (u *User) String() string {
	return u.Username
}

func (u *User) HasPermission(required Permission) bool {
	for _, permission := range u.Grants {
		if permission.Permission == required {
			return true
		}
	}
	return false
}

func (u *User) HasPermissions(required []Permission) bool {
	for _, permission := range required {
		if !u.HasPermission(permission) {
			return false
		}
	}
	return true
}

var usernameRegexp = regexp.MustCompile(`^[\w.@+-]+$`)

// ValidUsername reports whether s only has letters, digits and @/./+/-/_
func ValidUsername(s string) bool {
	return len(s) <= UsernameMaxLength && usernameRegexp.MatchString(s)
}

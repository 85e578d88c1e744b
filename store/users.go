package store

import (
	"context"
	"errors"
	"fmt"

	"yatube/models"

	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (u *Users) ByID(ctx context.Context, id uint64) (*models.User, error) {
	user := models.User{}
	if err := u.db.WithContext(ctx).Preload("Grants").First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (u *Users) ByUsername(ctx context.Context, username string) (*models.User, error) {
	user := models.User{}
	if err := u.db.WithContext(ctx).Preload("Grants").Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Create hashes the password and inserts the user, failing with
// ErrAlreadyExists when the username is taken
func (u *Users) Create(ctx context.Context, user *models.User, plainTextPassword string) error {
	if err := user.SetPassword(plainTextPassword); err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
			return fmt.Errorf("check username: %w", err)
		}
		if count > 0 {
			return ErrAlreadyExists
		}
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
}

// Authenticate returns the user matching the credentials, or ErrNotFound
func (u *Users) Authenticate(ctx context.Context, username, plainTextPassword string) (*models.User, error) {
	user, err := u.ByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !user.CheckPassword(plainTextPassword) {
		return nil, ErrNotFound
	}
	return user, nil
}

// Delete removes the user together with everything they authored
func (u *Users) Delete(ctx context.Context, id uint64) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return fmt.Errorf("delete posts of user %d: %w", id, err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Grant{}).Error; err != nil {
			return fmt.Errorf("delete grants of user %d: %w", id, err)
		}
		result := tx.Delete(&models.User{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete user %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// EnsureAdmin creates the user if needed, resets its password and grants PermissionAdmin
func (u *Users) EnsureAdmin(ctx context.Context, username, plainTextPassword string) (*models.User, error) {
	user, err := u.ByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		user = &models.User{Username: username}
		if err = u.Create(ctx, user, plainTextPassword); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	} else {
		if err = user.SetPassword(plainTextPassword); err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		if err = u.db.WithContext(ctx).Model(user).Update("password", user.Password).Error; err != nil {
			return nil, fmt.Errorf("update admin password: %w", err)
		}
	}
	if user.HasPermission(models.PermissionAdmin) {
		return user, nil
	}
	grant := models.Grant{UserID: user.ID, Permission: models.PermissionAdmin}
	if err = u.db.WithContext(ctx).Omit("User").Create(&grant).Error; err != nil {
		return nil, fmt.Errorf("grant admin: %w", err)
	}
	user.Grants = append(user.Grants, grant)
	return user, nil
}

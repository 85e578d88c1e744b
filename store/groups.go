package store

import (
	"context"
	"fmt"

	"yatube/models"

	"gorm.io/gorm"
)

type Groups struct {
	db *gorm.DB
}

func NewGroups(db *gorm.DB) *Groups {
	return &Groups{db: db}
}

func (g *Groups) All(ctx context.Context) ([]models.Group, error) {
	groups := []models.Group{}
	if err := g.db.WithContext(ctx).Order("title ASC").Order("id ASC").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

func (g *Groups) ByID(ctx context.Context, id uint64) (*models.Group, error) {
	group := models.Group{}
	if err := g.db.WithContext(ctx).First(&group, id).Error; err != nil {
		return nil, translate(err)
	}
	return &group, nil
}

func (g *Groups) BySlug(ctx context.Context, slug string) (*models.Group, error) {
	group := models.Group{}
	if err := g.db.WithContext(ctx).Where("slug = ?", slug).First(&group).Error; err != nil {
		return nil, translate(err)
	}
	return &group, nil
}

// Create inserts a new group, failing with ErrAlreadyExists when the slug is taken
func (g *Groups) Create(ctx context.Context, group *models.Group) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Group{}).Where("slug = ?", group.Slug).Count(&count).Error; err != nil {
			return fmt.Errorf("check slug: %w", err)
		}
		if count > 0 {
			return ErrAlreadyExists
		}
		if err := tx.Create(group).Error; err != nil {
			return fmt.Errorf("create group: %w", err)
		}
		return nil
	})
}

// Delete removes the group. Its posts are kept and detached from it.
func (g *Groups) Delete(ctx context.Context, id uint64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Post{}).
			Where("group_id = ?", id).
			Update("group_id", nil).Error
		if err != nil {
			return fmt.Errorf("detach posts from group %d: %w", id, err)
		}
		result := tx.Delete(&models.Group{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete group %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

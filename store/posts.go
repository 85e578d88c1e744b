package store

import (
	"context"
	"fmt"

	"yatube/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostFilter narrows a post query. Zero values mean "any".
type PostFilter struct {
	GroupID  uint64
	AuthorID uint64
}

type Posts struct {
	db *gorm.DB
}

func NewPosts(db *gorm.DB) *Posts {
	return &Posts{db: db}
}

func (p *Posts) scoped(ctx context.Context, filter PostFilter) *gorm.DB {
	tx := p.db.WithContext(ctx).Model(&models.Post{})
	if filter.GroupID != 0 {
		tx = tx.Where("group_id = ?", filter.GroupID)
	}
	if filter.AuthorID != 0 {
		tx = tx.Where("author_id = ?", filter.AuthorID)
	}
	return tx
}

func (p *Posts) Count(ctx context.Context, filter PostFilter) (int64, error) {
	var count int64
	if err := p.scoped(ctx, filter).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

// List returns the matching posts, newest first. Posts published at the same
// time keep their insertion order (newest first as well).
func (p *Posts) List(ctx context.Context, filter PostFilter, offset, limit int) ([]models.Post, error) {
	posts := []models.Post{}
	err := p.scoped(ctx, filter).
		Preload("Author").
		Preload("Group").
		Order("pub_date DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (p *Posts) Get(ctx context.Context, id uint64) (*models.Post, error) {
	post := models.Post{}
	err := p.db.WithContext(ctx).Preload("Author").Preload("Group").First(&post, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

// Create inserts the post row only, the author and group must already exist
func (p *Posts) Create(ctx context.Context, post *models.Post) error {
	if err := p.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error; err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

// Update persists the editable columns (text and group) in a single statement.
// Author and publication date are never written.
func (p *Posts) Update(ctx context.Context, post *models.Post) error {
	result := p.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"text":     post.Text,
			"group_id": post.GroupID,
		})
	if result.Error != nil {
		return fmt.Errorf("update post %d: %w", post.ID, result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}
	// MySQL reports zero affected rows when the values did not change
	var count int64
	if err := p.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", post.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("update post %d: %w", post.ID, err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

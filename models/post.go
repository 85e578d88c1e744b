package models

import "time"

type Post struct {
	ID       uint64    `gorm:"primaryKey"`
	Text     string    `gorm:"type:text;not null"`
	PubDate  time.Time `gorm:"index;not null"` // set once, never updated
	AuthorID uint64    `gorm:"index;not null"`
	Author   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID  *uint64   `gorm:"index"` // can be null
	Group    *Group    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

const postPreviewLength = 15

// String returns the first characters of the text, used in admin listings
func (p *Post) String() string {
	runes := []rune(p.Text)
	if len(runes) > postPreviewLength {
		runes = runes[:postPreviewLength]
	}
	return string(runes)
}

// IsAuthor reports whether the post belongs to the user with the given ID
func (p *Post) IsAuthor(userID uint64) bool {
	return userID != 0 && p.AuthorID == userID
}

package models

import "regexp"

type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	Title       string `gorm:"type:varchar(200);not null"`
	Slug        string `gorm:"type:varchar(50);index:uniq_slug,unique;not null"`
	Description string `gorm:"type:text;not null"`
}

const (
	GroupTitleMaxLength = 200
	GroupSlugMaxLength  = 50
)

var slugRegexp = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// ValidSlug reports whether s only has letters, digits, hyphens and underscores
func ValidSlug(s string) bool {
	return len(s) <= GroupSlugMaxLength && slugRegexp.MatchString(s)
}

func (g *Group) String() string {
	return g.Title
}

package models

import "gorm.io/gorm"

// Migrate creates or updates the tables, parents first
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Grant{},
		&Group{},
		&Post{},
	)
}

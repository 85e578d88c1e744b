package models

type Permission uint8

const (
	PermissionNone  Permission = 0
	PermissionAdmin Permission = 1 // manage groups and users
)

type Grant struct {
	ID         uint64 `gorm:"primaryKey"`
	CreatedAt  int64
	UserID     uint64     `gorm:"index:user_permission,unique;not null"`
	User       User       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Permission Permission `gorm:"index:user_permission,unique"`
}

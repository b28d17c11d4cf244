package db_models

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey"`
	Username     string     `gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string     `gorm:"size:200;not null"`
	Role         UserRole   `gorm:"not null;default:2"`
	IsActive     bool       `gorm:"not null;default:true"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	LastLoginAt  *time.Time
}

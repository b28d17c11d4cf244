package db_models

import "time"

// AuditLog is an append-only trail of actions performed on entities.
// PerformedByUserID is nil for anonymous actions such as public submission
// intake.
type AuditLog struct {
	ID                uint      `gorm:"primaryKey"`
	EntityType        string    `gorm:"size:50;not null"`
	EntityID          uint      `gorm:"not null"`
	Action            string    `gorm:"size:50;not null"`
	Details           *string
	PerformedByUserID *uint
	PerformedBy       *User     `gorm:"foreignKey:PerformedByUserID"`
	Timestamp         time.Time `gorm:"autoCreateTime"`
}

package db_models

import "time"

// Submission is an unreviewed, publicly-authored candidate place awaiting
// moderation. It is independent of Place; approval is a separate workflow.
// SubmitterIPAddress is recorded at creation and never exposed to the
// public submitter.
type Submission struct {
	ID                 uint             `gorm:"primaryKey"`
	Name               string           `gorm:"size:200;not null"`
	Municipality       string           `gorm:"size:100;not null"`
	CategoryID         uint             `gorm:"not null;index"`
	Category           Category
	Address            *string          `gorm:"size:300"`
	Description        *string          `gorm:"size:2000"`
	LandmarkDirections *string          `gorm:"size:1000"`
	Latitude           *float64
	Longitude          *float64
	Tags               *string          `gorm:"size:500"`
	Status             SubmissionStatus `gorm:"not null;default:1;index"`
	ReviewNotes        *string          `gorm:"size:1000"`
	ReviewedByUserID   *uint
	ReviewedBy         *User            `gorm:"foreignKey:ReviewedByUserID"`
	ReviewedAt         *time.Time
	SubmitterEmail     *string          `gorm:"size:100"`
	SubmitterIPAddress *string          `gorm:"size:45"`
	CreatedAt          time.Time        `gorm:"autoCreateTime"`
}

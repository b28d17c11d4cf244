package db_models

import "time"

// Place is a reviewed, publicly visible point of interest. Embedding holds
// the binary-encoded float32 vector (4 bytes per component) and may be nil
// when no embedding has been generated yet.
type Place struct {
	ID                 uint        `gorm:"primaryKey"`
	Name               string      `gorm:"size:200;not null"`
	Municipality       string      `gorm:"size:100;not null;index"`
	CategoryID         uint        `gorm:"not null;index"`
	Category           Category
	Address            *string     `gorm:"size:300"`
	Description        *string     `gorm:"size:2000"`
	LandmarkDirections *string     `gorm:"size:1000"`
	Latitude           *float64
	Longitude          *float64
	Tags               *string     `gorm:"size:500"`
	Embedding          []byte      `gorm:"type:bytea"`
	Status             PlaceStatus `gorm:"not null;default:1;index"`
	CreatedByUserID    *uint
	CreatedBy          *User       `gorm:"foreignKey:CreatedByUserID"`
	CreatedAt          time.Time   `gorm:"autoCreateTime"`
	UpdatedAt          time.Time   `gorm:"autoUpdateTime"`
}

func (p *Place) HasEmbedding() bool {
	return len(p.Embedding) > 0
}

package response_models

import "time"

// SubmissionResponse is returned to the public submitter after intake.
// The submitter IP is deliberately absent.
type SubmissionResponse struct {
	ID                 uint      `json:"id"`
	Name               string    `json:"name"`
	Municipality       string    `json:"municipality"`
	CategoryID         uint      `json:"categoryId"`
	CategoryName       string    `json:"categoryName"`
	Address            *string   `json:"address"`
	Description        *string   `json:"description"`
	LandmarkDirections *string   `json:"landmarkDirections"`
	Latitude           *float64  `json:"latitude"`
	Longitude          *float64  `json:"longitude"`
	Tags               *string   `json:"tags"`
	Status             string    `json:"status"`
	ReviewNotes        *string   `json:"reviewNotes"`
	CreatedAt          time.Time `json:"createdAt"`
}

// SubmissionListResponse is the admin list shape.
type SubmissionListResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Municipality   string    `json:"municipality"`
	CategoryName   string    `json:"categoryName"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	SubmitterEmail *string   `json:"submitterEmail"`
}

// SubmissionDetailResponse is the full admin view including reviewer and
// submitter metadata.
type SubmissionDetailResponse struct {
	ID                 uint       `json:"id"`
	Name               string     `json:"name"`
	Municipality       string     `json:"municipality"`
	CategoryID         uint       `json:"categoryId"`
	CategoryName       string     `json:"categoryName"`
	Address            *string    `json:"address"`
	Description        *string    `json:"description"`
	LandmarkDirections *string    `json:"landmarkDirections"`
	Latitude           *float64   `json:"latitude"`
	Longitude          *float64   `json:"longitude"`
	Tags               *string    `json:"tags"`
	Status             string     `json:"status"`
	ReviewNotes        *string    `json:"reviewNotes"`
	ReviewedByUserID   *uint      `json:"reviewedByUserId"`
	ReviewedByUsername *string    `json:"reviewedByUsername"`
	ReviewedAt         *time.Time `json:"reviewedAt"`
	SubmitterEmail     *string    `json:"submitterEmail"`
	SubmitterIPAddress *string    `json:"submitterIpAddress"`
	CreatedAt          time.Time  `json:"createdAt"`
}

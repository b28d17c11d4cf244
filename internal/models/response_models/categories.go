package response_models

import "time"

type CategoryResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CategoryDetailResponse augments a category with live counts computed at
// call time.
type CategoryDetailResponse struct {
	ID                      uint      `json:"id"`
	Name                    string    `json:"name"`
	Description             *string   `json:"description"`
	ApprovedPlacesCount     int64     `json:"approvedPlacesCount"`
	PendingSubmissionsCount int64     `json:"pendingSubmissionsCount"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

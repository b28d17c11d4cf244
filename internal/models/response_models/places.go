package response_models

import "time"

// PlaceListResponse is the public list shape. The embedding itself is
// never exposed, only whether one exists.
type PlaceListResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Municipality string `json:"municipality"`
	CategoryName string `json:"categoryName"`
	HasEmbedding bool   `json:"hasEmbedding"`
}

type PlaceResponse struct {
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
	CreatedAt          time.Time `json:"createdAt"`
}

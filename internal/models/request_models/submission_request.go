package request_models

type CreateSubmissionRequest struct {
	Name               string   `json:"name"`
	Municipality       string   `json:"municipality"`
	CategoryID         int      `json:"categoryId"`
	Address            *string  `json:"address"`
	Description        *string  `json:"description"`
	LandmarkDirections *string  `json:"landmarkDirections"`
	Latitude           *float64 `json:"latitude"`
	Longitude          *float64 `json:"longitude"`
	Tags               *string  `json:"tags"`
	SubmitterEmail     *string  `json:"submitterEmail"`
}

package response_models

// SimilarPlaceResult is one neighbor from the brute-force similarity scan.
type SimilarPlaceResult struct {
	PlaceID         uint    `json:"placeId"`
	PlaceName       string  `json:"placeName"`
	Municipality    string  `json:"municipality"`
	Description     *string `json:"description"`
	SimilarityScore float64 `json:"similarityScore"`
}

// EmbeddingStatistics summarizes embedding coverage across all places.
type EmbeddingStatistics struct {
	TotalPlaces             int64 `json:"totalPlaces"`
	PlacesWithEmbeddings    int   `json:"placesWithEmbeddings"`
	PlacesWithoutEmbeddings int64 `json:"placesWithoutEmbeddings"`
	AverageEmbeddingBytes   int   `json:"averageEmbeddingSizeBytes"`
	MinEmbeddingBytes       int   `json:"minEmbeddingSizeBytes"`
	MaxEmbeddingBytes       int   `json:"maxEmbeddingSizeBytes"`
	EstimatedDimensions     int   `json:"estimatedDimensions"`
}

package services

import (
	"context"
	"log"
	"sort"

	"oksimin/internal/models/response_models"
	"oksimin/internal/repositories"
	"oksimin/pkg/utils"
	"oksimin/pkg/vector"
)

type VectorServiceInterface interface {
	FindSimilar(placeID uint, topK int, ctx context.Context) ([]response_models.SimilarPlaceResult, error)
	Statistics(ctx context.Context) (response_models.EmbeddingStatistics, error)
}

type VectorService struct {
	placeRepo repositories.PlaceRepository
}

func NewVectorService(placeRepo repositories.PlaceRepository) VectorServiceInterface {
	return &VectorService{placeRepo: placeRepo}
}

// FindSimilar runs an unindexed full scan over every embedded place and
// scores it against the query place. O(n) in the number of embedded
// places — fine at prototype scale, a known limit beyond it.
func (s *VectorService) FindSimilar(placeID uint, topK int, ctx context.Context) ([]response_models.SimilarPlaceResult, error) {
	queryPlace, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		log.Printf("Error fetching place %d: %v", placeID, err)
		return nil, utils.ErrDatabaseError
	}

	if queryPlace == nil || !queryPlace.HasEmbedding() {
		return nil, utils.ErrNoEmbedding
	}

	queryVector, err := vector.BytesToFloats(queryPlace.Embedding)
	if err != nil {
		log.Printf("Malformed embedding on place %d: %v", placeID, err)
		return nil, utils.ErrDatabaseError
	}

	candidates, err := s.placeRepo.ListEmbedded(ctx)
	if err != nil {
		log.Printf("Error listing embedded places: %v", err)
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.SimilarPlaceResult, 0, len(candidates))
	for _, place := range candidates {
		if place.ID == placeID {
			continue
		}

		candidateVector, err := vector.BytesToFloats(place.Embedding)
		if err != nil {
			log.Printf("Skipping place %d with malformed embedding: %v", place.ID, err)
			continue
		}

		score, err := vector.CosineSimilarity(queryVector, candidateVector)
		if err != nil {
			log.Printf("Skipping place %d: %v", place.ID, err)
			continue
		}

		results = append(results, response_models.SimilarPlaceResult{
			PlaceID:         place.ID,
			PlaceName:       place.Name,
			Municipality:    place.Municipality,
			Description:     place.Description,
			SimilarityScore: score,
		})
	}

	// Stable: ties keep storage order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SimilarityScore > results[j].SimilarityScore
	})

	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

func (s *VectorService) Statistics(ctx context.Context) (response_models.EmbeddingStatistics, error) {
	total, err := s.placeRepo.Count(ctx)
	if err != nil {
		log.Printf("Error counting places: %v", err)
		return response_models.EmbeddingStatistics{}, utils.ErrDatabaseError
	}

	embedded, err := s.placeRepo.ListEmbedded(ctx)
	if err != nil {
		log.Printf("Error listing embedded places: %v", err)
		return response_models.EmbeddingStatistics{}, utils.ErrDatabaseError
	}

	stats := response_models.EmbeddingStatistics{
		TotalPlaces:             total,
		PlacesWithEmbeddings:    len(embedded),
		PlacesWithoutEmbeddings: total - int64(len(embedded)),
	}

	if len(embedded) > 0 {
		sum := 0
		stats.MinEmbeddingBytes = len(embedded[0].Embedding)
		for _, place := range embedded {
			size := len(place.Embedding)
			sum += size
			if size < stats.MinEmbeddingBytes {
				stats.MinEmbeddingBytes = size
			}
			if size > stats.MaxEmbeddingBytes {
				stats.MaxEmbeddingBytes = size
			}
		}
		stats.AverageEmbeddingBytes = sum / len(embedded)
		stats.EstimatedDimensions = stats.AverageEmbeddingBytes / 4
	}

	return stats, nil
}

package services

import (
	"context"
	"log"
	"strings"

	"oksimin/internal/models/db_models"
	"oksimin/internal/models/response_models"
	"oksimin/internal/repositories"
	"oksimin/pkg/utils"
)

type PlaceServiceInterface interface {
	ListApproved(ctx context.Context) ([]response_models.PlaceListResponse, error)
	GetByID(id uint, ctx context.Context) (response_models.PlaceResponse, error)
	ListByMunicipality(municipality string, ctx context.Context) ([]response_models.PlaceListResponse, error)
	ListByCategory(categoryID uint, ctx context.Context) ([]response_models.PlaceListResponse, error)
	Search(term string, ctx context.Context) ([]response_models.PlaceListResponse, error)
}

type PlaceService struct {
	placeRepo    repositories.PlaceRepository
	categoryRepo repositories.CategoryRepository
}

func NewPlaceService(
	placeRepo repositories.PlaceRepository,
	categoryRepo repositories.CategoryRepository) PlaceServiceInterface {
	return &PlaceService{
		placeRepo:    placeRepo,
		categoryRepo: categoryRepo,
	}
}

func toPlaceList(places []db_models.Place) []response_models.PlaceListResponse {
	responses := make([]response_models.PlaceListResponse, 0, len(places))
	for _, place := range places {
		responses = append(responses, response_models.PlaceListResponse{
			ID:           place.ID,
			Name:         place.Name,
			Municipality: place.Municipality,
			CategoryName: place.Category.Name,
			HasEmbedding: place.HasEmbedding(),
		})
	}
	return responses
}

func (s *PlaceService) ListApproved(ctx context.Context) ([]response_models.PlaceListResponse, error) {
	places, err := s.placeRepo.ListApproved(ctx)
	if err != nil {
		log.Printf("Error listing places: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return toPlaceList(places), nil
}

func (s *PlaceService) GetByID(id uint, ctx context.Context) (response_models.PlaceResponse, error) {
	place, err := s.placeRepo.GetApprovedByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching place %d: %v", id, err)
		return response_models.PlaceResponse{}, utils.ErrDatabaseError
	}

	if place == nil {
		return response_models.PlaceResponse{}, utils.ErrPlaceNotFound
	}

	return response_models.PlaceResponse{
		ID:                 place.ID,
		Name:               place.Name,
		Municipality:       place.Municipality,
		CategoryID:         place.CategoryID,
		CategoryName:       place.Category.Name,
		Address:            place.Address,
		Description:        place.Description,
		LandmarkDirections: place.LandmarkDirections,
		Latitude:           place.Latitude,
		Longitude:          place.Longitude,
		Tags:               place.Tags,
		CreatedAt:          place.CreatedAt,
	}, nil
}

// ListByMunicipality is deliberately permissive: the name is not checked
// against the municipality list, so an unknown name yields an empty list
// rather than an error.
func (s *PlaceService) ListByMunicipality(municipality string, ctx context.Context) ([]response_models.PlaceListResponse, error) {
	places, err := s.placeRepo.ListApprovedByMunicipality(ctx, municipality)
	if err != nil {
		log.Printf("Error listing places in %s: %v", municipality, err)
		return nil, utils.ErrDatabaseError
	}
	return toPlaceList(places), nil
}

func (s *PlaceService) ListByCategory(categoryID uint, ctx context.Context) ([]response_models.PlaceListResponse, error) {
	exists, err := s.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		log.Printf("Error checking category %d: %v", categoryID, err)
		return nil, utils.ErrDatabaseError
	}
	if !exists {
		return nil, utils.ErrCategoryNotFound
	}

	places, err := s.placeRepo.ListApprovedByCategory(ctx, categoryID)
	if err != nil {
		log.Printf("Error listing places in category %d: %v", categoryID, err)
		return nil, utils.ErrDatabaseError
	}
	return toPlaceList(places), nil
}

// Search matches the term case-insensitively against name, description
// and tags. A blank term is a validation failure; an empty result set is
// a success.
func (s *PlaceService) Search(term string, ctx context.Context) ([]response_models.PlaceListResponse, error) {
	if strings.TrimSpace(term) == "" {
		return nil, utils.ErrEmptySearchTerm
	}

	places, err := s.placeRepo.SearchApproved(ctx, term)
	if err != nil {
		log.Printf("Error searching places with term %q: %v", term, err)
		return nil, utils.ErrDatabaseError
	}
	return toPlaceList(places), nil
}

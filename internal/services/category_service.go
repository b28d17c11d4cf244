package services

import (
	"context"
	"log"

	"oksimin/internal/models/response_models"
	"oksimin/internal/repositories"
	"oksimin/pkg/utils"
)

type CategoryServiceInterface interface {
	ListAll(ctx context.Context) ([]response_models.CategoryResponse, error)
	GetByID(id uint, ctx context.Context) (response_models.CategoryResponse, error)
	GetDetail(id uint, ctx context.Context) (response_models.CategoryDetailResponse, error)
}

type CategoryService struct {
	categoryRepo   repositories.CategoryRepository
	placeRepo      repositories.PlaceRepository
	submissionRepo repositories.SubmissionRepository
}

func NewCategoryService(
	categoryRepo repositories.CategoryRepository,
	placeRepo repositories.PlaceRepository,
	submissionRepo repositories.SubmissionRepository) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo:   categoryRepo,
		placeRepo:      placeRepo,
		submissionRepo: submissionRepo,
	}
}

func (s *CategoryService) ListAll(ctx context.Context) ([]response_models.CategoryResponse, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, response_models.CategoryResponse{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
		})
	}
	return responses, nil
}

func (s *CategoryService) GetByID(id uint, ctx context.Context) (response_models.CategoryResponse, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching category %d: %v", id, err)
		return response_models.CategoryResponse{}, utils.ErrDatabaseError
	}

	if category == nil {
		return response_models.CategoryResponse{}, utils.ErrCategoryNotFound
	}

	return response_models.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}, nil
}

// GetDetail augments the category with live counts. The counts are
// computed per call, never cached or denormalized.
func (s *CategoryService) GetDetail(id uint, ctx context.Context) (response_models.CategoryDetailResponse, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching category %d: %v", id, err)
		return response_models.CategoryDetailResponse{}, utils.ErrDatabaseError
	}

	if category == nil {
		return response_models.CategoryDetailResponse{}, utils.ErrCategoryNotFound
	}

	approvedPlaces, err := s.placeRepo.CountApprovedByCategory(ctx, id)
	if err != nil {
		log.Printf("Error counting approved places for category %d: %v", id, err)
		return response_models.CategoryDetailResponse{}, utils.ErrDatabaseError
	}

	pendingSubmissions, err := s.submissionRepo.CountPendingByCategory(ctx, id)
	if err != nil {
		log.Printf("Error counting pending submissions for category %d: %v", id, err)
		return response_models.CategoryDetailResponse{}, utils.ErrDatabaseError
	}

	return response_models.CategoryDetailResponse{
		ID:                      category.ID,
		Name:                    category.Name,
		Description:             category.Description,
		ApprovedPlacesCount:     approvedPlaces,
		PendingSubmissionsCount: pendingSubmissions,
		CreatedAt:               category.CreatedAt,
		UpdatedAt:               category.UpdatedAt,
	}, nil
}

package services

import (
	"context"
	"log"
	"strings"
	"time"

	"oksimin/internal/models/db_models"
	"oksimin/internal/models/request_models"
	"oksimin/internal/models/response_models"
	"oksimin/internal/repositories"
	"oksimin/pkg/utils"
)

type SubmissionServiceInterface interface {
	Create(req request_models.CreateSubmissionRequest, submitterIP *string, ctx context.Context) (response_models.SubmissionResponse, error)
	GetPendingCount(ctx context.Context) (int64, error)
	GetByID(id uint, ctx context.Context) (response_models.SubmissionDetailResponse, error)
	ListByStatus(status *db_models.SubmissionStatus, ctx context.Context) ([]response_models.SubmissionListResponse, error)
}

type SubmissionService struct {
	submissionRepo repositories.SubmissionRepository
	categoryRepo   repositories.CategoryRepository
	auditRepo      repositories.AuditLogRepository
}

func NewSubmissionService(
	submissionRepo repositories.SubmissionRepository,
	categoryRepo repositories.CategoryRepository,
	auditRepo repositories.AuditLogRepository) SubmissionServiceInterface {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		categoryRepo:   categoryRepo,
		auditRepo:      auditRepo,
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

// Create stores a public submission as Pending. The referenced category
// must exist; structural field validation happens before this in the
// controller. The submission row is the single atomic write — the audit
// trail entry is best effort.
func (s *SubmissionService) Create(req request_models.CreateSubmissionRequest, submitterIP *string, ctx context.Context) (response_models.SubmissionResponse, error) {
	exists, err := s.categoryRepo.Exists(ctx, uint(req.CategoryID))
	if err != nil {
		log.Printf("Error checking category %d: %v", req.CategoryID, err)
		return response_models.SubmissionResponse{}, utils.ErrDatabaseError
	}
	if !exists {
		log.Printf("Invalid category %d on submission %q", req.CategoryID, req.Name)
		return response_models.SubmissionResponse{}, utils.ErrInvalidCategory
	}

	// Store the canonical municipality spelling regardless of the casing
	// the submitter used.
	municipality := strings.TrimSpace(req.Municipality)
	if canonical := utils.CanonicalMunicipality(municipality); canonical != "" {
		municipality = canonical
	}

	submission := &db_models.Submission{
		Name:               strings.TrimSpace(req.Name),
		Municipality:       municipality,
		CategoryID:         uint(req.CategoryID),
		Address:            trimPtr(req.Address),
		Description:        trimPtr(req.Description),
		LandmarkDirections: trimPtr(req.LandmarkDirections),
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		Tags:               trimPtr(req.Tags),
		SubmitterEmail:     trimPtr(req.SubmitterEmail),
		SubmitterIPAddress: submitterIP,
		Status:             db_models.SubmissionPending,
		CreatedAt:          time.Now().UTC(),
	}

	id, err := s.submissionRepo.Create(ctx, submission)
	if err != nil {
		log.Printf("Error creating submission %q in %s: %v", req.Name, req.Municipality, err)
		return response_models.SubmissionResponse{}, utils.ErrDatabaseError
	}

	category, err := s.categoryRepo.GetByID(ctx, submission.CategoryID)
	if err != nil || category == nil {
		log.Printf("Error loading category %d after submission create: %v", submission.CategoryID, err)
		return response_models.SubmissionResponse{}, utils.ErrDatabaseError
	}

	if auditErr := s.auditRepo.Append(ctx, &db_models.AuditLog{
		EntityType: "Submission",
		EntityID:   id,
		Action:     "Created",
		Timestamp:  time.Now().UTC(),
	}); auditErr != nil {
		log.Printf("Error appending audit entry for submission %d: %v", id, auditErr)
	}

	log.Printf("Submission created. id=%d name=%q status=%s", id, submission.Name, submission.Status)

	return response_models.SubmissionResponse{
		ID:                 id,
		Name:               submission.Name,
		Municipality:       submission.Municipality,
		CategoryID:         submission.CategoryID,
		CategoryName:       category.Name,
		Address:            submission.Address,
		Description:        submission.Description,
		LandmarkDirections: submission.LandmarkDirections,
		Latitude:           submission.Latitude,
		Longitude:          submission.Longitude,
		Tags:               submission.Tags,
		Status:             submission.Status.String(),
		ReviewNotes:        nil,
		CreatedAt:          submission.CreatedAt,
	}, nil
}

func (s *SubmissionService) GetPendingCount(ctx context.Context) (int64, error) {
	count, err := s.submissionRepo.CountByStatus(ctx, db_models.SubmissionPending)
	if err != nil {
		log.Printf("Error counting pending submissions: %v", err)
		return 0, utils.ErrDatabaseError
	}
	return count, nil
}

func (s *SubmissionService) GetByID(id uint, ctx context.Context) (response_models.SubmissionDetailResponse, error) {
	submission, err := s.submissionRepo.GetByIDWithRelations(ctx, id)
	if err != nil {
		log.Printf("Error fetching submission %d: %v", id, err)
		return response_models.SubmissionDetailResponse{}, utils.ErrDatabaseError
	}

	if submission == nil {
		return response_models.SubmissionDetailResponse{}, utils.ErrSubmissionNotFound
	}

	var reviewedByUsername *string
	if submission.ReviewedBy != nil {
		reviewedByUsername = &submission.ReviewedBy.Username
	}

	return response_models.SubmissionDetailResponse{
		ID:                 submission.ID,
		Name:               submission.Name,
		Municipality:       submission.Municipality,
		CategoryID:         submission.CategoryID,
		CategoryName:       submission.Category.Name,
		Address:            submission.Address,
		Description:        submission.Description,
		LandmarkDirections: submission.LandmarkDirections,
		Latitude:           submission.Latitude,
		Longitude:          submission.Longitude,
		Tags:               submission.Tags,
		Status:             submission.Status.String(),
		ReviewNotes:        submission.ReviewNotes,
		ReviewedByUserID:   submission.ReviewedByUserID,
		ReviewedByUsername: reviewedByUsername,
		ReviewedAt:         submission.ReviewedAt,
		SubmitterEmail:     submission.SubmitterEmail,
		SubmitterIPAddress: submission.SubmitterIPAddress,
		CreatedAt:          submission.CreatedAt,
	}, nil
}

// ListByStatus returns submissions newest first. A nil status means all
// statuses.
func (s *SubmissionService) ListByStatus(status *db_models.SubmissionStatus, ctx context.Context) ([]response_models.SubmissionListResponse, error) {
	submissions, err := s.submissionRepo.ListByStatus(ctx, status)
	if err != nil {
		log.Printf("Error listing submissions: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.SubmissionListResponse, 0, len(submissions))
	for _, submission := range submissions {
		responses = append(responses, response_models.SubmissionListResponse{
			ID:             submission.ID,
			Name:           submission.Name,
			Municipality:   submission.Municipality,
			CategoryName:   submission.Category.Name,
			Status:         submission.Status.String(),
			CreatedAt:      submission.CreatedAt,
			SubmitterEmail: submission.SubmitterEmail,
		})
	}
	return responses, nil
}

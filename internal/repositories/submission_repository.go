package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"oksimin/internal/models/db_models"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission *db_models.Submission) (uint, error)
	GetByIDWithRelations(ctx context.Context, id uint) (*db_models.Submission, error)
	ListByStatus(ctx context.Context, status *db_models.SubmissionStatus) ([]db_models.Submission, error)
	CountByStatus(ctx context.Context, status db_models.SubmissionStatus) (int64, error)
	CountPendingByCategory(ctx context.Context, categoryID uint) (int64, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

// Create persists the submission in a single write. There is no partial
// state: either the row exists with its assigned id or nothing was stored.
func (r *submissionRepository) Create(ctx context.Context, submission *db_models.Submission) (uint, error) {
	if err := r.db.WithContext(ctx).Create(submission).Error; err != nil {
		return 0, err
	}
	return submission.ID, nil
}

func (r *submissionRepository) GetByIDWithRelations(ctx context.Context, id uint) (*db_models.Submission, error) {
	var submission db_models.Submission
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("ReviewedBy").
		First(&submission, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) ListByStatus(ctx context.Context, status *db_models.SubmissionStatus) ([]db_models.Submission, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Order("created_at desc")

	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var submissions []db_models.Submission
	if err := query.Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionRepository) CountByStatus(ctx context.Context, status db_models.SubmissionStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Submission{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *submissionRepository) CountPendingByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Submission{}).
		Where("category_id = ? AND status = ?", categoryID, db_models.SubmissionPending).
		Count(&count).Error
	return count, err
}

package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"oksimin/internal/models/db_models"
)

type PlaceRepository interface {
	ListApproved(ctx context.Context) ([]db_models.Place, error)
	GetApprovedByID(ctx context.Context, id uint) (*db_models.Place, error)
	ListApprovedByMunicipality(ctx context.Context, municipality string) ([]db_models.Place, error)
	ListApprovedByCategory(ctx context.Context, categoryID uint) ([]db_models.Place, error)
	SearchApproved(ctx context.Context, term string) ([]db_models.Place, error)
	CountApprovedByCategory(ctx context.Context, categoryID uint) (int64, error)

	GetByID(ctx context.Context, id uint) (*db_models.Place, error)
	ListEmbedded(ctx context.Context) ([]db_models.Place, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, place *db_models.Place) error
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) approved(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Category").
		Where("status = ?", db_models.PlaceApproved).
		Order("name asc")
}

func (r *placeRepository) ListApproved(ctx context.Context) ([]db_models.Place, error) {
	var places []db_models.Place
	if err := r.approved(ctx).Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) GetApprovedByID(ctx context.Context, id uint) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("status = ?", db_models.PlaceApproved).
		First(&place, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) ListApprovedByMunicipality(ctx context.Context, municipality string) ([]db_models.Place, error) {
	var places []db_models.Place
	err := r.approved(ctx).
		Where("LOWER(municipality) = LOWER(?)", municipality).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) ListApprovedByCategory(ctx context.Context, categoryID uint) ([]db_models.Place, error) {
	var places []db_models.Place
	err := r.approved(ctx).
		Where("category_id = ?", categoryID).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

// escapeLike escapes LIKE metacharacters so the term matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// SearchApproved matches term as a literal substring of name, description
// or tags.
func (r *placeRepository) SearchApproved(ctx context.Context, term string) ([]db_models.Place, error) {
	var places []db_models.Place
	pattern := "%" + escapeLike(term) + "%"
	err := r.approved(ctx).
		Where(`name ILIKE ? ESCAPE '\' OR description ILIKE ? ESCAPE '\' OR tags ILIKE ? ESCAPE '\'`, pattern, pattern, pattern).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) CountApprovedByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Place{}).
		Where("category_id = ? AND status = ?", categoryID, db_models.PlaceApproved).
		Count(&count).Error
	return count, err
}

func (r *placeRepository) GetByID(ctx context.Context, id uint) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).First(&place, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

// ListEmbedded returns every place carrying an embedding, in storage
// order. The similarity scan depends on that order for stable tie breaks.
func (r *placeRepository) ListEmbedded(ctx context.Context) ([]db_models.Place, error) {
	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Where("embedding IS NOT NULL").
		Order("id asc").
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Place{}).Count(&count).Error
	return count, err
}

func (r *placeRepository) Save(ctx context.Context, place *db_models.Place) error {
	return r.db.WithContext(ctx).Save(place).Error
}

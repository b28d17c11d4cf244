package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oksimin/internal/models/db_models"
	"oksimin/pkg/utils"
)

func newCategoryService() (*fakeCategoryRepo, *fakePlaceRepo, *fakeSubmissionRepo, CategoryServiceInterface) {
	categoryRepo := &fakeCategoryRepo{categories: []db_models.Category{
		{ID: 3, Name: "Tourist Spot", Description: strPtr("Scenic and historical spots")},
		{ID: 1, Name: "Beach"},
		{ID: 2, Name: "Waterfall"},
	}}
	placeRepo := &fakePlaceRepo{places: []db_models.Place{
		{ID: 1, Name: "A", CategoryID: 3, Status: db_models.PlaceApproved},
		{ID: 2, Name: "B", CategoryID: 3, Status: db_models.PlaceApproved},
		{ID: 3, Name: "C", CategoryID: 3, Status: db_models.PlaceApproved},
		{ID: 4, Name: "D", CategoryID: 3, Status: db_models.PlaceArchived},
		{ID: 5, Name: "E", CategoryID: 1, Status: db_models.PlaceApproved},
	}}
	submissionRepo := &fakeSubmissionRepo{submissions: []db_models.Submission{
		{ID: 1, CategoryID: 3, Status: db_models.SubmissionPending},
		{ID: 2, CategoryID: 3, Status: db_models.SubmissionPending},
		{ID: 3, CategoryID: 3, Status: db_models.SubmissionRejected},
		{ID: 4, CategoryID: 1, Status: db_models.SubmissionPending},
	}, nextID: 4}
	return categoryRepo, placeRepo, submissionRepo,
		NewCategoryService(categoryRepo, placeRepo, submissionRepo)
}

func TestListAllCategories(t *testing.T) {
	_, _, _, svc := newCategoryService()

	categories, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Beach", categories[0].Name)
	assert.Equal(t, "Tourist Spot", categories[1].Name)
	assert.Equal(t, "Waterfall", categories[2].Name)
}

func TestGetCategoryByID(t *testing.T) {
	_, _, _, svc := newCategoryService()

	category, err := svc.GetByID(3, context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Tourist Spot", category.Name)
	require.NotNil(t, category.Description)

	_, err = svc.GetByID(999, context.Background())
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
}

func TestGetCategoryDetail(t *testing.T) {
	_, _, _, svc := newCategoryService()

	detail, err := svc.GetDetail(3, context.Background())
	require.NoError(t, err)

	// 3 approved places (archived excluded), 2 pending submissions
	// (rejected excluded), scoped to the category.
	assert.EqualValues(t, 3, detail.ApprovedPlacesCount)
	assert.EqualValues(t, 2, detail.PendingSubmissionsCount)

	_, err = svc.GetDetail(999, context.Background())
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
}

func TestCategoryServiceStorageFailure(t *testing.T) {
	categoryRepo, _, _, svc := newCategoryService()
	categoryRepo.failWith = errBoom

	_, err := svc.ListAll(context.Background())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)

	_, err = svc.GetDetail(3, context.Background())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

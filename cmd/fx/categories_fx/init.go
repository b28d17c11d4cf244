package categoriesfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"oksimin/internal/repositories"
	"oksimin/internal/services"
)

var Module = fx.Provide(
	provideCategoryRepo, provideCategoryService)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideCategoryService(
	categoryRepo repositories.CategoryRepository,
	placeRepo repositories.PlaceRepository,
	submissionRepo repositories.SubmissionRepository) services.CategoryServiceInterface {
	return services.NewCategoryService(categoryRepo, placeRepo, submissionRepo)
}

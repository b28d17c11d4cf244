package placesfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"oksimin/internal/repositories"
	"oksimin/internal/services"
)

var Module = fx.Provide(
	providePlaceRepo, providePlaceService)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func providePlaceService(
	placeRepo repositories.PlaceRepository,
	categoryRepo repositories.CategoryRepository) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo, categoryRepo)
}

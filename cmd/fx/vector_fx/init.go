package vectorfx

import (
	"go.uber.org/fx"

	"oksimin/internal/repositories"
	"oksimin/internal/services"
)

var Module = fx.Provide(
	provideVectorService)

func provideVectorService(placeRepo repositories.PlaceRepository) services.VectorServiceInterface {
	return services.NewVectorService(placeRepo)
}

package controllersfx

import (
	"go.uber.org/fx"

	"oksimin/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewCategoriesController,
	controllers.NewPlacesController,
	controllers.NewSubmissionsController,
	controllers.NewVectorController,
	controllers.NewHealthController,
)

package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	categoriesfx "oksimin/cmd/fx/categories_fx"
	controllersfx "oksimin/cmd/fx/controllers_fx"
	"oksimin/cmd/fx/db_fx"
	placesfx "oksimin/cmd/fx/places_fx"
	submissionsfx "oksimin/cmd/fx/submissions_fx"
	vectorfx "oksimin/cmd/fx/vector_fx"
	"oksimin/internal/api/controllers"
	"oksimin/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		categoriesfx.Module,
		placesfx.Module,
		submissionsfx.Module,
		vectorfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	categoriesController *controllers.CategoriesController,
	placesController *controllers.PlacesController,
	submissionsController *controllers.SubmissionsController,
	vectorController *controllers.VectorController,
	healthController *controllers.HealthController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.CorrelationIDMiddleware())

	RegisterRoutes(r, categoriesController, placesController, submissionsController, vectorController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	categoriesController *controllers.CategoriesController,
	placesController *controllers.PlacesController,
	submissionsController *controllers.SubmissionsController,
	vectorController *controllers.VectorController,
	healthController *controllers.HealthController) {

	r.GET("/health", healthController.GetHealth)

	api := r.Group("/api")

	categories := api.Group("/categories")
	categories.GET("", categoriesController.ListCategories)
	categories.GET("/:id", categoriesController.GetCategoryByID)
	categories.GET("/:id/detail", categoriesController.GetCategoryDetail)

	places := api.Group("/places")
	places.GET("", placesController.ListPlaces)
	places.GET("/search", placesController.SearchPlaces)
	places.GET("/:id", placesController.GetPlaceByID)
	places.GET("/municipality/:name", placesController.ListPlacesByMunicipality)
	places.GET("/category/:id", placesController.ListPlacesByCategory)

	submissions := api.Group("/submissions")
	submissions.POST("", submissionsController.CreateSubmission)
	submissions.GET("/pending-count", submissionsController.GetPendingCount)

	admin := api.Group("/admin")
	admin.GET("/submissions", submissionsController.ListSubmissions)
	admin.GET("/submissions/:id", submissionsController.GetSubmissionByID)

	vectorTest := api.Group("/vector-test")
	vectorTest.GET("/find-similar/:id", vectorController.FindSimilarPlaces)
	vectorTest.GET("/statistics", vectorController.GetStatistics)
}

// Command seed provisions a development database: default categories, an
// admin user, sample approved places across the municipalities, and an
// embedding backfill for places that lack one.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"oksimin/internal/infra"
	"oksimin/internal/models/db_models"
	"oksimin/internal/repositories"
	"oksimin/pkg/utils"
	"oksimin/pkg/vector"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)

	if err := infra.AutoMigrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	ctx := context.Background()

	if err := seedAdminUser(ctx, db); err != nil {
		log.Fatalf("Seeding admin user failed: %v", err)
	}
	if err := seedCategories(ctx, db); err != nil {
		log.Fatalf("Seeding categories failed: %v", err)
	}
	if err := seedPlaces(ctx, db); err != nil {
		log.Fatalf("Seeding places failed: %v", err)
	}
	if err := backfillEmbeddings(ctx, db); err != nil {
		log.Fatalf("Embedding backfill failed: %v", err)
	}

	log.Println("Seed completed")
}

func seedAdminUser(ctx context.Context, db *gorm.DB) error {
	userRepo := repositories.NewUserRepository(db)

	existing, err := userRepo.GetByUsername(ctx, "admin")
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	id, err := userRepo.Create(ctx, &db_models.User{
		Username:     "admin",
		PasswordHash: hash,
		Role:         db_models.RoleAdmin,
		IsActive:     true,
	})
	if err != nil {
		return err
	}
	log.Printf("Created admin user id=%d", id)
	return nil
}

func seedCategories(ctx context.Context, db *gorm.DB) error {
	categories := []db_models.Category{
		{Name: "Beach", Description: strPtr("Beaches and coastal swimming spots")},
		{Name: "Waterfall", Description: strPtr("Waterfalls and river pools")},
		{Name: "Tourist Spot", Description: strPtr("Scenic viewpoints and attractions")},
		{Name: "Historical Site", Description: strPtr("Heritage and historical landmarks")},
		{Name: "Restaurant", Description: strPtr("Local food and dining")},
	}

	for _, category := range categories {
		err := db.WithContext(ctx).
			Where(db_models.Category{Name: category.Name}).
			FirstOrCreate(&category).Error
		if err != nil {
			return err
		}
	}
	log.Printf("Seeded %d categories", len(categories))
	return nil
}

func seedPlaces(ctx context.Context, db *gorm.DB) error {
	var touristSpot db_models.Category
	if err := db.WithContext(ctx).First(&touristSpot, "name = ?", "Tourist Spot").Error; err != nil {
		return err
	}
	var beach db_models.Category
	if err := db.WithContext(ctx).First(&beach, "name = ?", "Beach").Error; err != nil {
		return err
	}

	places := []db_models.Place{
		{
			Name:         "Apo Reef Natural Park",
			Municipality: utils.Sablayan,
			CategoryID:   touristSpot.ID,
			Description:  strPtr("The largest contiguous coral reef system in the Philippines, a world-class dive site."),
			Latitude:     floatPtr(12.6622),
			Longitude:    floatPtr(120.4372),
			Tags:         strPtr("diving,coral reef,marine park"),
			Status:       db_models.PlaceApproved,
		},
		{
			Name:         "Pandan Island",
			Municipality: utils.Sablayan,
			CategoryID:   beach.ID,
			Description:  strPtr("A white-sand island resort a short boat ride from the Sablayan coast."),
			Latitude:     floatPtr(12.8386),
			Longitude:    floatPtr(120.7172),
			Tags:         strPtr("island,snorkeling,white sand"),
			Status:       db_models.PlaceApproved,
		},
		{
			Name:         "Mamburao Beach",
			Municipality: utils.Mamburao,
			CategoryID:   beach.ID,
			Description:  strPtr("A long grey-sand beach near the provincial capital."),
			Latitude:     floatPtr(13.2236),
			Longitude:    floatPtr(120.5931),
			Status:       db_models.PlaceApproved,
		},
		{
			Name:         "Lubang Island Shores",
			Municipality: utils.Lubang,
			CategoryID:   touristSpot.ID,
			Description:  strPtr("Quiet coves and fishing villages on the island northwest of mainland Mindoro."),
			Latitude:     floatPtr(13.8560),
			Longitude:    floatPtr(120.1230),
			Tags:         strPtr("island,heritage"),
			Status:       db_models.PlaceApproved,
		},
	}

	for _, place := range places {
		err := db.WithContext(ctx).
			Where(db_models.Place{Name: place.Name, Municipality: place.Municipality}).
			FirstOrCreate(&place).Error
		if err != nil {
			return err
		}
	}
	log.Printf("Seeded %d places", len(places))
	return nil
}

// backfillEmbeddings generates an embedding for every place lacking one.
// With OPENAI_API_KEY or GEMINI_API_KEY set the configured provider is
// used; otherwise a seeded random vector stands in so the similarity
// endpoints have data to work with.
func backfillEmbeddings(ctx context.Context, db *gorm.DB) error {
	placeRepo := repositories.NewPlaceRepository(db)

	var places []db_models.Place
	if err := db.WithContext(ctx).Where("embedding IS NULL").Find(&places).Error; err != nil {
		return err
	}
	if len(places) == 0 {
		return nil
	}

	client := embeddingClient(ctx)

	for i := range places {
		place := &places[i]

		var components []float32
		if client != nil {
			embedded, err := client.GetEmbedding(ctx, embeddingText(place))
			if err != nil {
				return fmt.Errorf("embedding place %d: %w", place.ID, err)
			}
			components = embedded
		} else {
			components = vector.RandomVector(768, int64(place.ID))
		}

		encoded, err := vector.FloatsToBytes(components)
		if err != nil {
			return fmt.Errorf("encoding embedding for place %d: %w", place.ID, err)
		}

		place.Embedding = encoded
		if err := placeRepo.Save(ctx, place); err != nil {
			return fmt.Errorf("saving place %d: %w", place.ID, err)
		}
	}

	log.Printf("Backfilled embeddings for %d places", len(places))
	return nil
}

func embeddingClient(ctx context.Context) utils.EmbeddingClientInterface {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		client, err := utils.NewOpenAIEmbeddingClient(key)
		if err == nil {
			log.Println("Using OpenAI embedding provider")
			return client
		}
		log.Printf("OpenAI client unavailable: %v", err)
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		client, err := utils.NewGeminiEmbeddingClient(ctx, key, os.Getenv("GEMINI_EMBED_MODEL"))
		if err == nil {
			log.Println("Using Gemini embedding provider")
			return client
		}
		log.Printf("Gemini client unavailable: %v", err)
	}
	log.Println("No embedding provider configured, using random vectors")
	return nil
}

func embeddingText(place *db_models.Place) string {
	parts := []string{place.Name, place.Municipality}
	if place.Description != nil {
		parts = append(parts, *place.Description)
	}
	if place.Tags != nil {
		parts = append(parts, *place.Tags)
	}
	return strings.Join(parts, ". ")
}

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }

package migrations

import (
	"encoding/json"
	"fmt"
	"log"

	"dealer_dashboard/internal/models"
	"dealer_dashboard/internal/repository"

	"gorm.io/gorm"
)

// RunMigrations creates the schema and seeds the default scoring
// configuration when none exists.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
		&models.DealerPerformance{},
		&models.ScoringSettings{},
		&models.FurnitureOrder{},
		&models.FurnitureProduct{},
		&models.ProductionStage{},
		&models.QualityCheck{},
	)
	if err != nil {
		return err
	}

	if err := seedDefaultScoringSettings(db); err != nil {
		log.Printf("Warning: Failed to seed default scoring settings: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

func seedDefaultScoringSettings(db *gorm.DB) error {
	scoringRepo := repository.NewScoringRepository(db)

	if existing, err := scoringRepo.GetSettingsByName("default"); err == nil && existing != nil {
		log.Println("Default scoring settings already exist")
		return nil
	}

	criteria, err := json.Marshal(models.DefaultScoringCriteria())
	if err != nil {
		return fmt.Errorf("failed to marshal default criteria: %w", err)
	}
	weights, err := json.Marshal(models.DefaultScoringWeights())
	if err != nil {
		return fmt.Errorf("failed to marshal default weights: %w", err)
	}
	starBands, err := json.Marshal(models.DefaultStarRatings())
	if err != nil {
		return fmt.Errorf("failed to marshal default star bands: %w", err)
	}

	settings := &models.ScoringSettings{
		Name:      "default",
		Criteria:  string(criteria),
		Weights:   string(weights),
		StarBands: string(starBands),
		IsActive:  true,
	}
	if err := scoringRepo.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save default scoring settings: %w", err)
	}

	log.Println("Default scoring settings created")
	return nil
}

package repository

import (
	"dealer_dashboard/internal/models"

	"gorm.io/gorm"
)

type ScoringRepository interface {
	GetActiveSettings() (*models.ScoringSettings, error)
	GetSettingsByName(name string) (*models.ScoringSettings, error)
	SaveSettings(settings *models.ScoringSettings) error
}

type scoringRepository struct {
	db *gorm.DB
}

func NewScoringRepository(db *gorm.DB) ScoringRepository {
	return &scoringRepository{db: db}
}

func (r *scoringRepository) GetActiveSettings() (*models.ScoringSettings, error) {
	var settings models.ScoringSettings
	err := r.db.Where("is_active = ?", true).Order("updated_at DESC").First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *scoringRepository) GetSettingsByName(name string) (*models.ScoringSettings, error) {
	var settings models.ScoringSettings
	err := r.db.Where("name = ?", name).First(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *scoringRepository) SaveSettings(settings *models.ScoringSettings) error {
	return r.db.Save(settings).Error
}

package repository

import (
	"dealer_dashboard/internal/models"

	"gorm.io/gorm"
)

type DealerRepository interface {
	Create(dealer *models.DealerPerformance) error
	GetByID(id string) (*models.DealerPerformance, error)
	GetAll() ([]models.DealerPerformance, error)
	GetByType(dealerType models.DealerType) ([]models.DealerPerformance, error)
	Update(dealer *models.DealerPerformance) error
	Delete(id string) error
}

type dealerRepository struct {
	db *gorm.DB
}

func NewDealerRepository(db *gorm.DB) DealerRepository {
	return &dealerRepository{db: db}
}

func (r *dealerRepository) Create(dealer *models.DealerPerformance) error {
	return r.db.Create(dealer).Error
}

func (r *dealerRepository) GetByID(id string) (*models.DealerPerformance, error) {
	var dealer models.DealerPerformance
	err := r.db.First(&dealer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &dealer, nil
}

func (r *dealerRepository) GetAll() ([]models.DealerPerformance, error) {
	var dealers []models.DealerPerformance
	err := r.db.Find(&dealers).Error
	return dealers, err
}

func (r *dealerRepository) GetByType(dealerType models.DealerType) ([]models.DealerPerformance, error) {
	var dealers []models.DealerPerformance
	err := r.db.Where("type = ?", dealerType).Find(&dealers).Error
	return dealers, err
}

func (r *dealerRepository) Update(dealer *models.DealerPerformance) error {
	return r.db.Save(dealer).Error
}

func (r *dealerRepository) Delete(id string) error {
	return r.db.Delete(&models.DealerPerformance{}, "id = ?", id).Error
}

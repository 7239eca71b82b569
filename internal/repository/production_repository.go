package repository

import (
	"dealer_dashboard/internal/models"

	"gorm.io/gorm"
)

type ProductionRepository interface {
	CreateOrder(order *models.FurnitureOrder) error
	GetOrderByID(id string) (*models.FurnitureOrder, error)
	GetAllOrders() ([]models.FurnitureOrder, error)
	GetActiveOrders() ([]models.FurnitureOrder, error)
	GetProductByID(id uint) (*models.FurnitureProduct, error)
	UpdateOrder(order *models.FurnitureOrder) error
	UpdateStage(stage *models.ProductionStage) error
}

type productionRepository struct {
	db *gorm.DB
}

func NewProductionRepository(db *gorm.DB) ProductionRepository {
	return &productionRepository{db: db}
}

func (r *productionRepository) CreateOrder(order *models.FurnitureOrder) error {
	return r.db.Create(order).Error
}

func (r *productionRepository) GetOrderByID(id string) (*models.FurnitureOrder, error) {
	var order models.FurnitureOrder
	err := r.db.
		Preload("Products").
		Preload("Products.ProductionStages").
		Preload("Products.QualityChecks").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *productionRepository) GetAllOrders() ([]models.FurnitureOrder, error) {
	var orders []models.FurnitureOrder
	err := r.db.
		Preload("Products").
		Preload("Products.ProductionStages").
		Preload("Products.QualityChecks").
		Find(&orders).Error
	return orders, err
}

// GetActiveOrders returns orders currently occupying production capacity.
func (r *productionRepository) GetActiveOrders() ([]models.FurnitureOrder, error) {
	var orders []models.FurnitureOrder
	err := r.db.
		Preload("Products").
		Preload("Products.ProductionStages").
		Where("status IN ?", []models.ProductionOrderStatus{models.ProductionInProduction, models.ProductionQualityCheck}).
		Find(&orders).Error
	return orders, err
}

func (r *productionRepository) GetProductByID(id uint) (*models.FurnitureProduct, error) {
	var product models.FurnitureProduct
	err := r.db.
		Preload("ProductionStages").
		Preload("QualityChecks").
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productionRepository) UpdateOrder(order *models.FurnitureOrder) error {
	return r.db.Save(order).Error
}

func (r *productionRepository) UpdateStage(stage *models.ProductionStage) error {
	return r.db.Save(stage).Error
}

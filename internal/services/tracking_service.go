package services

import (
	"dealer_dashboard/internal/repository"
	"dealer_dashboard/internal/tracking"
)

type TrackingService interface {
	ProductProgress(productID uint) (*tracking.ProductProgress, error)
	OrderProgress(orderID string) (*tracking.OrderProgress, error)
	QualityScore(productID uint) (*tracking.QualityScore, error)
	CapacityAnalysis() (*tracking.CapacityAnalysis, error)
	CustomerUpdate(orderID string) (*tracking.CustomerUpdate, error)
}

type trackingService struct {
	productionRepo repository.ProductionRepository
	engine         *tracking.Engine
}

func NewTrackingService(productionRepo repository.ProductionRepository, engine *tracking.Engine) TrackingService {
	return &trackingService{productionRepo: productionRepo, engine: engine}
}

func (s *trackingService) ProductProgress(productID uint) (*tracking.ProductProgress, error) {
	product, err := s.productionRepo.GetProductByID(productID)
	if err != nil {
		return nil, err
	}
	progress := s.engine.CalculateProductProgress(*product)
	return &progress, nil
}

func (s *trackingService) OrderProgress(orderID string) (*tracking.OrderProgress, error) {
	order, err := s.productionRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	progress := s.engine.CalculateOrderProgress(*order)
	return &progress, nil
}

func (s *trackingService) QualityScore(productID uint) (*tracking.QualityScore, error) {
	product, err := s.productionRepo.GetProductByID(productID)
	if err != nil {
		return nil, err
	}
	score := s.engine.CalculateQualityScore(*product)
	return &score, nil
}

func (s *trackingService) CapacityAnalysis() (*tracking.CapacityAnalysis, error) {
	orders, err := s.productionRepo.GetActiveOrders()
	if err != nil {
		return nil, err
	}
	analysis := s.engine.AnalyzeProductionCapacity(orders)
	return &analysis, nil
}

func (s *trackingService) CustomerUpdate(orderID string) (*tracking.CustomerUpdate, error) {
	order, err := s.productionRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	update := s.engine.GenerateCustomerUpdate(*order)
	return &update, nil
}

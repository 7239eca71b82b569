package services

import (
	"dealer_dashboard/internal/models"
	"dealer_dashboard/internal/repository"
	"dealer_dashboard/internal/search"

	"github.com/sirupsen/logrus"
)

type SearchService interface {
	SearchOrders(sessionKey, query string, opts search.OrderSearchOptions) ([]search.OrderMatch, error)
	AutoCompleteSuggestions(query string, maxSuggestions int) ([]string, error)
	SearchDealers(sessionKey, query string, opts search.DealerSearchOptions) ([]search.DealerMatch, error)
	FilterOrders(filters search.OrderFilters) ([]models.Order, error)
	GetHistory(sessionKey string) ([]string, error)
	ClearHistory(sessionKey string) error
}

type searchService struct {
	orderRepo  repository.OrderRepository
	dealerRepo repository.DealerRepository
	engine     *search.Engine
	history    *search.History
	logger     *logrus.Logger
}

func NewSearchService(
	orderRepo repository.OrderRepository,
	dealerRepo repository.DealerRepository,
	engine *search.Engine,
	history *search.History,
	logger *logrus.Logger,
) SearchService {
	return &searchService{
		orderRepo:  orderRepo,
		dealerRepo: dealerRepo,
		engine:     engine,
		history:    history,
		logger:     logger,
	}
}

func (s *searchService) SearchOrders(sessionKey, query string, opts search.OrderSearchOptions) ([]search.OrderMatch, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	results := s.engine.SearchOrders(orders, query, opts)
	s.recordHistory(sessionKey, query)
	return results, nil
}

func (s *searchService) AutoCompleteSuggestions(query string, maxSuggestions int) ([]string, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return s.engine.AutoCompleteSuggestions(orders, query, maxSuggestions), nil
}

func (s *searchService) SearchDealers(sessionKey, query string, opts search.DealerSearchOptions) ([]search.DealerMatch, error) {
	dealers, err := s.dealerRepo.GetAll()
	if err != nil {
		return nil, err
	}

	results := s.engine.SearchDealers(dealers, query, opts)
	s.recordHistory(sessionKey, query)
	return results, nil
}

func (s *searchService) FilterOrders(filters search.OrderFilters) ([]models.Order, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return s.engine.CombineFilters(orders, filters)
}

func (s *searchService) GetHistory(sessionKey string) ([]string, error) {
	return s.history.Get(sessionKey)
}

func (s *searchService) ClearHistory(sessionKey string) error {
	return s.history.Clear(sessionKey)
}

// recordHistory must never fail a search; a broken history store is logged
// and ignored.
func (s *searchService) recordHistory(sessionKey, query string) {
	if sessionKey == "" {
		return
	}
	if err := s.history.Add(sessionKey, query); err != nil {
		s.logger.WithError(err).WithField("session", sessionKey).Warn("Failed to record search history")
	}
}

package services

import (
	"fmt"
	"time"

	"dealer_dashboard/internal/models"
	"dealer_dashboard/internal/reports"
	"dealer_dashboard/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReportService interface {
	Generate(kind reports.ReportKind, period string) (*reports.Report, error)
}

type reportService struct {
	orderRepo  repository.OrderRepository
	dealerRepo repository.DealerRepository
}

func NewReportService(orderRepo repository.OrderRepository, dealerRepo repository.DealerRepository) ReportService {
	return &reportService{orderRepo: orderRepo, dealerRepo: dealerRepo}
}

// Generate builds the requested report variant. Exactly one summary field is
// populated, selected by Kind.
func (s *reportService) Generate(kind reports.ReportKind, period string) (*reports.Report, error) {
	report := &reports.Report{
		ID:          uuid.NewString(),
		Kind:        kind,
		GeneratedAt: time.Now(),
		Period:      period,
	}

	switch kind {
	case reports.KindSales:
		summary, err := s.salesSummary()
		if err != nil {
			return nil, err
		}
		report.Title = "Satış Raporu"
		report.Sales = summary
	case reports.KindDealer:
		summary, err := s.dealerSummary()
		if err != nil {
			return nil, err
		}
		report.Title = "Bayi Performans Raporu"
		report.Dealer = summary
	case reports.KindProduct:
		summary, err := s.productSummary()
		if err != nil {
			return nil, err
		}
		report.Title = "Ürün Raporu"
		report.Product = summary
	case reports.KindCustomer:
		summary, err := s.customerSummary()
		if err != nil {
			return nil, err
		}
		report.Title = "Müşteri Raporu"
		report.Customer = summary
	default:
		return nil, fmt.Errorf("unknown report kind %q", kind)
	}

	return report, nil
}

func (s *reportService) salesSummary() (*reports.SalesSummary, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	completed := 0
	revenueByDealer := make(map[string]decimal.Decimal)
	for _, order := range orders {
		amount := decimal.NewFromFloat(order.TotalAmount)
		total = total.Add(amount)
		revenueByDealer[order.Dealer] = revenueByDealer[order.Dealer].Add(amount)
		if order.Status == models.OrderCompleted {
			completed++
		}
	}

	average := decimal.Zero
	if len(orders) > 0 {
		average = total.Div(decimal.NewFromInt(int64(len(orders)))).Round(2)
	}

	var topDealer string
	topRevenue := decimal.Zero
	for dealer, revenue := range revenueByDealer {
		if revenue.GreaterThan(topRevenue) || topDealer == "" {
			topDealer = dealer
			topRevenue = revenue
		}
	}

	return &reports.SalesSummary{
		TotalOrders:       len(orders),
		CompletedOrders:   completed,
		TotalRevenue:      total.Round(2),
		AverageOrderValue: average,
		TopDealer:         topDealer,
	}, nil
}

func (s *reportService) dealerSummary() (*reports.DealerSummary, error) {
	dealers, err := s.dealerRepo.GetAll()
	if err != nil {
		return nil, err
	}

	summary := &reports.DealerSummary{StarDistribution: make(map[int]int)}
	var scoreSum float64
	topScore := -1
	for _, dealer := range dealers {
		switch dealer.Type {
		case models.DealerTypeMain:
			summary.MainDealerCount++
		default:
			summary.DealerCount++
		}
		summary.StarDistribution[dealer.StarRating]++
		scoreSum += float64(dealer.PerformanceScore)
		if dealer.PerformanceScore > topScore {
			topScore = dealer.PerformanceScore
			summary.TopPerformer = dealer.Name
		}
	}
	if len(dealers) > 0 {
		summary.AverageScore = scoreSum / float64(len(dealers))
	}

	return summary, nil
}

func (s *reportService) productSummary() (*reports.ProductSummary, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	quantityByProduct := make(map[string]int)
	totalQuantity := 0
	for _, order := range orders {
		for _, item := range order.Items {
			quantityByProduct[item.ProductName] += item.Quantity
			totalQuantity += item.Quantity
		}
	}

	var topProduct string
	topQuantity := 0
	for product, quantity := range quantityByProduct {
		if quantity > topQuantity || topProduct == "" {
			topProduct = product
			topQuantity = quantity
		}
	}

	return &reports.ProductSummary{
		ProductCount:  len(quantityByProduct),
		TotalQuantity: totalQuantity,
		TopProduct:    topProduct,
	}, nil
}

func (s *reportService) customerSummary() (*reports.CustomerSummary, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	ordersByCustomer := make(map[string]int)
	for _, order := range orders {
		ordersByCustomer[order.CustomerName]++
	}

	summary := &reports.CustomerSummary{CustomerCount: len(ordersByCustomer)}
	topOrders := 0
	for customer, count := range ordersByCustomer {
		if count > 1 {
			summary.RepeatCustomerCount++
		}
		if count > topOrders || summary.TopCustomer == "" {
			summary.TopCustomer = customer
			topOrders = count
		}
	}

	return summary, nil
}

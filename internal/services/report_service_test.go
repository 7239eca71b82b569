package services

import (
	"testing"

	"dealer_dashboard/internal/models"
	"dealer_dashboard/internal/reports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportOrders() []models.Order {
	return []models.Order{
		{
			ID: "ORD-3001", CustomerName: "Ahmet Yılmaz", Status: models.OrderCompleted,
			TotalAmount: 30000, Dealer: "İstanbul Bayi",
			Items: []models.OrderItem{{ProductName: "Koltuk Takımı", Quantity: 1}},
		},
		{
			ID: "ORD-3002", CustomerName: "Ahmet Yılmaz", Status: models.OrderInProgress,
			TotalAmount: 20000, Dealer: "İstanbul Bayi",
			Items: []models.OrderItem{{ProductName: "Yemek Masası Seti", Quantity: 2}},
		},
		{
			ID: "ORD-3003", CustomerName: "Zeynep Kaya", Status: models.OrderCompleted,
			TotalAmount: 10000, Dealer: "Ankara Bayi",
			Items: []models.OrderItem{{ProductName: "Koltuk Takımı", Quantity: 1}},
		},
	}
}

func TestReportServiceSales(t *testing.T) {
	service := NewReportService(&fakeOrderRepo{orders: reportOrders()}, &fakeDealerRepo{})

	report, err := service.Generate(reports.KindSales, "2025-06")
	require.NoError(t, err)
	require.NotNil(t, report.Sales)
	assert.Equal(t, reports.KindSales, report.Kind)
	assert.Equal(t, "Satış Raporu", report.Title)
	assert.NotEmpty(t, report.ID)

	sales := report.Sales
	assert.Equal(t, 3, sales.TotalOrders)
	assert.Equal(t, 2, sales.CompletedOrders)
	assert.True(t, sales.TotalRevenue.Equal(decimal.NewFromInt(60000)))
	assert.True(t, sales.AverageOrderValue.Equal(decimal.NewFromInt(20000)))
	assert.Equal(t, "İstanbul Bayi", sales.TopDealer)
}

func TestReportServiceDealer(t *testing.T) {
	dealers := []models.DealerPerformance{
		{ID: "M-1", Name: "İstanbul Ana Bayi", Type: models.DealerTypeMain, PerformanceScore: 90, StarRating: 5},
		{ID: "D-1", Name: "Kadıköy Bayi", Type: models.DealerTypeDealer, PerformanceScore: 70, StarRating: 4},
	}
	service := NewReportService(&fakeOrderRepo{}, &fakeDealerRepo{dealers: dealers})

	report, err := service.Generate(reports.KindDealer, "2025-06")
	require.NoError(t, err)
	require.NotNil(t, report.Dealer)

	summary := report.Dealer
	assert.Equal(t, 1, summary.MainDealerCount)
	assert.Equal(t, 1, summary.DealerCount)
	assert.Equal(t, 80.0, summary.AverageScore)
	assert.Equal(t, "İstanbul Ana Bayi", summary.TopPerformer)
	assert.Equal(t, 1, summary.StarDistribution[5])
}

func TestReportServiceProduct(t *testing.T) {
	service := NewReportService(&fakeOrderRepo{orders: reportOrders()}, &fakeDealerRepo{})

	report, err := service.Generate(reports.KindProduct, "2025-06")
	require.NoError(t, err)
	require.NotNil(t, report.Product)
	assert.Equal(t, 2, report.Product.ProductCount)
	assert.Equal(t, 4, report.Product.TotalQuantity)
}

func TestReportServiceCustomer(t *testing.T) {
	service := NewReportService(&fakeOrderRepo{orders: reportOrders()}, &fakeDealerRepo{})

	report, err := service.Generate(reports.KindCustomer, "2025-06")
	require.NoError(t, err)
	require.NotNil(t, report.Customer)
	assert.Equal(t, 2, report.Customer.CustomerCount)
	assert.Equal(t, 1, report.Customer.RepeatCustomerCount)
	assert.Equal(t, "Ahmet Yılmaz", report.Customer.TopCustomer)
}

func TestReportServiceUnknownKind(t *testing.T) {
	service := NewReportService(&fakeOrderRepo{}, &fakeDealerRepo{})

	_, err := service.Generate(reports.ReportKind("bogus"), "2025-06")
	assert.Error(t, err)
}

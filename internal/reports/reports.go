package reports

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReportKind is the closed set of report variants. Each kind carries its own
// typed summary; exactly one summary pointer is set per report.
type ReportKind string

const (
	KindSales    ReportKind = "sales"
	KindDealer   ReportKind = "dealer"
	KindProduct  ReportKind = "product"
	KindCustomer ReportKind = "customer"
)

func ParseKind(value string) (ReportKind, error) {
	switch ReportKind(value) {
	case KindSales, KindDealer, KindProduct, KindCustomer:
		return ReportKind(value), nil
	default:
		return "", fmt.Errorf("unknown report kind %q", value)
	}
}

type Report struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Kind        ReportKind       `json:"kind"`
	GeneratedAt time.Time        `json:"generated_at"`
	Period      string           `json:"period"`
	Sales       *SalesSummary    `json:"sales,omitempty"`
	Dealer      *DealerSummary   `json:"dealer,omitempty"`
	Product     *ProductSummary  `json:"product,omitempty"`
	Customer    *CustomerSummary `json:"customer,omitempty"`
}

type SalesSummary struct {
	TotalOrders       int             `json:"total_orders"`
	CompletedOrders   int             `json:"completed_orders"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	TopDealer         string          `json:"top_dealer"`
}

type DealerSummary struct {
	DealerCount      int         `json:"dealer_count"`
	MainDealerCount  int         `json:"main_dealer_count"`
	AverageScore     float64     `json:"average_score"`
	TopPerformer     string      `json:"top_performer"`
	StarDistribution map[int]int `json:"star_distribution"`
}

type ProductSummary struct {
	ProductCount  int    `json:"product_count"`
	TotalQuantity int    `json:"total_quantity"`
	TopProduct    string `json:"top_product"`
}

type CustomerSummary struct {
	CustomerCount       int    `json:"customer_count"`
	RepeatCustomerCount int    `json:"repeat_customer_count"`
	TopCustomer         string `json:"top_customer"`
}

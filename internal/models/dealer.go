package models

import (
	"time"

	"gorm.io/gorm"
)

type DealerType string

const (
	DealerTypeDealer DealerType = "dealer"
	DealerTypeMain   DealerType = "main-dealer"
)

type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// DealerPerformance carries the raw monthly metrics for a dealer together
// with the scores derived from them. PerformanceScore, StarRating and the
// four component scores are computed by the scoring engine; SubDealers is a
// view rebuilt on every hierarchy pass, never stored.
type DealerPerformance struct {
	ID                   string              `json:"id" gorm:"primaryKey"`
	Name                 string              `json:"name" gorm:"not null"`
	Type                 DealerType          `json:"type" gorm:"default:'dealer'"`
	City                 string              `json:"city"`
	Region               string              `json:"region"`
	TotalOrders          int                 `json:"total_orders"`
	CompletedOrders      int                 `json:"completed_orders"`
	AverageDeliveryTime  float64             `json:"average_delivery_time"` // days
	AverageApprovalTime  float64             `json:"average_approval_time"` // days, 0 = not yet tracked
	OnTimeDeliveryRate   float64             `json:"on_time_delivery_rate"` // percentage
	CustomerSatisfaction float64             `json:"customer_satisfaction"` // 0.0-5.0
	MonthlyRevenue       float64             `json:"monthly_revenue"`
	PerformanceScore     int                 `json:"performance_score"`
	StarRating           int                 `json:"star_rating"`
	OrderApprovalScore   float64             `json:"order_approval_score"`
	DeliveryScore        float64             `json:"delivery_score"`
	SatisfactionScore    float64             `json:"satisfaction_score"`
	CompletionScore      float64             `json:"completion_score"`
	LastOrderDate        string              `json:"last_order_date"`
	ContactInfo          ContactInfo         `json:"contact_info" gorm:"embedded;embeddedPrefix:contact_"`
	RecentOrders         []Order             `json:"recent_orders,omitempty" gorm:"-"`
	ParentDealerID       string              `json:"parent_dealer_id,omitempty" gorm:"index"`
	SubDealers           []DealerPerformance `json:"sub_dealers,omitempty" gorm:"-"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
	DeletedAt            gorm.DeletedAt      `json:"deleted_at" gorm:"index"`
}

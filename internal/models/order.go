package models

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderCompleted  OrderStatus = "completed"
	OrderInProgress OrderStatus = "in-progress"
	OrderPending    OrderStatus = "pending"
)

// OrderStage is a point-in-time snapshot of where an order (or item) sits in
// the fulfilment pipeline. It is not a validated state machine.
type OrderStage struct {
	Name             string `json:"name"`
	Status           string `json:"status"` // completed, in-progress, pending
	Date             string `json:"date,omitempty"`
	Location         string `json:"location"`
	ResponsibleParty string `json:"responsible_party"`
}

type Order struct {
	ID            string         `json:"id" gorm:"primaryKey"`
	CustomerName  string         `json:"customer_name" gorm:"not null"`
	CustomerEmail string         `json:"customer_email"`
	OrderDate     string         `json:"order_date" gorm:"not null"`
	TotalItems    int            `json:"total_items"`
	Status        OrderStatus    `json:"status" gorm:"default:'pending'"`
	TotalAmount   float64        `json:"total_amount"`
	Items         []OrderItem    `json:"items" gorm:"foreignKey:OrderID"`
	CurrentStage  OrderStage     `json:"current_stage" gorm:"embedded;embeddedPrefix:stage_"`
	Dealer        string         `json:"dealer"`
	MainDealer    string         `json:"main_dealer"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type OrderItem struct {
	ID                   uint           `json:"id" gorm:"primaryKey"`
	OrderID              string         `json:"order_id" gorm:"index;not null"`
	ProductName          string         `json:"product_name" gorm:"not null"`
	Quantity             int            `json:"quantity" gorm:"not null"`
	CompletedQuantity    int            `json:"completed_quantity"`
	PendingQuantity      int            `json:"pending_quantity"`
	ToBeSuppliedQuantity int            `json:"to_be_supplied_quantity"`
	CurrentStage         OrderStage     `json:"current_stage" gorm:"embedded;embeddedPrefix:stage_"`
	EstimatedDelivery    string         `json:"estimated_delivery"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type Department string

const (
	DepartmentDesign     Department = "design"
	DepartmentProduction Department = "production"
	DepartmentQuality    Department = "quality"
	DepartmentAssembly   Department = "assembly"
	DepartmentLogistics  Department = "logistics"
)

// Weight returns the share a stage of this department contributes to a
// product's overall progress. Unknown departments fall back to 10.
func (d Department) Weight() float64 {
	switch d {
	case DepartmentDesign:
		return 5
	case DepartmentProduction:
		return 40
	case DepartmentQuality:
		return 15
	case DepartmentAssembly:
		return 25
	case DepartmentLogistics:
		return 15
	default:
		return 10
	}
}

type StageStatus string

const (
	StageCompleted    StageStatus = "completed"
	StageInProgress   StageStatus = "in-progress"
	StagePending      StageStatus = "pending"
	StageDelayed      StageStatus = "delayed"
	StageQualityCheck StageStatus = "quality-check"
)

type ProductionOrderStatus string

const (
	ProductionReceived         ProductionOrderStatus = "received"
	ProductionConfirmed        ProductionOrderStatus = "confirmed"
	ProductionInProduction     ProductionOrderStatus = "in-production"
	ProductionQualityCheck     ProductionOrderStatus = "quality-check"
	ProductionReadyForDelivery ProductionOrderStatus = "ready-for-delivery"
	ProductionInTransit        ProductionOrderStatus = "in-transit"
	ProductionDelivered        ProductionOrderStatus = "delivered"
	ProductionCancelled        ProductionOrderStatus = "cancelled"
)

// ProductionStage is one staged step of a product's manufacturing record.
// A stage is created pending, moves to in-progress when StartDate is set and
// ends completed (CompletedDate set) or delayed once it exceeds its estimate.
type ProductionStage struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	ProductID         uint           `json:"product_id" gorm:"index"`
	StageKey          string         `json:"stage_key" gorm:"not null"`
	Name              string         `json:"name" gorm:"not null"`
	Status            StageStatus    `json:"status" gorm:"default:'pending'"`
	StartDate         string         `json:"start_date,omitempty"`
	CompletedDate     string         `json:"completed_date,omitempty"`
	EstimatedDuration float64        `json:"estimated_duration"` // hours
	ActualDuration    float64        `json:"actual_duration,omitempty"`
	Location          string         `json:"location"`
	ResponsibleParty  string         `json:"responsible_party"`
	Department        Department     `json:"department"`
	Notes             string         `json:"notes,omitempty"`
	QualityScore      float64        `json:"quality_score,omitempty"` // 1-10
	Dependencies      string         `json:"dependencies,omitempty"`  // comma-separated stage keys
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type QualityCheck struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	ProductID   uint           `json:"product_id" gorm:"index"`
	Stage       string         `json:"stage"`
	CheckDate   string         `json:"check_date"`
	Inspector   string         `json:"inspector"`
	Score       float64        `json:"score"` // 1-10
	Issues      string         `json:"issues,omitempty"`
	Approved    bool           `json:"approved"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type FurnitureProduct struct {
	ID                uint              `json:"id" gorm:"primaryKey"`
	OrderID           string            `json:"order_id" gorm:"index"`
	Name              string            `json:"name" gorm:"not null"`
	Category          string            `json:"category"`
	Subcategory       string            `json:"subcategory"`
	SKU               string            `json:"sku"`
	Quantity          int               `json:"quantity" gorm:"not null"`
	CompletedQuantity int               `json:"completed_quantity"`
	PendingQuantity   int               `json:"pending_quantity"`
	DelayedQuantity   int               `json:"delayed_quantity"`
	AssemblyRequired  bool              `json:"assembly_required"`
	ProductionStages  []ProductionStage `json:"production_stages" gorm:"foreignKey:ProductID"`
	QualityChecks     []QualityCheck    `json:"quality_checks" gorm:"foreignKey:ProductID"`
	EstimatedDelivery string            `json:"estimated_delivery"`
	ActualDelivery    string            `json:"actual_delivery,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	DeletedAt         gorm.DeletedAt    `json:"deleted_at" gorm:"index"`
}

type FurnitureOrder struct {
	ID                    string                `json:"id" gorm:"primaryKey"`
	CustomerName          string                `json:"customer_name" gorm:"not null"`
	CustomerEmail         string                `json:"customer_email"`
	CustomerPhone         string                `json:"customer_phone"`
	OrderDate             string                `json:"order_date"`
	RequestedDeliveryDate string                `json:"requested_delivery_date,omitempty"`
	Products              []FurnitureProduct    `json:"products" gorm:"foreignKey:OrderID"`
	Status                ProductionOrderStatus `json:"status" gorm:"default:'received'"`
	Dealer                string                `json:"dealer"`
	MainDealer            string                `json:"main_dealer"`
	SalesPerson           string                `json:"sales_person"`
	Priority              string                `json:"priority" gorm:"default:'normal'"` // low, normal, high, urgent
	CreatedAt             time.Time             `json:"created_at"`
	UpdatedAt             time.Time             `json:"updated_at"`
	DeletedAt             gorm.DeletedAt        `json:"deleted_at" gorm:"index"`
}

type RiskType string

const (
	RiskMaterialDelay    RiskType = "material-delay"
	RiskQualityIssue     RiskType = "quality-issue"
	RiskCapacityShortage RiskType = "capacity-shortage"
	RiskSupplierProblem  RiskType = "supplier-problem"
	RiskCustomComplexity RiskType = "custom-complexity"
)

// ProductionRisk is a derived report record, never persisted.
type ProductionRisk struct {
	ID          string   `json:"id"`
	Type        RiskType `json:"type"`
	Severity    string   `json:"severity"` // low, medium, high, critical
	Probability float64  `json:"probability"`
	Impact      int      `json:"impact"` // delay in days
	Description string   `json:"description"`
	Mitigation  string   `json:"mitigation"`
	AssignedTo  string   `json:"assigned_to"`
	Status      string   `json:"status"` // identified, monitoring, mitigating, resolved
}

// StageTemplate seeds the production stages for a product subcategory.
type StageTemplate struct {
	Name              string
	Department        Department
	EstimatedDuration float64 // hours
}

// ProductionStageTemplates lists the standard pipelines per subcategory key.
var ProductionStageTemplates = map[string][]StageTemplate{
	"koltuk-takimi": {
		{Name: "Tasarım Onayı", Department: DepartmentDesign, EstimatedDuration: 2},
		{Name: "Malzeme Temini", Department: DepartmentProduction, EstimatedDuration: 24},
		{Name: "Ahşap İşleme", Department: DepartmentProduction, EstimatedDuration: 8},
		{Name: "Döşeme Hazırlığı", Department: DepartmentProduction, EstimatedDuration: 4},
		{Name: "Montaj", Department: DepartmentAssembly, EstimatedDuration: 6},
		{Name: "Kalite Kontrolü", Department: DepartmentQuality, EstimatedDuration: 2},
		{Name: "Paketleme", Department: DepartmentLogistics, EstimatedDuration: 1},
		{Name: "Sevkiyat Hazırlığı", Department: DepartmentLogistics, EstimatedDuration: 1},
	},
	"yatak-odasi-takimi": {
		{Name: "Tasarım Onayı", Department: DepartmentDesign, EstimatedDuration: 3},
		{Name: "Malzeme Temini", Department: DepartmentProduction, EstimatedDuration: 48},
		{Name: "Ahşap Kesim", Department: DepartmentProduction, EstimatedDuration: 12},
		{Name: "Yüzey İşleme", Department: DepartmentProduction, EstimatedDuration: 16},
		{Name: "Montaj Hazırlığı", Department: DepartmentProduction, EstimatedDuration: 4},
		{Name: "Kalite Kontrolü", Department: DepartmentQuality, EstimatedDuration: 3},
		{Name: "Paketleme", Department: DepartmentLogistics, EstimatedDuration: 2},
		{Name: "Sevkiyat Hazırlığı", Department: DepartmentLogistics, EstimatedDuration: 1},
	},
	"yemek-masasi-seti": {
		{Name: "Tasarım Onayı", Department: DepartmentDesign, EstimatedDuration: 2},
		{Name: "Malzeme Temini", Department: DepartmentProduction, EstimatedDuration: 36},
		{Name: "Ahşap İşleme", Department: DepartmentProduction, EstimatedDuration: 10},
		{Name: "Yüzey Kaplama", Department: DepartmentProduction, EstimatedDuration: 8},
		{Name: "Montaj", Department: DepartmentAssembly, EstimatedDuration: 4},
		{Name: "Kalite Kontrolü", Department: DepartmentQuality, EstimatedDuration: 2},
		{Name: "Paketleme", Department: DepartmentLogistics, EstimatedDuration: 1},
		{Name: "Sevkiyat Hazırlığı", Department: DepartmentLogistics, EstimatedDuration: 1},
	},
}

// QualityCategory groups quality checks for the weighted quality score.
type QualityCategory struct {
	Name   string
	Weight float64
	Checks []string
}

var QualityCriteria = map[string]QualityCategory{
	"structural": {
		Name:   "Yapısal Dayanıklılık",
		Weight: 30,
		Checks: []string{"Bağlantı noktaları", "Malzeme kalitesi", "Stabilite"},
	},
	"finish": {
		Name:   "Yüzey Kalitesi",
		Weight: 25,
		Checks: []string{"Boyama/Vernik", "Pürüzsüzlük", "Renk uyumu"},
	},
	"assembly": {
		Name:   "Montaj Kalitesi",
		Weight: 20,
		Checks: []string{"Parça uyumu", "Hizalama", "Sıkılık"},
	},
	"functionality": {
		Name:   "Fonksiyonellik",
		Weight: 15,
		Checks: []string{"Hareket parçaları", "Kapak/Çekmece", "Mekanizmalar"},
	},
	"aesthetics": {
		Name:   "Estetik",
		Weight: 10,
		Checks: []string{"Görsel uyum", "Temizlik", "Genel görünüm"},
	},
}

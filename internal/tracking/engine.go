package tracking

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"dealer_dashboard/internal/models"
)

const (
	defaultWeeklyCapacity = 160 // hours: 40h x 4 workers per department
	inProgressCap         = 95  // an in-progress stage never self-reports done
	delayedCap            = 80
	riskBuffer            = 1.2 // 20% buffer on remaining hours
	packagingDays         = 3   // packaging + shipping after last product completes
	capacityAlertRatio    = 0.8
	dateLayout            = "2006-01-02"
)

// Engine derives progress, risk and capacity reports from production
// snapshots. Stateless apart from the clock and the capacity constant.
type Engine struct {
	now            func() time.Time
	weeklyCapacity float64
}

func NewEngine(weeklyCapacity float64) *Engine {
	if weeklyCapacity <= 0 {
		weeklyCapacity = defaultWeeklyCapacity
	}
	return &Engine{now: time.Now, weeklyCapacity: weeklyCapacity}
}

type ProductProgress struct {
	OverallProgress     int                     `json:"overall_progress"`
	StageProgress       map[string]float64      `json:"stage_progress"`
	EstimatedCompletion string                  `json:"estimated_completion"`
	Risks               []models.ProductionRisk `json:"risks"`
	Bottlenecks         []string                `json:"bottlenecks"`
}

// CalculateProductProgress weighs each stage by its department share.
// Completed stages contribute fully, in-progress ones their elapsed fraction
// capped at 95%, delayed ones the same fraction capped at 80% plus a
// material-delay risk.
func (e *Engine) CalculateProductProgress(product models.FurnitureProduct) ProductProgress {
	stages := product.ProductionStages
	stageProgress := make(map[string]float64, len(stages))
	var risks []models.ProductionRisk
	var bottlenecks []string

	var totalWeight, completedWeight float64
	for i, stage := range stages {
		weight := stage.Department.Weight()
		totalWeight += weight

		var progress float64
		switch stage.Status {
		case models.StageCompleted:
			progress = 100
			completedWeight += weight
		case models.StageInProgress:
			progress = e.inProgressStageProgress(stage)
			completedWeight += weight * progress / 100
		case models.StageDelayed:
			progress = e.delayedStageProgress(stage)
			completedWeight += weight * progress / 100

			risks = append(risks, models.ProductionRisk{
				ID:          "risk-" + stage.StageKey,
				Type:        models.RiskMaterialDelay,
				Severity:    "high",
				Probability: 0.8,
				Impact:      delayImpactDays(stage),
				Description: fmt.Sprintf("%s aşaması gecikme yaşıyor", stage.Name),
				Mitigation:  "Alternatif tedarikçi araştırılması",
				AssignedTo:  stage.ResponsibleParty,
				Status:      "monitoring",
			})
		}

		stageProgress[stage.StageKey] = progress

		if stage.Status == models.StageInProgress && isBottleneck(stages, i) {
			bottlenecks = append(bottlenecks, stage.Name)
		}
	}

	var overallProgress float64
	if totalWeight > 0 {
		overallProgress = completedWeight / totalWeight * 100
	}

	return ProductProgress{
		OverallProgress:     int(math.Round(overallProgress)),
		StageProgress:       stageProgress,
		EstimatedCompletion: e.estimatedCompletion(product),
		Risks:               risks,
		Bottlenecks:         bottlenecks,
	}
}

// inProgressStageProgress maps elapsed time against the estimate. A missing
// or malformed start date counts as no progress, not a failure.
func (e *Engine) inProgressStageProgress(stage models.ProductionStage) float64 {
	if stage.StartDate == "" || stage.EstimatedDuration <= 0 {
		return 0
	}
	start, err := models.ParseDate(stage.StartDate)
	if err != nil {
		return 0
	}

	elapsedHours := e.now().Sub(start).Hours()
	progress := elapsedHours / stage.EstimatedDuration * 100
	if progress > inProgressCap {
		progress = inProgressCap
	}
	if progress < 0 {
		progress = 0
	}
	return progress
}

func (e *Engine) delayedStageProgress(stage models.ProductionStage) float64 {
	progress := e.inProgressStageProgress(stage)
	if progress > delayedCap {
		progress = delayedCap
	}
	return progress
}

func delayImpactDays(stage models.ProductionStage) int {
	overrun := stage.ActualDuration - stage.EstimatedDuration
	if overrun <= 0 {
		return 0
	}
	return int(math.Ceil(overrun / 24))
}

// A stage is a bottleneck when it is in progress and at least two of the
// next two stages in sequence are still waiting on it.
func isBottleneck(stages []models.ProductionStage, index int) bool {
	end := index + 3
	if end > len(stages) {
		end = len(stages)
	}
	waiting := 0
	for _, next := range stages[index+1 : end] {
		if next.Status == models.StagePending {
			waiting++
		}
	}
	return waiting >= 2
}

// estimatedCompletion projects the remaining stage hours forward with a 20%
// risk buffer. In-progress stages count only their unelapsed fraction.
func (e *Engine) estimatedCompletion(product models.FurnitureProduct) string {
	var remainingHours float64
	for _, stage := range product.ProductionStages {
		switch stage.Status {
		case models.StageCompleted:
		case models.StageInProgress:
			progress := e.inProgressStageProgress(stage)
			remainingHours += stage.EstimatedDuration * (1 - progress/100)
		default:
			remainingHours += stage.EstimatedDuration
		}
	}

	remainingHours *= riskBuffer
	completion := e.now().Add(time.Duration(remainingHours * float64(time.Hour)))
	return completion.Format(dateLayout)
}

type OrderProgress struct {
	OverallProgress   int                      `json:"overall_progress"`
	ProductProgress   map[uint]ProductProgress `json:"product_progress"`
	CriticalPath      []string                 `json:"critical_path"`
	EstimatedDelivery string                   `json:"estimated_delivery"`
	TotalRisks        []models.ProductionRisk  `json:"total_risks"`
	Recommendations   []string                 `json:"recommendations"`
}

// CalculateOrderProgress is the quantity-weighted mean of the per-product
// progress, with risks aggregated and critical-path notes per bottlenecked
// product. Delivery is the latest product completion plus packaging time.
func (e *Engine) CalculateOrderProgress(order models.FurnitureOrder) OrderProgress {
	productProgress := make(map[uint]ProductProgress, len(order.Products))
	var allRisks []models.ProductionRisk
	var criticalPath []string
	var recommendations []string

	var totalWeight, completedWeight float64
	for _, product := range order.Products {
		weight := float64(product.Quantity)
		totalWeight += weight

		progress := e.CalculateProductProgress(product)
		productProgress[product.ID] = progress

		completedWeight += weight * float64(progress.OverallProgress) / 100
		allRisks = append(allRisks, progress.Risks...)

		if len(progress.Bottlenecks) > 0 {
			criticalPath = append(criticalPath, fmt.Sprintf("%s: %s", product.Name, strings.Join(progress.Bottlenecks, ", ")))
		}
		if progress.OverallProgress < 50 && len(progress.Risks) > 0 {
			recommendations = append(recommendations, fmt.Sprintf("%s için acil müdahale gerekli", product.Name))
		}
	}

	var overallProgress float64
	if totalWeight > 0 {
		overallProgress = completedWeight / totalWeight * 100
	}

	if len(allRisks) > 3 {
		recommendations = append(recommendations, "Çok sayıda risk tespit edildi, proje yöneticisi ile görüşün")
	}
	if len(criticalPath) > 0 {
		recommendations = append(recommendations, "Kritik yol üzerindeki darboğazları öncelikle çözün")
	}

	return OrderProgress{
		OverallProgress:   int(math.Round(overallProgress)),
		ProductProgress:   productProgress,
		CriticalPath:      criticalPath,
		EstimatedDelivery: e.orderDeliveryDate(productProgress),
		TotalRisks:        allRisks,
		Recommendations:   recommendations,
	}
}

func (e *Engine) orderDeliveryDate(productProgress map[uint]ProductProgress) string {
	latest := e.now()
	for _, progress := range productProgress {
		completion, err := models.ParseDate(progress.EstimatedCompletion)
		if err != nil {
			continue
		}
		if completion.After(latest) {
			latest = completion
		}
	}
	return latest.AddDate(0, 0, packagingDays).Format(dateLayout)
}

type CapacityAnalysis struct {
	DepartmentLoad          map[models.Department]float64            `json:"department_load"`
	BottleneckDepartments   []models.Department                      `json:"bottleneck_departments"`
	CapacityRecommendations []string                                 `json:"capacity_recommendations"`
	WeeklySchedule          map[string]map[models.Department]float64 `json:"weekly_schedule"`
}

// AnalyzeProductionCapacity sums outstanding stage hours per department
// across active orders and flags departments loaded past 80% of the weekly
// capacity constant.
func (e *Engine) AnalyzeProductionCapacity(orders []models.FurnitureOrder) CapacityAnalysis {
	departmentLoad := map[models.Department]float64{
		models.DepartmentDesign:     0,
		models.DepartmentProduction: 0,
		models.DepartmentQuality:    0,
		models.DepartmentAssembly:   0,
		models.DepartmentLogistics:  0,
	}
	weeklySchedule := make(map[string]map[models.Department]float64)
	week := weekKey(e.now())

	for _, order := range orders {
		if order.Status != models.ProductionInProduction && order.Status != models.ProductionQualityCheck {
			continue
		}
		for _, product := range order.Products {
			for _, stage := range product.ProductionStages {
				if stage.Status != models.StageInProgress && stage.Status != models.StagePending {
					continue
				}
				departmentLoad[stage.Department] += stage.EstimatedDuration

				if weeklySchedule[week] == nil {
					weeklySchedule[week] = make(map[models.Department]float64)
				}
				weeklySchedule[week][stage.Department] += stage.EstimatedDuration
			}
		}
	}

	var bottlenecks []models.Department
	for department, load := range departmentLoad {
		if load > e.weeklyCapacity*capacityAlertRatio {
			bottlenecks = append(bottlenecks, department)
		}
	}
	sort.Slice(bottlenecks, func(i, j int) bool { return bottlenecks[i] < bottlenecks[j] })

	var recommendations []string
	if len(bottlenecks) > 0 {
		names := make([]string, len(bottlenecks))
		for i, department := range bottlenecks {
			names[i] = string(department)
		}
		recommendations = append(recommendations, fmt.Sprintf("Şu departmanlarda kapasite artırımı gerekli: %s", strings.Join(names, ", ")))
	}

	return CapacityAnalysis{
		DepartmentLoad:          departmentLoad,
		BottleneckDepartments:   bottlenecks,
		CapacityRecommendations: recommendations,
		WeeklySchedule:          weeklySchedule,
	}
}

func weekKey(date time.Time) string {
	week := int(math.Ceil(float64(date.Day()-int(date.Weekday())+1) / 7))
	return fmt.Sprintf("%d-W%d", date.Year(), week)
}

type CustomerUpdate struct {
	Message           string `json:"message"`
	EstimatedDelivery string `json:"estimated_delivery"`
	NextMilestone     string `json:"next_milestone"`
	DelayReason       string `json:"delay_reason,omitempty"`
	CompensationOffer string `json:"compensation_offer,omitempty"`
}

// GenerateCustomerUpdate renders the canned progress message for an order
// and, when the projected delivery slips past the requested date, the delay
// reason and any compensation offer.
func (e *Engine) GenerateCustomerUpdate(order models.FurnitureOrder) CustomerUpdate {
	progress := e.CalculateOrderProgress(order)

	message := fmt.Sprintf("Merhaba %s, ", order.CustomerName)
	switch {
	case progress.OverallProgress >= 90:
		message += "siparişiniz tamamlanmak üzere! Teslimat hazırlıkları başladı."
	case progress.OverallProgress >= 70:
		message += "siparişiniz son aşamalarında. Kalite kontrolleri devam ediyor."
	case progress.OverallProgress >= 40:
		message += "siparişiniz üretim aşamasında. Her şey planlandığı gibi ilerliyor."
	default:
		message += "siparişiniz üretim sürecinde. Malzeme hazırlıkları tamamlandı."
	}

	var delayReason, compensationOffer string
	requested := order.RequestedDeliveryDate
	if requested == "" {
		requested = order.OrderDate
	}
	requestedDate, reqErr := models.ParseDate(requested)
	newDelivery, newErr := models.ParseDate(progress.EstimatedDelivery)
	if reqErr == nil && newErr == nil && newDelivery.After(requestedDate) {
		delayDays := int(math.Ceil(newDelivery.Sub(requestedDate).Hours() / 24))
		delayReason = "Üretim yoğunluğu"
		if len(progress.TotalRisks) > 0 {
			delayReason = progress.TotalRisks[0].Description
		}
		if delayDays > 7 {
			compensationOffer = "Gecikmeden dolayı ücretsiz montaj hizmeti sunuyoruz."
		}
	}

	return CustomerUpdate{
		Message:           message,
		EstimatedDelivery: progress.EstimatedDelivery,
		NextMilestone:     nextMilestone(order),
		DelayReason:       delayReason,
		CompensationOffer: compensationOffer,
	}
}

func nextMilestone(order models.FurnitureOrder) string {
	var firstPending string
	for _, product := range order.Products {
		for _, stage := range product.ProductionStages {
			if stage.Status == models.StageInProgress {
				return stage.Name
			}
			if firstPending == "" && stage.Status == models.StagePending {
				firstPending = stage.Name
			}
		}
	}
	if firstPending != "" {
		return firstPending
	}
	return "Teslimat hazırlığı"
}

type QualityScore struct {
	OverallScore    float64            `json:"overall_score"`
	CategoryScores  map[string]float64 `json:"category_scores"`
	Issues          []string           `json:"issues"`
	Recommendations []string           `json:"recommendations"`
}

// CalculateQualityScore averages a product's quality checks per criteria
// category and aggregates them by category weight. Categories scoring under
// 7 raise an issue and a re-check recommendation.
func (e *Engine) CalculateQualityScore(product models.FurnitureProduct) QualityScore {
	categoryScores := make(map[string]float64)
	var issues, recommendations []string
	var totalWeight, weightedScore float64

	keys := make([]string, 0, len(models.QualityCriteria))
	for key := range models.QualityCriteria {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		category := models.QualityCriteria[key]

		var sum float64
		var count int
		for _, check := range product.QualityChecks {
			for _, name := range category.Checks {
				if strings.Contains(strings.ToLower(check.Stage), strings.ToLower(name)) {
					sum += check.Score
					count++
					break
				}
			}
		}
		if count == 0 {
			continue
		}

		avg := sum / float64(count)
		categoryScores[key] = avg
		totalWeight += category.Weight
		weightedScore += avg * category.Weight

		if avg < 7 {
			issues = append(issues, fmt.Sprintf("%s kategorisinde düşük skor: %.1f", category.Name, avg))
			recommendations = append(recommendations, fmt.Sprintf("%s için ek kontrol yapılmalı", category.Name))
		}
	}

	var overall float64
	if totalWeight > 0 {
		overall = weightedScore / totalWeight
	}

	return QualityScore{
		OverallScore:    math.Round(overall*10) / 10,
		CategoryScores:  categoryScores,
		Issues:          issues,
		Recommendations: recommendations,
	}
}

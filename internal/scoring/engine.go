package scoring

import (
	"math"
	"sort"

	"dealer_dashboard/internal/models"
)

// placeholderApprovalTime stands in for dealers whose approval metric has
// not been backfilled yet; AverageApprovalTime wins whenever it is set.
const placeholderApprovalTime = 2.5 // days

// Engine computes dealer sub-scores from criteria band tables, aggregates
// them into a weighted total and classifies the result into star tiers.
// All methods are pure over their inputs.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) OrderApprovalScore(dealer models.DealerPerformance, criteria models.ScoringCriteria) float64 {
	approvalTime := dealer.AverageApprovalTime
	if approvalTime <= 0 {
		approvalTime = placeholderApprovalTime
	}

	switch {
	case approvalTime <= 1:
		return criteria.OrderApproval.Day1
	case approvalTime <= 2:
		return criteria.OrderApproval.Day2
	case approvalTime <= 3:
		return criteria.OrderApproval.Day3
	case approvalTime <= 4:
		return criteria.OrderApproval.Day4
	default:
		return criteria.OrderApproval.Day5Plus
	}
}

func (e *Engine) DeliveryScore(dealer models.DealerPerformance, criteria models.ScoringCriteria) float64 {
	switch {
	case dealer.AverageDeliveryTime <= 2:
		return criteria.Delivery.Day1to2
	case dealer.AverageDeliveryTime <= 4:
		return criteria.Delivery.Day3to4
	case dealer.AverageDeliveryTime <= 7:
		return criteria.Delivery.Day5to7
	case dealer.AverageDeliveryTime <= 10:
		return criteria.Delivery.Day8to10
	default:
		return criteria.Delivery.Day10Plus
	}
}

func (e *Engine) SatisfactionScore(dealer models.DealerPerformance, criteria models.ScoringCriteria) float64 {
	switch {
	case dealer.CustomerSatisfaction >= 4.5:
		return criteria.Satisfaction.Star5
	case dealer.CustomerSatisfaction >= 3.5:
		return criteria.Satisfaction.Star4
	case dealer.CustomerSatisfaction >= 2.5:
		return criteria.Satisfaction.Star3
	case dealer.CustomerSatisfaction >= 1.5:
		return criteria.Satisfaction.Star2
	default:
		return criteria.Satisfaction.Star1
	}
}

func (e *Engine) CompletionScore(dealer models.DealerPerformance, criteria models.ScoringCriteria) float64 {
	// A dealer with no orders has completed 0% of them, not 0/0.
	var completionRate float64
	if dealer.TotalOrders > 0 {
		completionRate = float64(dealer.CompletedOrders) / float64(dealer.TotalOrders) * 100
	}

	switch {
	case completionRate >= 95:
		return criteria.Completion.Percent95to100
	case completionRate >= 90:
		return criteria.Completion.Percent90to94
	case completionRate >= 85:
		return criteria.Completion.Percent85to89
	case completionRate >= 80:
		return criteria.Completion.Percent80to84
	default:
		return criteria.Completion.PercentUnder80
	}
}

type ScoreBreakdown struct {
	OrderApprovalScore float64 `json:"order_approval_score"`
	DeliveryScore      float64 `json:"delivery_score"`
	SatisfactionScore  float64 `json:"satisfaction_score"`
	CompletionScore    float64 `json:"completion_score"`
}

type PerformanceScore struct {
	TotalScore int            `json:"total_score"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
}

// CalculatePerformanceScore aggregates the four sub-scores. Weights are
// normalized by their sum (a zero sum is treated as 1) so configurations
// that do not add up to 100 still behave predictably.
func (e *Engine) CalculatePerformanceScore(dealer models.DealerPerformance, criteria models.ScoringCriteria, weights models.ScoringWeights) PerformanceScore {
	breakdown := ScoreBreakdown{
		OrderApprovalScore: e.OrderApprovalScore(dealer, criteria),
		DeliveryScore:      e.DeliveryScore(dealer, criteria),
		SatisfactionScore:  e.SatisfactionScore(dealer, criteria),
		CompletionScore:    e.CompletionScore(dealer, criteria),
	}

	sum := weights.Sum()
	if sum == 0 {
		sum = 1
	}

	total := breakdown.OrderApprovalScore*weights.OrderApproval/sum +
		breakdown.DeliveryScore*weights.Delivery/sum +
		breakdown.SatisfactionScore*weights.Satisfaction/sum +
		breakdown.CompletionScore*weights.Completion/sum

	return PerformanceScore{
		TotalScore: int(math.Round(total)),
		Breakdown:  breakdown,
	}
}

// CalculateStarRating returns the stars of the first band containing the
// score, scanning in the order given. 1 star is the fallback for a table
// with gaps; it should not trigger on a complete table.
func (e *Engine) CalculateStarRating(score int, bands []models.StarRatingBand) int {
	for _, band := range bands {
		if score >= band.MinScore && score <= band.MaxScore {
			return band.Stars
		}
	}
	return 1
}

func (e *Engine) StarRatingLabel(score int, bands []models.StarRatingBand) string {
	for _, band := range bands {
		if score >= band.MinScore && score <= band.MaxScore {
			return band.Label
		}
	}
	return "Kritik"
}

// BuildDealerHierarchy partitions the flat collection into main-dealers
// with their sub-dealers attached by ParentDealerID, order preserved. Each
// main-dealer with at least one sub-dealer gets its score recomputed as the
// rounded mean of its sub-dealers' scores and its stars re-classified; a
// main-dealer without sub-dealers keeps its own score.
func (e *Engine) BuildDealerHierarchy(dealers []models.DealerPerformance, bands []models.StarRatingBand) []models.DealerPerformance {
	var mains []models.DealerPerformance
	var subs []models.DealerPerformance
	for _, dealer := range dealers {
		switch dealer.Type {
		case models.DealerTypeMain:
			mains = append(mains, dealer)
		default:
			subs = append(subs, dealer)
		}
	}

	for i := range mains {
		mains[i].SubDealers = nil
		for _, sub := range subs {
			if sub.ParentDealerID == mains[i].ID {
				mains[i].SubDealers = append(mains[i].SubDealers, sub)
			}
		}

		if len(mains[i].SubDealers) > 0 {
			var sum float64
			for _, sub := range mains[i].SubDealers {
				sum += float64(sub.PerformanceScore)
			}
			mains[i].PerformanceScore = int(math.Round(sum / float64(len(mains[i].SubDealers))))
			mains[i].StarRating = e.CalculateStarRating(mains[i].PerformanceScore, bands)
		}
	}

	return mains
}

type SortKey string

const (
	SortByScore        SortKey = "score"
	SortByRevenue      SortKey = "revenue"
	SortByOrders       SortKey = "orders"
	SortBySatisfaction SortKey = "satisfaction"
)

// SortDealers returns a new slice sorted descending by the given key.
// An unknown key returns the input order unchanged.
func (e *Engine) SortDealers(dealers []models.DealerPerformance, key SortKey) []models.DealerPerformance {
	sorted := make([]models.DealerPerformance, len(dealers))
	copy(sorted, dealers)

	switch key {
	case SortByScore:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PerformanceScore > sorted[j].PerformanceScore
		})
	case SortByRevenue:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].MonthlyRevenue > sorted[j].MonthlyRevenue
		})
	case SortByOrders:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].TotalOrders > sorted[j].TotalOrders
		})
	case SortBySatisfaction:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CustomerSatisfaction > sorted[j].CustomerSatisfaction
		})
	}

	return sorted
}

// FilterDealersByStars keeps dealers already classified at the given tier.
func (e *Engine) FilterDealersByStars(dealers []models.DealerPerformance, stars int) []models.DealerPerformance {
	var filtered []models.DealerPerformance
	for _, dealer := range dealers {
		if dealer.StarRating == stars {
			filtered = append(filtered, dealer)
		}
	}
	return filtered
}

package scoring

import (
	"testing"

	"dealer_dashboard/internal/models"
)

func TestOrderApprovalScoreBands(t *testing.T) {
	engine := NewEngine()
	criteria := models.DefaultScoringCriteria()

	cases := []struct {
		approvalTime float64
		want         float64
	}{
		{0.5, 100},
		{1, 100},
		{2, 90},
		{2.5, 80},
		{3, 80},
		{4, 70},
		{6, 50},
	}
	for _, tc := range cases {
		dealer := models.DealerPerformance{AverageApprovalTime: tc.approvalTime}
		if got := engine.OrderApprovalScore(dealer, criteria); got != tc.want {
			t.Errorf("approval time %.1f: score = %f, want %f", tc.approvalTime, got, tc.want)
		}
	}
}

func TestOrderApprovalScorePlaceholder(t *testing.T) {
	engine := NewEngine()
	criteria := models.DefaultScoringCriteria()

	// No approval metric yet, so 2.5 days stands in.
	dealer := models.DealerPerformance{AverageApprovalTime: 0}
	if got := engine.OrderApprovalScore(dealer, criteria); got != criteria.OrderApproval.Day3 {
		t.Errorf("placeholder approval score = %f, want %f", got, criteria.OrderApproval.Day3)
	}
}

func TestDeliveryScoreBands(t *testing.T) {
	engine := NewEngine()
	criteria := models.DefaultScoringCriteria()

	cases := []struct {
		deliveryTime float64
		want         float64
	}{
		{1, 100},
		{2, 100},
		{3, 85},
		{5, 70},
		{8, 50},
		{12, 30},
	}
	for _, tc := range cases {
		dealer := models.DealerPerformance{AverageDeliveryTime: tc.deliveryTime}
		if got := engine.DeliveryScore(dealer, criteria); got != tc.want {
			t.Errorf("delivery time %.0f: score = %f, want %f", tc.deliveryTime, got, tc.want)
		}
	}
}

func TestSatisfactionScoreBands(t *testing.T) {
	engine := NewEngine()
	criteria := models.DefaultScoringCriteria()

	cases := []struct {
		satisfaction float64
		want         float64
	}{
		{5, 100},
		{4.5, 100},
		{4.0, 80},
		{3.0, 60},
		{2.0, 40},
		{1.0, 20},
	}
	for _, tc := range cases {
		dealer := models.DealerPerformance{CustomerSatisfaction: tc.satisfaction}
		if got := engine.SatisfactionScore(dealer, criteria); got != tc.want {
			t.Errorf("satisfaction %.1f: score = %f, want %f", tc.satisfaction, got, tc.want)
		}
	}
}

func TestCompletionScoreBands(t *testing.T) {
	engine := NewEngine()
	criteria := models.DefaultScoringCriteria()

	cases := []struct {
		total, completed int
		want             float64
	}{
		{100, 97, 100},
		{100, 92, 90},
		{100, 86, 80},
		{100, 81, 70},
		{100, 60, 50},
	}
	for _, tc := range cases {
		dealer := models.DealerPerformance{TotalOrders: tc.total, CompletedOrders: tc.completed}
		if got := engine.CompletionScore(dealer, criteria); got != tc.want {
			t.Errorf("%d/%d completed: score = %f, want %f", tc.completed, tc.total, got, tc.want)
		}
	}
}

func TestCompletionScoreNoOrders(t *testing.T) {
	engine := NewEngine()
	criteria := models.DefaultScoringCriteria()

	dealer := models.DealerPerformance{TotalOrders: 0, CompletedOrders: 0}
	if got := engine.CompletionScore(dealer, criteria); got != criteria.Completion.PercentUnder80 {
		t.Errorf("no-orders score = %f, want lowest band %f", got, criteria.Completion.PercentUnder80)
	}
}

func TestCalculatePerformanceScore(t *testing.T) {
	engine := NewEngine()
	criteria := models.DefaultScoringCriteria()
	weights := models.DefaultScoringWeights()

	dealer := models.DealerPerformance{
		AverageApprovalTime:  2,   // 90
		AverageDeliveryTime:  3,   // 85
		CustomerSatisfaction: 4.6, // 100
		TotalOrders:          100,
		CompletedOrders:      96, // 100
	}

	score := engine.CalculatePerformanceScore(dealer, criteria, weights)
	// 90*0.25 + 85*0.30 + 100*0.25 + 100*0.20 = 93
	if score.TotalScore != 93 {
		t.Errorf("total score = %d, want 93", score.TotalScore)
	}
	if score.Breakdown.DeliveryScore != 85 {
		t.Errorf("delivery breakdown = %f, want 85", score.Breakdown.DeliveryScore)
	}
	if stars := engine.CalculateStarRating(score.TotalScore, models.DefaultStarRatings()); stars != 5 {
		t.Errorf("stars = %d, want 5", stars)
	}
}

func TestCalculatePerformanceScoreNormalizesWeights(t *testing.T) {
	engine := NewEngine()
	criteria := models.DefaultScoringCriteria()

	dealer := models.DealerPerformance{
		AverageApprovalTime:  1,
		AverageDeliveryTime:  1,
		CustomerSatisfaction: 5,
		TotalOrders:          10,
		CompletedOrders:      10,
	}

	// Weights summing to 50 behave like percentages summing to 100.
	halved := models.ScoringWeights{OrderApproval: 12.5, Delivery: 15, Satisfaction: 12.5, Completion: 10}
	score := engine.CalculatePerformanceScore(dealer, criteria, halved)
	if score.TotalScore != 100 {
		t.Errorf("total score = %d, want 100", score.TotalScore)
	}
}

func TestCalculatePerformanceScoreZeroWeights(t *testing.T) {
	engine := NewEngine()
	criteria := models.DefaultScoringCriteria()

	score := engine.CalculatePerformanceScore(models.DealerPerformance{}, criteria, models.ScoringWeights{})
	if score.TotalScore != 0 {
		t.Errorf("all-zero weights: total = %d, want 0", score.TotalScore)
	}
}

func TestCalculateStarRating(t *testing.T) {
	engine := NewEngine()
	bands := models.DefaultStarRatings()

	cases := []struct {
		score, stars int
	}{
		{100, 5},
		{85, 5},
		{84, 4},
		{70, 4},
		{55, 3},
		{40, 2},
		{39, 1},
		{0, 1},
	}
	for _, tc := range cases {
		if got := engine.CalculateStarRating(tc.score, bands); got != tc.stars {
			t.Errorf("score %d: stars = %d, want %d", tc.score, got, tc.stars)
		}
	}
}

func TestCalculateStarRatingGapFallback(t *testing.T) {
	engine := NewEngine()
	gapped := []models.StarRatingBand{{MinScore: 80, MaxScore: 100, Stars: 5, Label: "Mükemmel"}}

	if got := engine.CalculateStarRating(50, gapped); got != 1 {
		t.Errorf("uncovered score: stars = %d, want fallback 1", got)
	}
	if got := engine.StarRatingLabel(50, gapped); got != "Kritik" {
		t.Errorf("uncovered score: label = %q, want Kritik", got)
	}
}

func TestBuildDealerHierarchy(t *testing.T) {
	engine := NewEngine()
	bands := models.DefaultStarRatings()

	dealers := []models.DealerPerformance{
		{ID: "M-1", Name: "İstanbul Ana Bayi", Type: models.DealerTypeMain, PerformanceScore: 50, StarRating: 2},
		{ID: "M-2", Name: "Ankara Ana Bayi", Type: models.DealerTypeMain, PerformanceScore: 77, StarRating: 4},
		{ID: "D-1", Name: "Kadıköy Bayi", Type: models.DealerTypeDealer, ParentDealerID: "M-1", PerformanceScore: 80},
		{ID: "D-2", Name: "Beşiktaş Bayi", Type: models.DealerTypeDealer, ParentDealerID: "M-1", PerformanceScore: 91},
	}

	mains := engine.BuildDealerHierarchy(dealers, bands)
	if len(mains) != 2 {
		t.Fatalf("got %d main dealers, want 2", len(mains))
	}

	m1 := mains[0]
	if m1.ID != "M-1" {
		t.Fatalf("input order not preserved, first main = %s", m1.ID)
	}
	if len(m1.SubDealers) != 2 {
		t.Fatalf("M-1 sub-dealers = %d, want 2", len(m1.SubDealers))
	}
	// Mean of 80 and 91, rounded.
	if m1.PerformanceScore != 86 {
		t.Errorf("M-1 recomputed score = %d, want 86", m1.PerformanceScore)
	}
	if m1.StarRating != 5 {
		t.Errorf("M-1 stars = %d, want 5", m1.StarRating)
	}

	m2 := mains[1]
	if len(m2.SubDealers) != 0 {
		t.Errorf("M-2 sub-dealers = %d, want 0", len(m2.SubDealers))
	}
	if m2.PerformanceScore != 77 || m2.StarRating != 4 {
		t.Errorf("M-2 without sub-dealers must keep its own score, got %d/%d stars", m2.PerformanceScore, m2.StarRating)
	}
}

func TestSortDealers(t *testing.T) {
	engine := NewEngine()
	dealers := []models.DealerPerformance{
		{ID: "D-1", MonthlyRevenue: 120000, PerformanceScore: 60, TotalOrders: 40, CustomerSatisfaction: 3.1},
		{ID: "D-2", MonthlyRevenue: 450000, PerformanceScore: 88, TotalOrders: 15, CustomerSatisfaction: 4.8},
		{ID: "D-3", MonthlyRevenue: 300000, PerformanceScore: 72, TotalOrders: 90, CustomerSatisfaction: 4.1},
	}

	byRevenue := engine.SortDealers(dealers, SortByRevenue)
	for i := 1; i < len(byRevenue); i++ {
		if byRevenue[i-1].MonthlyRevenue < byRevenue[i].MonthlyRevenue {
			t.Fatalf("revenue order violated at %d: %v", i, byRevenue)
		}
	}

	byOrders := engine.SortDealers(dealers, SortByOrders)
	if byOrders[0].ID != "D-3" {
		t.Errorf("top by orders = %s, want D-3", byOrders[0].ID)
	}

	// The input slice stays untouched.
	if dealers[0].ID != "D-1" {
		t.Error("SortDealers mutated its input")
	}

	unknown := engine.SortDealers(dealers, SortKey("bogus"))
	for i := range dealers {
		if unknown[i].ID != dealers[i].ID {
			t.Fatalf("unknown sort key must keep input order, got %v", unknown)
		}
	}
}

func TestFilterDealersByStars(t *testing.T) {
	engine := NewEngine()
	dealers := []models.DealerPerformance{
		{ID: "D-1", StarRating: 5},
		{ID: "D-2", StarRating: 3},
		{ID: "D-3", StarRating: 5},
	}

	got := engine.FilterDealersByStars(dealers, 5)
	if len(got) != 2 {
		t.Fatalf("got %d dealers, want 2", len(got))
	}
	for _, d := range got {
		if d.StarRating != 5 {
			t.Errorf("dealer %s has %d stars", d.ID, d.StarRating)
		}
	}
}

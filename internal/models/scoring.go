package models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Scoring criteria are band tables: a step function from a continuous metric
// to a configured point value. Values are configuration, not computed.

type OrderApprovalCriteria struct {
	Day1     float64 `json:"day1"`
	Day2     float64 `json:"day2"`
	Day3     float64 `json:"day3"`
	Day4     float64 `json:"day4"`
	Day5Plus float64 `json:"day5_plus"`
}

type DeliveryCriteria struct {
	Day1to2   float64 `json:"day1to2"`
	Day3to4   float64 `json:"day3to4"`
	Day5to7   float64 `json:"day5to7"`
	Day8to10  float64 `json:"day8to10"`
	Day10Plus float64 `json:"day10_plus"`
}

type SatisfactionCriteria struct {
	Star5 float64 `json:"star5"`
	Star4 float64 `json:"star4"`
	Star3 float64 `json:"star3"`
	Star2 float64 `json:"star2"`
	Star1 float64 `json:"star1"`
}

type CompletionCriteria struct {
	Percent95to100 float64 `json:"percent95to100"`
	Percent90to94  float64 `json:"percent90to94"`
	Percent85to89  float64 `json:"percent85to89"`
	Percent80to84  float64 `json:"percent80to84"`
	PercentUnder80 float64 `json:"percent_under80"`
}

type ScoringCriteria struct {
	OrderApproval OrderApprovalCriteria `json:"order_approval"`
	Delivery      DeliveryCriteria      `json:"delivery"`
	Satisfaction  SatisfactionCriteria  `json:"satisfaction"`
	Completion    CompletionCriteria    `json:"completion"`
}

// ScoringWeights need not sum to 100; the engine normalizes by the sum at
// use time and falls back to 1 when the sum is 0.
type ScoringWeights struct {
	OrderApproval float64 `json:"order_approval"`
	Delivery      float64 `json:"delivery"`
	Satisfaction  float64 `json:"satisfaction"`
	Completion    float64 `json:"completion"`
}

func (w ScoringWeights) Sum() float64 {
	return w.OrderApproval + w.Delivery + w.Satisfaction + w.Completion
}

func (w ScoringWeights) Validate() error {
	if w.OrderApproval < 0 || w.Delivery < 0 || w.Satisfaction < 0 || w.Completion < 0 {
		return errors.New("scoring weights must be non-negative")
	}
	return nil
}

// StarRatingBand maps a score range to a star tier. Bands are scanned in
// order; the first band containing the score wins.
type StarRatingBand struct {
	MinScore int    `json:"min_score"`
	MaxScore int    `json:"max_score"`
	Stars    int    `json:"stars"`
	Label    string `json:"label"`
}

// ValidateStarBands checks that the bands, taken together, cover [0,100]
// without gaps. Classification still works on a broken table (it falls back
// to 1 star) but a broken table is a configuration mistake worth rejecting.
func ValidateStarBands(bands []StarRatingBand) error {
	if len(bands) == 0 {
		return errors.New("star rating bands are empty")
	}
	covered := make([]bool, 101)
	for _, b := range bands {
		if b.MinScore > b.MaxScore {
			return fmt.Errorf("star band %q: min_score %d exceeds max_score %d", b.Label, b.MinScore, b.MaxScore)
		}
		for s := b.MinScore; s <= b.MaxScore && s <= 100; s++ {
			if s >= 0 {
				covered[s] = true
			}
		}
	}
	for s, ok := range covered {
		if !ok {
			return fmt.Errorf("star rating bands do not cover score %d", s)
		}
	}
	return nil
}

func DefaultScoringCriteria() ScoringCriteria {
	return ScoringCriteria{
		OrderApproval: OrderApprovalCriteria{Day1: 100, Day2: 90, Day3: 80, Day4: 70, Day5Plus: 50},
		Delivery:      DeliveryCriteria{Day1to2: 100, Day3to4: 85, Day5to7: 70, Day8to10: 50, Day10Plus: 30},
		Satisfaction:  SatisfactionCriteria{Star5: 100, Star4: 80, Star3: 60, Star2: 40, Star1: 20},
		Completion:    CompletionCriteria{Percent95to100: 100, Percent90to94: 90, Percent85to89: 80, Percent80to84: 70, PercentUnder80: 50},
	}
}

func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{OrderApproval: 25, Delivery: 30, Satisfaction: 25, Completion: 20}
}

// DefaultStarRatings is declared highest tier first so first-match picks the
// highest qualifying tier.
func DefaultStarRatings() []StarRatingBand {
	return []StarRatingBand{
		{MinScore: 85, MaxScore: 100, Stars: 5, Label: "Mükemmel"},
		{MinScore: 70, MaxScore: 84, Stars: 4, Label: "Çok İyi"},
		{MinScore: 55, MaxScore: 69, Stars: 3, Label: "İyi"},
		{MinScore: 40, MaxScore: 54, Stars: 2, Label: "Orta"},
		{MinScore: 0, MaxScore: 39, Stars: 1, Label: "Kritik"},
	}
}

// ScoringSettings persists a named criteria/weights configuration as JSON
// blobs so the scoring screen can adjust bands without a schema change.
type ScoringSettings struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"unique;not null"`
	Criteria  string         `json:"criteria" gorm:"type:text"`
	Weights   string         `json:"weights" gorm:"type:text"`
	StarBands string         `json:"star_bands" gorm:"type:text"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

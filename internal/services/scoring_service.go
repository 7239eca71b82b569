package services

import (
	"encoding/json"
	"fmt"

	"dealer_dashboard/internal/models"
	"dealer_dashboard/internal/repository"
	"dealer_dashboard/internal/scoring"

	"github.com/sirupsen/logrus"
)

// ScoringConfig is the decoded form of the persisted scoring settings.
type ScoringConfig struct {
	Criteria  models.ScoringCriteria  `json:"criteria"`
	Weights   models.ScoringWeights   `json:"weights"`
	StarBands []models.StarRatingBand `json:"star_bands"`
}

type ScoringService interface {
	GetConfig() (*ScoringConfig, error)
	UpdateConfig(config *ScoringConfig) error
	RecalculateScores() ([]models.DealerPerformance, error)
	GetDealers(sortKey scoring.SortKey) ([]models.DealerPerformance, error)
	GetDealerByID(id string) (*models.DealerPerformance, error)
	GetDealersByStars(stars int) ([]models.DealerPerformance, error)
	GetHierarchy() ([]models.DealerPerformance, error)
}

type scoringService struct {
	dealerRepo  repository.DealerRepository
	scoringRepo repository.ScoringRepository
	engine      *scoring.Engine
	logger      *logrus.Logger
}

func NewScoringService(
	dealerRepo repository.DealerRepository,
	scoringRepo repository.ScoringRepository,
	engine *scoring.Engine,
	logger *logrus.Logger,
) ScoringService {
	return &scoringService{
		dealerRepo:  dealerRepo,
		scoringRepo: scoringRepo,
		engine:      engine,
		logger:      logger,
	}
}

// GetConfig loads the active settings row, falling back to the built-in
// defaults when no configuration has been stored yet.
func (s *scoringService) GetConfig() (*ScoringConfig, error) {
	settings, err := s.scoringRepo.GetActiveSettings()
	if err != nil {
		s.logger.WithError(err).Warn("No active scoring settings, using defaults")
		return &ScoringConfig{
			Criteria:  models.DefaultScoringCriteria(),
			Weights:   models.DefaultScoringWeights(),
			StarBands: models.DefaultStarRatings(),
		}, nil
	}

	config := &ScoringConfig{}
	if err := json.Unmarshal([]byte(settings.Criteria), &config.Criteria); err != nil {
		return nil, fmt.Errorf("failed to decode scoring criteria: %w", err)
	}
	if err := json.Unmarshal([]byte(settings.Weights), &config.Weights); err != nil {
		return nil, fmt.Errorf("failed to decode scoring weights: %w", err)
	}
	if err := json.Unmarshal([]byte(settings.StarBands), &config.StarBands); err != nil {
		return nil, fmt.Errorf("failed to decode star bands: %w", err)
	}
	return config, nil
}

func (s *scoringService) UpdateConfig(config *ScoringConfig) error {
	if err := config.Weights.Validate(); err != nil {
		return err
	}
	if err := models.ValidateStarBands(config.StarBands); err != nil {
		return err
	}

	criteria, err := json.Marshal(config.Criteria)
	if err != nil {
		return fmt.Errorf("failed to encode scoring criteria: %w", err)
	}
	weights, err := json.Marshal(config.Weights)
	if err != nil {
		return fmt.Errorf("failed to encode scoring weights: %w", err)
	}
	starBands, err := json.Marshal(config.StarBands)
	if err != nil {
		return fmt.Errorf("failed to encode star bands: %w", err)
	}

	settings, err := s.scoringRepo.GetSettingsByName("default")
	if err != nil {
		settings = &models.ScoringSettings{Name: "default", IsActive: true}
	}
	settings.Criteria = string(criteria)
	settings.Weights = string(weights)
	settings.StarBands = string(starBands)

	return s.scoringRepo.SaveSettings(settings)
}

// RecalculateScores recomputes every dealer's performance score, component
// scores and star rating from the active configuration and persists them.
func (s *scoringService) RecalculateScores() ([]models.DealerPerformance, error) {
	config, err := s.GetConfig()
	if err != nil {
		return nil, err
	}

	dealers, err := s.dealerRepo.GetAll()
	if err != nil {
		return nil, err
	}

	for i := range dealers {
		result := s.engine.CalculatePerformanceScore(dealers[i], config.Criteria, config.Weights)
		dealers[i].PerformanceScore = result.TotalScore
		dealers[i].StarRating = s.engine.CalculateStarRating(result.TotalScore, config.StarBands)
		dealers[i].OrderApprovalScore = result.Breakdown.OrderApprovalScore
		dealers[i].DeliveryScore = result.Breakdown.DeliveryScore
		dealers[i].SatisfactionScore = result.Breakdown.SatisfactionScore
		dealers[i].CompletionScore = result.Breakdown.CompletionScore

		if err := s.dealerRepo.Update(&dealers[i]); err != nil {
			return nil, fmt.Errorf("failed to persist score for dealer %s: %w", dealers[i].ID, err)
		}
	}

	return dealers, nil
}

func (s *scoringService) GetDealers(sortKey scoring.SortKey) ([]models.DealerPerformance, error) {
	dealers, err := s.dealerRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return s.engine.SortDealers(dealers, sortKey), nil
}

func (s *scoringService) GetDealerByID(id string) (*models.DealerPerformance, error) {
	return s.dealerRepo.GetByID(id)
}

func (s *scoringService) GetDealersByStars(stars int) ([]models.DealerPerformance, error) {
	dealers, err := s.dealerRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return s.engine.FilterDealersByStars(dealers, stars), nil
}

// GetHierarchy returns main-dealers with their sub-dealers attached and
// their aggregate scores recomputed from the sub-dealer scores.
func (s *scoringService) GetHierarchy() ([]models.DealerPerformance, error) {
	config, err := s.GetConfig()
	if err != nil {
		return nil, err
	}

	dealers, err := s.dealerRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return s.engine.BuildDealerHierarchy(dealers, config.StarBands), nil
}

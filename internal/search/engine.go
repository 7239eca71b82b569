package search

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"dealer_dashboard/internal/models"
)

const (
	defaultFuzzyThreshold   = 0.6
	defaultMaxOrderResults  = 50
	defaultMaxDealerResults = 20
	defaultMaxSuggestions   = 10

	exactQueryBonus = 10.0
	exactTermBonus  = 5.0
	fuzzyWeight     = 3.0
	recencyBonus    = 2.0
	inProgressBonus = 1.0
	pendingBonus    = 0.5
	recencyWindow   = 30 * 24 * time.Hour
)

// Engine performs fuzzy, multi-field search over in-memory order and dealer
// snapshots. It holds no state besides the clock used for the recency boost.
type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

type OrderSearchOptions struct {
	FuzzyThreshold  float64
	MaxResults      int
	SortByRelevance bool
}

func DefaultOrderSearchOptions() OrderSearchOptions {
	return OrderSearchOptions{
		FuzzyThreshold:  defaultFuzzyThreshold,
		MaxResults:      defaultMaxOrderResults,
		SortByRelevance: true,
	}
}

type DealerSearchOptions struct {
	FuzzyThreshold float64
	MaxResults     int
}

func DefaultDealerSearchOptions() DealerSearchOptions {
	return DealerSearchOptions{
		FuzzyThreshold: defaultFuzzyThreshold,
		MaxResults:     defaultMaxDealerResults,
	}
}

// OrderMatch is one ranked search hit with the explanations of why it matched.
type OrderMatch struct {
	Order   models.Order `json:"order"`
	Score   float64      `json:"score"`
	Matches []string     `json:"matches"`
}

type DealerMatch struct {
	Dealer  models.DealerPerformance `json:"dealer"`
	Score   float64                  `json:"score"`
	Matches []string                 `json:"matches"`
}

type labeledField struct {
	label string
	value string
}

func orderSearchText(order models.Order) string {
	texts := []string{
		order.ID,
		order.CustomerName,
		order.CustomerEmail,
		order.Dealer,
		order.MainDealer,
		order.CurrentStage.Name,
		order.CurrentStage.Location,
		order.CurrentStage.ResponsibleParty,
	}
	for _, item := range order.Items {
		texts = append(texts, item.ProductName, item.CurrentStage.Name, item.CurrentStage.Location)
	}
	return strings.ToLower(strings.Join(texts, " "))
}

func orderFuzzyFields(order models.Order) []labeledField {
	fields := []labeledField{
		{label: "Sipariş ID", value: order.ID},
		{label: "Müşteri Adı", value: order.CustomerName},
		{label: "E-posta", value: order.CustomerEmail},
		{label: "Bayi", value: order.Dealer},
		{label: "Ana Bayi", value: order.MainDealer},
	}
	for _, item := range order.Items {
		fields = append(fields, labeledField{label: "Ürün", value: item.ProductName})
	}
	return fields
}

// SearchOrders ranks orders against a free-text query. Scores accumulate:
// whole-query substring +10, exact term +5 (fuzzy skipped for that term),
// per-field fuzzy similarity*3 at or above the threshold, +2 for orders
// placed in the last 30 days, +1/+0.5 for in-progress/pending status.
// Zero-score candidates are dropped. The result order is deterministic.
func (e *Engine) SearchOrders(orders []models.Order, query string, opts OrderSearchOptions) []OrderMatch {
	if opts.FuzzyThreshold <= 0 {
		opts.FuzzyThreshold = defaultFuzzyThreshold
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = defaultMaxOrderResults
	}

	if strings.TrimSpace(query) == "" {
		results := make([]OrderMatch, 0, len(orders))
		for _, order := range orders {
			results = append(results, OrderMatch{Order: order, Score: 1})
		}
		return results
	}

	normalizedQuery := Normalize(query)
	terms := strings.Fields(normalizedQuery)

	results := make([]OrderMatch, 0, len(orders))
	for _, order := range orders {
		orderText := Normalize(orderSearchText(order))
		var totalScore float64
		var matches []string
		seen := make(map[string]bool)

		addMatch := func(m string) {
			if !seen[m] {
				seen[m] = true
				matches = append(matches, m)
			}
		}

		if strings.Contains(orderText, normalizedQuery) {
			totalScore += exactQueryBonus
			addMatch("Tam eşleşme")
		}

		for _, term := range terms {
			if strings.Contains(orderText, term) {
				totalScore += exactTermBonus
				addMatch(fmt.Sprintf("%q kelimesi", term))
				continue // exact wins, no fuzzy double-count for this term
			}

			for _, field := range orderFuzzyFields(order) {
				similarity := Similarity(term, Normalize(field.value))
				if similarity >= opts.FuzzyThreshold {
					totalScore += similarity * fuzzyWeight
					addMatch(fmt.Sprintf("%s: %q", field.label, field.value))
				}
			}
		}

		// A malformed order date just means no boost; one bad record must
		// not fail the whole search.
		if orderDate, err := models.ParseDate(order.OrderDate); err == nil {
			if e.now().Sub(orderDate) < recencyWindow {
				totalScore += recencyBonus
			}
		}

		switch order.Status {
		case models.OrderInProgress:
			totalScore += inProgressBonus
		case models.OrderPending:
			totalScore += pendingBonus
		}

		if totalScore > 0 {
			results = append(results, OrderMatch{Order: order, Score: totalScore, Matches: matches})
		}
	}

	if opts.SortByRelevance {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Score > results[j].Score
		})
	}
	if len(results) > opts.MaxResults {
		results = results[:opts.MaxResults]
	}
	return results
}

// AutoCompleteSuggestions collects distinct as-stored terms whose normalized
// form prefix-matches the query, contains it (queries longer than 2 runes),
// or is similar above 0.7 (queries longer than 3 runes). Suggestions keep
// first-discovery order.
func (e *Engine) AutoCompleteSuggestions(orders []models.Order, query string, maxSuggestions int) []string {
	if maxSuggestions <= 0 {
		maxSuggestions = defaultMaxSuggestions
	}
	if strings.TrimSpace(query) == "" {
		return nil
	}

	normalizedQuery := Normalize(query)
	queryLen := len([]rune(normalizedQuery))

	var suggestions []string
	seen := make(map[string]bool)

	add := func(term string) {
		if term != "" && !seen[term] {
			seen[term] = true
			suggestions = append(suggestions, term)
		}
	}

	for _, order := range orders {
		terms := []string{order.ID, order.CustomerName, order.Dealer, order.MainDealer}
		for _, item := range order.Items {
			terms = append(terms, item.ProductName)
		}

		for _, term := range terms {
			normalizedTerm := Normalize(term)
			switch {
			case strings.HasPrefix(normalizedTerm, normalizedQuery):
				add(term)
			case queryLen > 2 && strings.Contains(normalizedTerm, normalizedQuery):
				add(term)
			case queryLen > 3 && Similarity(normalizedQuery, normalizedTerm) > 0.7:
				add(term)
			}
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// SearchDealers applies the order scoring shape to dealers. There are no
// recency or status boosts; instead performanceScore/100 is added so strong
// dealers win ties.
func (e *Engine) SearchDealers(dealers []models.DealerPerformance, query string, opts DealerSearchOptions) []DealerMatch {
	if opts.FuzzyThreshold <= 0 {
		opts.FuzzyThreshold = defaultFuzzyThreshold
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = defaultMaxDealerResults
	}

	if strings.TrimSpace(query) == "" {
		results := make([]DealerMatch, 0, len(dealers))
		for _, dealer := range dealers {
			results = append(results, DealerMatch{Dealer: dealer, Score: 1})
		}
		return results
	}

	normalizedQuery := Normalize(query)
	terms := strings.Fields(normalizedQuery)

	results := make([]DealerMatch, 0, len(dealers))
	for _, dealer := range dealers {
		var totalScore float64
		var matches []string
		seen := make(map[string]bool)

		addMatch := func(m string) {
			if !seen[m] {
				seen[m] = true
				matches = append(matches, m)
			}
		}

		searchableText := Normalize(strings.Join([]string{
			dealer.Name,
			dealer.City,
			dealer.Region,
			dealer.ContactInfo.Email,
			dealer.ContactInfo.Phone,
		}, " "))

		if strings.Contains(searchableText, normalizedQuery) {
			totalScore += exactQueryBonus
			addMatch("Tam eşleşme")
		}

		fields := []labeledField{
			{label: "Bayi Adı", value: dealer.Name},
			{label: "Şehir", value: dealer.City},
			{label: "Bölge", value: dealer.Region},
		}
		for _, term := range terms {
			for _, field := range fields {
				similarity := Similarity(term, Normalize(field.value))
				if similarity >= opts.FuzzyThreshold {
					totalScore += similarity * fuzzyWeight
					addMatch(fmt.Sprintf("%s: %q", field.label, field.value))
				}
			}
		}

		totalScore += float64(dealer.PerformanceScore) / 100

		if totalScore > 0 {
			results = append(results, DealerMatch{Dealer: dealer, Score: totalScore, Matches: matches})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > opts.MaxResults {
		results = results[:opts.MaxResults]
	}
	return results
}

// OrderFilters compose with AND semantics. Zero values mean "not set";
// MinAmount/MaxAmount apply to the order's TotalAmount.
type OrderFilters struct {
	Query     string             `json:"query,omitempty"`
	Status    models.OrderStatus `json:"status,omitempty"`
	DateFrom  string             `json:"date_from,omitempty"`
	DateTo    string             `json:"date_to,omitempty"`
	Dealer    string             `json:"dealer,omitempty"`
	MinAmount float64            `json:"min_amount,omitempty"`
	MaxAmount float64            `json:"max_amount,omitempty"`
}

// CombineFilters narrows orders filter by filter: text search first (keeping
// only scored matches, pre-sorted), then status, inclusive date range,
// dealer-name substring against dealer or main dealer, and amount range.
// Malformed filter bounds return a DateParseError; orders whose own date
// cannot be parsed are excluded while a date bound is active.
func (e *Engine) CombineFilters(orders []models.Order, filters OrderFilters) ([]models.Order, error) {
	results := make([]models.Order, len(orders))
	copy(results, orders)

	if filters.Query != "" {
		matched := e.SearchOrders(results, filters.Query, DefaultOrderSearchOptions())
		results = results[:0]
		for _, match := range matched {
			results = append(results, match.Order)
		}
	}

	if filters.Status != "" {
		results = filterOrders(results, func(order models.Order) bool {
			return order.Status == filters.Status
		})
	}

	if filters.DateFrom != "" {
		from, err := models.ParseDate(filters.DateFrom)
		if err != nil {
			return nil, err
		}
		results = filterOrders(results, func(order models.Order) bool {
			orderDate, err := models.ParseDate(order.OrderDate)
			return err == nil && !orderDate.Before(from)
		})
	}

	if filters.DateTo != "" {
		to, err := models.ParseDate(filters.DateTo)
		if err != nil {
			return nil, err
		}
		results = filterOrders(results, func(order models.Order) bool {
			orderDate, err := models.ParseDate(order.OrderDate)
			return err == nil && !orderDate.After(to)
		})
	}

	if filters.Dealer != "" {
		needle := Normalize(filters.Dealer)
		results = filterOrders(results, func(order models.Order) bool {
			return strings.Contains(Normalize(order.Dealer), needle) ||
				strings.Contains(Normalize(order.MainDealer), needle)
		})
	}

	if filters.MinAmount > 0 {
		results = filterOrders(results, func(order models.Order) bool {
			return order.TotalAmount >= filters.MinAmount
		})
	}
	if filters.MaxAmount > 0 {
		results = filterOrders(results, func(order models.Order) bool {
			return order.TotalAmount <= filters.MaxAmount
		})
	}

	return results, nil
}

func filterOrders(orders []models.Order, keep func(models.Order) bool) []models.Order {
	filtered := orders[:0]
	for _, order := range orders {
		if keep(order) {
			filtered = append(filtered, order)
		}
	}
	return filtered
}

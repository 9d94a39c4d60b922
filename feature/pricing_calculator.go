package feature

import (
	"context"
	"encoding/json"
)

const PricingCalculatorID = "pricing-calculator"

var pricingServiceTypes = map[string]bool{
	"consulting":       true,
	"design":           true,
	"development":      true,
	"marketing":        true,
	"writing":          true,
	"coaching":         true,
	"media-production": true,
}

var pricingTargetMarkets = map[string]bool{
	"small":       true,
	"medium":      true,
	"enterprise":  true,
	"startups":    true,
	"individuals": true,
}

var pricingJustifications = []string{
	"Your experience level justifies premium pricing",
	"Market demand for this service is currently high",
	"Similar service providers charge within this range",
	"Your specialized skills add additional value",
}

var pricingClientStatements = []string{
	"Our pricing reflects the extensive experience and specialized expertise we bring to each project.",
	"We've benchmarked our rates against industry standards to ensure competitive yet fair pricing.",
	"The investment in our services typically yields a 3x return through improved efficiency and results.",
	"Our pricing includes ongoing support and optimization that many competitors charge extra for.",
}

// PricingCalculator recommends a price range from fixed multipliers over the
// caller's current price.
type PricingCalculator struct{}

type pricingInput struct {
	ServiceType     string  `json:"serviceType"`
	ExperienceYears int     `json:"experienceYears"`
	CurrentPrice    float64 `json:"currentPrice"`
	TargetMarket    string  `json:"targetMarket"`
}

type PriceRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

type PricingResult struct {
	RecommendedRange PriceRange `json:"recommendedRange"`
	MarketRate       float64    `json:"marketRate"`
	Justifications   []string   `json:"justifications"`
	ClientStatements []string   `json:"clientStatements"`
}

func (p *PricingCalculator) ID() string    { return PricingCalculatorID }
func (p *PricingCalculator) Title() string { return "Pricing Calculator" }

func (p *PricingCalculator) Generate(_ context.Context, input json.RawMessage) (any, error) {
	var in pricingInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, InputError{Message: "invalid request body"}
	}
	if !pricingServiceTypes[in.ServiceType] {
		return nil, InputError{Message: "unknown service type"}
	}
	if !pricingTargetMarkets[in.TargetMarket] {
		return nil, InputError{Message: "unknown target market"}
	}
	if in.ExperienceYears < 0 || in.ExperienceYears > 20 {
		return nil, InputError{Message: "experience years must be between 0 and 20"}
	}
	if in.CurrentPrice <= 0 {
		return nil, InputError{Message: "current price must be positive"}
	}
	return CalculatePricing(in.CurrentPrice), nil
}

// CalculatePricing applies the benchmark multipliers to the current price.
func CalculatePricing(currentPrice float64) PricingResult {
	return PricingResult{
		RecommendedRange: PriceRange{
			Low:  currentPrice * 1.1,
			High: currentPrice * 1.5,
		},
		MarketRate:       currentPrice * 1.25,
		Justifications:   append([]string(nil), pricingJustifications...),
		ClientStatements: append([]string(nil), pricingClientStatements...),
	}
}

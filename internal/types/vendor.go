package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AffordabilityFloor is the share of the budget a vendor's maximum price must
// reach to be considered affordable.
const AffordabilityFloor = 0.7

type PricingRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Affordable reports whether the range falls in the budget band:
// min <= budget and max >= 0.7*budget. A zero budget admits everything.
func (p PricingRange) Affordable(budget float64) bool {
	if budget <= 0 {
		return true
	}
	return p.Min <= budget && p.Max >= AffordabilityFloor*budget
}

type Vendor struct {
	ID              uuid.UUID    `json:"id"`
	Name            string       `json:"name"`
	BusinessName    string       `json:"business_name"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	Category        string       `json:"category"`
	Services        []string     `json:"services"`
	PricingRange    PricingRange `json:"pricing_range"`
	Location        string       `json:"location"`
	Description     string       `json:"description"`
	PortfolioImages []string     `json:"portfolio_images"`
	Rating          float64      `json:"rating"`
	TotalReviews    int          `json:"total_reviews"`
	Availability    []string     `json:"availability"`
	Verified        bool         `json:"verified"`
	CreatedAt       time.Time    `json:"created_at"`
}

type CreateVendorParams struct {
	Name            string       `json:"name"`
	BusinessName    string       `json:"business_name"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	Category        string       `json:"category"`
	Services        []string     `json:"services"`
	PricingRange    PricingRange `json:"pricing_range"`
	Location        string       `json:"location"`
	Description     string       `json:"description"`
	PortfolioImages []string     `json:"portfolio_images,omitempty"`
	Rating          float64      `json:"rating,omitempty"`
	TotalReviews    int          `json:"total_reviews,omitempty"`
	Availability    []string     `json:"availability,omitempty"`
	Verified        bool         `json:"verified,omitempty"`
}

func (p *CreateVendorParams) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.BusinessName = strings.TrimSpace(p.BusinessName)
	p.Category = strings.TrimSpace(p.Category)
	p.Location = strings.TrimSpace(p.Location)
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case p.BusinessName == "":
		return fmt.Errorf("%w: business_name is required", ErrValidation)
	case p.Category == "":
		return fmt.Errorf("%w: category is required", ErrValidation)
	case p.Location == "":
		return fmt.Errorf("%w: location is required", ErrValidation)
	case p.PricingRange.Min < 0 || p.PricingRange.Max < p.PricingRange.Min:
		return fmt.Errorf("%w: pricing_range must satisfy 0 <= min <= max", ErrValidation)
	case p.Rating < 0 || p.Rating > 5:
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrValidation)
	case p.TotalReviews < 0:
		return fmt.Errorf("%w: total_reviews must not be negative", ErrValidation)
	}
	if p.Services == nil {
		p.Services = []string{}
	}
	if p.PortfolioImages == nil {
		p.PortfolioImages = []string{}
	}
	if p.Availability == nil {
		p.Availability = []string{}
	}
	return nil
}

// VendorFilter drives vendor listing and recommendations. Empty fields are
// not applied.
type VendorFilter struct {
	Category string
	Location string
	Budget   float64
	Limit    int
}

// Matches evaluates the filter in memory with the same semantics as the
// SQL query: case-insensitive category equality, case-insensitive location
// substring and the budget band.
func (f VendorFilter) Matches(v Vendor) bool {
	if f.Category != "" && !strings.EqualFold(v.Category, f.Category) {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(v.Location), strings.ToLower(f.Location)) {
		return false
	}
	return v.PricingRange.Affordable(f.Budget)
}

type RecommendationsResponse struct {
	Recommendations []Vendor `json:"recommendations"`
	TotalCount      int      `json:"total_count"`
	Category        string   `json:"category"`
	RankingNotes    string   `json:"ranking_notes,omitempty"`
}

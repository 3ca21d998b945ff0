package types

import (
	"fmt"
	"strings"
)

type StylePreference string

const (
	StyleUnspecified StylePreference = ""
	StyleTraditional StylePreference = "traditional"
	StyleModern      StylePreference = "modern"
	StyleFusion      StylePreference = "fusion"
)

// ParseStylePreference accepts the known styles case-insensitively.
func ParseStylePreference(s string) (StylePreference, error) {
	switch StylePreference(strings.ToLower(strings.TrimSpace(s))) {
	case StyleUnspecified:
		return StyleUnspecified, nil
	case StyleTraditional:
		return StyleTraditional, nil
	case StyleModern:
		return StyleModern, nil
	case StyleFusion:
		return StyleFusion, nil
	}
	return StyleUnspecified, fmt.Errorf("%w: unknown style_preference %q (want traditional, modern or fusion)", ErrValidation, s)
}

// Preferences is the planning profile attached to a user. Zero values mean
// "not provided": budget 0 disables price filtering, empty location matches
// every vendor.
type Preferences struct {
	Budget          float64         `json:"budget"`
	GuestCount      int             `json:"guest_count"`
	Location        string          `json:"location"`
	StylePreference StylePreference `json:"style_preference"`
	WeddingDate     *Date           `json:"wedding_date,omitempty"`
}

// Validate normalizes the style and rejects negative amounts.
func (p *Preferences) Validate() error {
	if p.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative", ErrValidation)
	}
	if p.GuestCount < 0 {
		return fmt.Errorf("%w: guest_count must not be negative", ErrValidation)
	}
	style, err := ParseStylePreference(string(p.StylePreference))
	if err != nil {
		return err
	}
	p.StylePreference = style
	p.Location = strings.TrimSpace(p.Location)
	return nil
}

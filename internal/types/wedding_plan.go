package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Timeline maps a "N_months_before" bucket to its milestones.
type Timeline map[string][]string

type WeddingPlan struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	Budget          float64         `json:"budget"`
	GuestCount      int             `json:"guest_count"`
	WeddingDate     time.Time       `json:"wedding_date"`
	Location        string          `json:"location"`
	StylePreference StylePreference `json:"style_preference"`
	SelectedVendors []string        `json:"selected_vendors"`
	Timeline        Timeline        `json:"timeline"`
	CreatedAt       time.Time       `json:"created_at"`
}

type CreateWeddingPlanParams struct {
	UserID          uuid.UUID       `json:"user_id"`
	Budget          float64         `json:"budget"`
	GuestCount      int             `json:"guest_count"`
	WeddingDate     Date            `json:"wedding_date"`
	Location        string          `json:"location"`
	StylePreference StylePreference `json:"style_preference"`
}

func (p *CreateWeddingPlanParams) Validate() error {
	p.Location = strings.TrimSpace(p.Location)
	switch {
	case p.UserID == uuid.Nil:
		return fmt.Errorf("%w: user_id is required", ErrValidation)
	case p.WeddingDate.IsZero():
		return fmt.Errorf("%w: wedding_date is required", ErrValidation)
	case p.Location == "":
		return fmt.Errorf("%w: location is required", ErrValidation)
	}
	prefs := p.Preferences()
	if err := prefs.Validate(); err != nil {
		return err
	}
	p.StylePreference = prefs.StylePreference
	return nil
}

// Preferences is the profile that replaces the user's stored preferences
// when the plan is created.
func (p CreateWeddingPlanParams) Preferences() Preferences {
	date := NewDate(p.WeddingDate.Time)
	return Preferences{
		Budget:          p.Budget,
		GuestCount:      p.GuestCount,
		Location:        p.Location,
		StylePreference: p.StylePreference,
		WeddingDate:     &date,
	}
}

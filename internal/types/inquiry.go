package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type InquiryStatus string

const InquiryPending InquiryStatus = "pending"

type Inquiry struct {
	ID        uuid.UUID     `json:"id"`
	UserID    uuid.UUID     `json:"user_id"`
	VendorID  uuid.UUID     `json:"vendor_id"`
	Message   string        `json:"message"`
	Status    InquiryStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

type CreateInquiryParams struct {
	UserID   uuid.UUID `json:"user_id"`
	VendorID uuid.UUID `json:"vendor_id"`
	Message  string    `json:"message"`
}

func (p *CreateInquiryParams) Validate() error {
	p.Message = strings.TrimSpace(p.Message)
	switch {
	case p.UserID == uuid.Nil:
		return fmt.Errorf("%w: user_id is required", ErrValidation)
	case p.VendorID == uuid.Nil:
		return fmt.Errorf("%w: vendor_id is required", ErrValidation)
	case p.Message == "":
		return fmt.Errorf("%w: message is required", ErrValidation)
	}
	return nil
}

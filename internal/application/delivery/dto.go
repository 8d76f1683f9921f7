package delivery

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/delivery"
)

// dateLayout is the wire format for delivery dates
const dateLayout = "2006-01-02"

// ProposeAlternativeRequest represents a seller counter-proposal
type ProposeAlternativeRequest struct {
	Date       string `json:"date" binding:"required"`
	TimeWindow string `json:"time_window" binding:"required"`
	Reason     string `json:"reason" binding:"required,min=1,max=500"`
}

// AlternativeResponse represents the pending counter-proposal
type AlternativeResponse struct {
	Date       string `json:"date"`
	TimeWindow string `json:"time_window"`
	Reason     string `json:"reason"`
}

// ProposalResponse represents the negotiation state of an order's delivery slot
type ProposalResponse struct {
	ID          uuid.UUID            `json:"id"`
	OrderID     uuid.UUID            `json:"order_id"`
	Date        string               `json:"date"`
	TimeWindow  string               `json:"time_window"`
	ProposedBy  string               `json:"proposed_by"`
	Status      string               `json:"status"`
	Alternative *AlternativeResponse `json:"alternative,omitempty"`
	RespondedAt *time.Time           `json:"responded_at,omitempty"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// ToProposalResponse converts a delivery proposal to its response DTO
func ToProposalResponse(p *delivery.DeliveryProposal) ProposalResponse {
	resp := ProposalResponse{
		ID:          p.ID,
		OrderID:     p.OrderID,
		Date:        p.Date.Format(dateLayout),
		TimeWindow:  p.Window.String(),
		ProposedBy:  p.ProposedBy.String(),
		Status:      p.Status.String(),
		RespondedAt: p.RespondedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if alt := p.Alternative(); alt != nil {
		resp.Alternative = &AlternativeResponse{
			Date:       alt.Date.Format(dateLayout),
			TimeWindow: alt.Window.String(),
			Reason:     alt.Reason,
		}
	}
	return resp
}

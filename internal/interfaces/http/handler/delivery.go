package handler

import (
	"github.com/gin-gonic/gin"

	deliveryapp "github.com/storefront/backend/internal/application/delivery"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// DeliveryHandler handles delivery slot negotiation API endpoints
type DeliveryHandler struct {
	BaseHandler
	negotiationService *deliveryapp.NegotiationService
}

// NewDeliveryHandler creates a new DeliveryHandler
func NewDeliveryHandler(negotiationService *deliveryapp.NegotiationService) *DeliveryHandler {
	return &DeliveryHandler{negotiationService: negotiationService}
}

// RegisterRoutes registers delivery negotiation routes under orders
func (h *DeliveryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	delivery := rg.Group("/orders/:id/delivery")
	{
		delivery.GET("", h.GetProposal)
		delivery.POST("/accept", middleware.RequireRole(string(identity.RoleSeller)), h.Accept)
		delivery.POST("/propose-alternative", middleware.RequireRole(string(identity.RoleSeller)), h.ProposeAlternative)
		delivery.POST("/accept-alternative", middleware.RequireRole(string(identity.RoleCustomer)), h.AcceptAlternative)
		delivery.POST("/reject-alternative", middleware.RequireRole(string(identity.RoleCustomer)), h.RejectAlternative)
	}
}

// GetProposal returns the current negotiation state for an order
func (h *DeliveryHandler) GetProposal(c *gin.Context) {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	resp, err := h.negotiationService.GetByOrderID(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Accept confirms the buyer's proposed slot as the seller
func (h *DeliveryHandler) Accept(c *gin.Context) {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	actor, err := actorFromRole(getRole(c))
	if err != nil {
		h.Forbidden(c, "Insufficient role for this operation")
		return
	}

	callerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.negotiationService.Accept(c.Request.Context(), orderID, actor, callerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// ProposeAlternative counter-proposes a different slot as the seller
func (h *DeliveryHandler) ProposeAlternative(c *gin.Context) {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req deliveryapp.ProposeAlternativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	actor, err := actorFromRole(getRole(c))
	if err != nil {
		h.Forbidden(c, "Insufficient role for this operation")
		return
	}

	callerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.negotiationService.ProposeAlternative(c.Request.Context(), orderID, actor, callerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// AcceptAlternative accepts the seller's counter-proposal as the buyer
func (h *DeliveryHandler) AcceptAlternative(c *gin.Context) {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	actor, err := actorFromRole(getRole(c))
	if err != nil {
		h.Forbidden(c, "Insufficient role for this operation")
		return
	}

	callerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.negotiationService.AcceptAlternative(c.Request.Context(), orderID, actor, callerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// RejectAlternative rejects the seller's counter-proposal as the buyer
func (h *DeliveryHandler) RejectAlternative(c *gin.Context) {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	actor, err := actorFromRole(getRole(c))
	if err != nil {
		h.Forbidden(c, "Insufficient role for this operation")
		return
	}

	callerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.negotiationService.RejectAlternative(c.Request.Context(), orderID, actor, callerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

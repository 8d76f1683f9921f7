package handler

import (
	"github.com/gin-gonic/gin"

	trackingapp "github.com/storefront/backend/internal/application/tracking"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// TrackingHandler handles order tracking API endpoints
type TrackingHandler struct {
	BaseHandler
	trackingService *trackingapp.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler
func NewTrackingHandler(trackingService *trackingapp.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService}
}

// RegisterRoutes registers tracking routes under orders
func (h *TrackingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tracking := rg.Group("/orders/:id/tracking")
	{
		tracking.GET("", h.GetTimeline)
		tracking.POST("/events", middleware.RequireRole(string(identity.RoleSeller)), h.AppendEvent)
	}
}

// GetTimeline returns the tracking timeline projection for an order
func (h *TrackingHandler) GetTimeline(c *gin.Context) {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	resp, err := h.trackingService.GetTimeline(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// AppendEvent records a new tracking event for an order
func (h *TrackingHandler) AppendEvent(c *gin.Context) {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req trackingapp.AppendEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.trackingService.AppendEvent(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

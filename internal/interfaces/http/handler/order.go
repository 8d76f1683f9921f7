package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	orderapp "github.com/storefront/backend/internal/application/order"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// OrderHandler handles checkout and order API endpoints
type OrderHandler struct {
	BaseHandler
	checkoutService *orderapp.CheckoutService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(checkoutService *orderapp.CheckoutService) *OrderHandler {
	return &OrderHandler{checkoutService: checkoutService}
}

// RegisterRoutes registers order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.POST("", middleware.RequireRole(string(identity.RoleCustomer)), h.Checkout)
		orders.GET("", h.List)
		orders.GET("/:id", h.GetByID)
	}
}

// Checkout places an order from the session cart with a proposed delivery slot
func (h *OrderHandler) Checkout(c *gin.Context) {
	buyerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req orderapp.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if req.SessionKey == "" {
		req.SessionKey = middleware.GetSessionKey(c)
	}

	resp, err := h.checkoutService.Checkout(c.Request.Context(), buyerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// List returns the caller's orders. Sellers see all orders, customers their own.
func (h *OrderHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if getRole(c) == string(identity.RoleSeller) {
		page, err := h.checkoutService.List(c.Request.Context(), filter)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
		return
	}

	buyerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	page, err := h.checkoutService.ListForBuyer(c.Request.Context(), buyerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// GetByID returns one order. Customers can only read their own orders.
func (h *OrderHandler) GetByID(c *gin.Context) {
	orderID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	buyerID := uuid.Nil
	if getRole(c) == string(identity.RoleCustomer) {
		if buyerID, err = getUserID(c); err != nil {
			h.Unauthorized(c, "Authentication required")
			return
		}
	}

	resp, err := h.checkoutService.GetByID(c.Request.Context(), orderID, buyerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/order"
)

// dateLayout is the wire format for delivery dates
const dateLayout = "2006-01-02"

// CustomerInput carries the checkout contact and shipping details
type CustomerInput struct {
	Name       string `json:"name" binding:"required,min=1,max=200"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required,min=5,max=30"`
	Address    string `json:"address" binding:"required,min=1,max=300"`
	City       string `json:"city" binding:"required,min=1,max=100"`
	PostalCode string `json:"postal_code" binding:"required,min=3,max=20"`
}

// DeliverySlotInput is the buyer's proposed delivery date and window
type DeliverySlotInput struct {
	Date       string `json:"date" binding:"required"`
	TimeWindow string `json:"time_window" binding:"required"`
}

// CheckoutRequest represents a request to place an order from a cart
type CheckoutRequest struct {
	SessionKey    string            `json:"session_key"`
	Customer      CustomerInput     `json:"customer" binding:"required"`
	DeliveryType  string            `json:"delivery_type" binding:"required"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
	Delivery      DeliverySlotInput `json:"delivery" binding:"required"`
}

// OrderItemResponse represents one order line
type OrderItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// DeliverySlotResponse is the negotiated slot attached to an order
type DeliverySlotResponse struct {
	Date       string `json:"date"`
	TimeWindow string `json:"time_window"`
	Status     string `json:"status"`
}

// OrderResponse represents a placed order
type OrderResponse struct {
	ID            uuid.UUID             `json:"id"`
	OrderNumber   string                `json:"order_number"`
	CustomerName  string                `json:"customer_name"`
	Address       string                `json:"address"`
	City          string                `json:"city"`
	PostalCode    string                `json:"postal_code"`
	Items         []OrderItemResponse   `json:"items"`
	Total         decimal.Decimal       `json:"total"`
	DeliveryType  string                `json:"delivery_type"`
	PaymentMethod string                `json:"payment_method"`
	Delivery      *DeliverySlotResponse `json:"delivery,omitempty"`
	PlacedAt      *time.Time            `json:"placed_at,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

// ToOrderResponse converts an order to its response DTO
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}

	return OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.Customer.Name,
		Address:       o.Customer.Address,
		City:          o.Customer.City,
		PostalCode:    o.Customer.PostalCode,
		Items:         items,
		Total:         o.Total,
		DeliveryType:  string(o.DeliveryType),
		PaymentMethod: o.PaymentMethod,
		PlacedAt:      o.PlacedAt,
		CreatedAt:     o.CreatedAt,
	}
}

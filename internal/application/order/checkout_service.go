package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/delivery"
	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
)

// CheckoutStore persists the placed order, its initial delivery proposal,
// and the cart removal in a single atomic write. A partial checkout must
// never be observable.
type CheckoutStore interface {
	SavePlacedOrder(ctx context.Context, ord *order.Order, proposal *delivery.DeliveryProposal, cartID uuid.UUID) error
}

// CheckoutService turns a cart into a placed order with its initial
// delivery proposal
type CheckoutService struct {
	orders         order.Repository
	proposals      delivery.ProposalRepository
	carts          cart.Repository
	products       catalog.ProductRepository
	store          CheckoutStore
	eventPublisher shared.EventPublisher
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(orders order.Repository, proposals delivery.ProposalRepository, carts cart.Repository, products catalog.ProductRepository, store CheckoutStore) *CheckoutService {
	return &CheckoutService{
		orders:    orders,
		proposals: proposals,
		carts:     carts,
		products:  products,
		store:     store,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *CheckoutService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Checkout places an order from the session's cart. The buyer's delivery
// slot becomes a PENDING proposal awaiting the seller's response, and the
// cart is cleared.
func (s *CheckoutService) Checkout(ctx context.Context, buyerID uuid.UUID, req CheckoutRequest) (*OrderResponse, error) {
	date, window, err := parseDeliverySlot(req.Delivery)
	if err != nil {
		return nil, err
	}

	c, err := s.carts.FindBySessionKey(ctx, req.SessionKey)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, shared.NewDomainError("EMPTY_CART", "Cannot check out an empty cart")
	}

	orderNumber, err := s.orders.NextOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	ord, err := order.NewOrder(orderNumber, buyerID, order.Customer{
		Name:       req.Customer.Name,
		Email:      req.Customer.Email,
		Phone:      req.Customer.Phone,
		Address:    req.Customer.Address,
		City:       req.Customer.City,
		PostalCode: req.Customer.PostalCode,
	}, order.DeliveryType(req.DeliveryType), req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	reserved, err := s.reserveStock(ctx, ord, c.Items)
	if err != nil {
		s.releaseStock(ctx, reserved)
		return nil, err
	}

	if err := ord.Place(); err != nil {
		s.releaseStock(ctx, reserved)
		return nil, err
	}

	proposal, err := delivery.NewDeliveryProposal(ord.ID, date, window)
	if err != nil {
		s.releaseStock(ctx, reserved)
		return nil, err
	}

	if err := s.store.SavePlacedOrder(ctx, ord, proposal, c.ID); err != nil {
		s.releaseStock(ctx, reserved)
		return nil, err
	}

	s.publishEvents(ctx, ord.GetDomainEvents())
	ord.ClearDomainEvents()
	s.publishEvents(ctx, proposal.GetDomainEvents())
	proposal.ClearDomainEvents()

	resp := ToOrderResponse(ord)
	resp.Delivery = &DeliverySlotResponse{
		Date:       proposal.Date.Format(dateLayout),
		TimeWindow: proposal.Window.String(),
		Status:     proposal.Status.String(),
	}
	return &resp, nil
}

// GetByID returns an order. A buyer sees only their own orders; sellers
// pass uuid.Nil to skip the ownership check.
func (s *CheckoutService) GetByID(ctx context.Context, orderID, buyerID uuid.UUID) (*OrderResponse, error) {
	ord, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if buyerID != uuid.Nil && ord.BuyerID != buyerID {
		return nil, shared.ErrOrderNotFound
	}

	resp := ToOrderResponse(ord)
	s.attachDeliverySlot(ctx, &resp)
	return &resp, nil
}

// ListForBuyer returns the buyer's orders, newest first
func (s *CheckoutService) ListForBuyer(ctx context.Context, buyerID uuid.UUID, filter shared.Filter) (*shared.Paginated[OrderResponse], error) {
	page, err := s.orders.FindByBuyer(ctx, buyerID, filter)
	if err != nil {
		return nil, err
	}
	return s.toResponsePage(page), nil
}

// List returns all orders, newest first. Seller view.
func (s *CheckoutService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[OrderResponse], error) {
	page, err := s.orders.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.toResponsePage(page), nil
}

// reserveStock checks availability and deducts stock for every cart line.
// It returns the lines already deducted so a later failure can restore them.
func (s *CheckoutService) reserveStock(ctx context.Context, ord *order.Order, items []cart.Item) ([]cart.Item, error) {
	reserved := make([]cart.Item, 0, len(items))
	for _, item := range items {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return reserved, err
		}
		if !product.IsAvailable(item.Quantity) {
			return reserved, shared.NewDomainError("INSUFFICIENT_STOCK",
				fmt.Sprintf("%s is no longer available in the requested quantity", product.Name))
		}
		if err := product.AdjustStock(-item.Quantity); err != nil {
			return reserved, err
		}
		if err := s.products.SaveWithLock(ctx, product); err != nil {
			return reserved, err
		}
		reserved = append(reserved, item)

		if _, err := ord.AddItem(product.ID, product.Name, item.Quantity, product.Price); err != nil {
			return reserved, err
		}
	}
	return reserved, nil
}

// releaseStock restores deducted stock after a failed checkout
func (s *CheckoutService) releaseStock(ctx context.Context, reserved []cart.Item) {
	for _, item := range reserved {
		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			continue
		}
		if err := product.AdjustStock(item.Quantity); err != nil {
			continue
		}
		_ = s.products.SaveWithLock(ctx, product)
	}
}

func (s *CheckoutService) attachDeliverySlot(ctx context.Context, resp *OrderResponse) {
	proposal, err := s.proposals.FindByOrderID(ctx, resp.ID)
	if err != nil {
		return
	}
	resp.Delivery = &DeliverySlotResponse{
		Date:       proposal.Date.Format(dateLayout),
		TimeWindow: proposal.Window.String(),
		Status:     proposal.Status.String(),
	}
}

func (s *CheckoutService) toResponsePage(page *shared.Paginated[*order.Order]) *shared.Paginated[OrderResponse] {
	responses := make([]OrderResponse, 0, len(page.Items))
	for _, ord := range page.Items {
		responses = append(responses, ToOrderResponse(ord))
	}
	result := shared.NewPaginated(responses, page.Total, page.Page, page.PageSize)
	return &result
}

func (s *CheckoutService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range events {
		_ = s.eventPublisher.Publish(ctx, event)
	}
}

func parseDeliverySlot(slot DeliverySlotInput) (time.Time, delivery.TimeWindow, error) {
	date, err := time.Parse(dateLayout, slot.Date)
	if err != nil {
		return time.Time{}, "", shared.NewDomainError("INVALID_DATE",
			fmt.Sprintf("Date %q is not in YYYY-MM-DD format", slot.Date))
	}
	window, err := delivery.ParseTimeWindow(slot.TimeWindow)
	if err != nil {
		return time.Time{}, "", err
	}
	if err := delivery.ValidateDeliveryDate(date, time.Now()); err != nil {
		return time.Time{}, "", err
	}
	return date, window, nil
}

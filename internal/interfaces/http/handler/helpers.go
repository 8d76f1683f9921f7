package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	notifapp "github.com/storefront/backend/internal/application/notification"
	"github.com/storefront/backend/internal/domain/delivery"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/notification"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// parseFilter converts list query parameters into a repository filter
func parseFilter(c *gin.Context) (shared.Filter, error) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		return shared.Filter{}, err
	}

	filter := shared.DefaultFilter()
	if req.Page > 0 {
		filter.Page = req.Page
	}
	if req.PageSize > 0 {
		filter.PageSize = req.PageSize
	}
	if req.OrderBy != "" {
		filter.OrderBy = req.OrderBy
	}
	if req.OrderDir != "" {
		filter.OrderDir = req.OrderDir
	}
	return filter, nil
}

// parseIDParam parses a uuid path parameter
func parseIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// actorFromRole maps an authenticated role onto a negotiation actor.
// Customers act as the buyer side of the negotiation.
func actorFromRole(role string) (delivery.Actor, error) {
	switch role {
	case string(identity.RoleCustomer):
		return delivery.ActorBuyer, nil
	case string(identity.RoleSeller):
		return delivery.ActorSeller, nil
	default:
		return "", errors.New("unknown role")
	}
}

// recipientFromContext derives the notification recipient for the caller.
// Customers see only their own notifications; sellers share a role-wide feed.
func recipientFromContext(c *gin.Context) (notifapp.Recipient, error) {
	userID, err := getUserID(c)
	if err != nil {
		return notifapp.Recipient{}, err
	}

	switch getRole(c) {
	case string(identity.RoleSeller):
		return notifapp.Recipient{Role: notification.RoleSeller}, nil
	case string(identity.RoleCustomer):
		return notifapp.Recipient{Role: notification.RoleBuyer, UserID: &userID}, nil
	default:
		return notifapp.Recipient{}, errors.New("unknown role")
	}
}

package persistence

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

var safeColumnRegex = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// applyFilter applies pagination and ordering from a shared.Filter.
// Column names are validated to prevent SQL injection through order clauses.
func applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.OrderBy != "" && safeColumnRegex.MatchString(filter.OrderBy) {
		dir := "asc"
		if strings.EqualFold(filter.OrderDir, "desc") {
			dir = "desc"
		}
		query = query.Order(fmt.Sprintf("%s %s", filter.OrderBy, dir))
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	return query
}

package persistence

import (
	"fmt"
	"strings"

	"github.com/petalia/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applyPagination applies ordering, offset and limit from a filter.
// The sort column is validated against a small allowlist to keep user input
// out of the ORDER BY clause; anything else falls back to the default.
func applyPagination(query *gorm.DB, filter shared.Filter, defaultOrder string) *gorm.DB {
	order := defaultOrder
	if filter.OrderBy != "" && isSortableColumn(filter.OrderBy) {
		dir := "ASC"
		if strings.EqualFold(filter.OrderDir, "desc") {
			dir = "DESC"
		}
		order = fmt.Sprintf("%s %s", filter.OrderBy, dir)
	}
	return query.Order(order).Offset(filter.Offset()).Limit(filter.Limit())
}

func isSortableColumn(col string) bool {
	switch col {
	case "created_at", "updated_at", "name", "order_number", "delivery_until", "status":
		return true
	}
	return false
}

package postgres

import (
	"fmt"
	"strings"

	"github.com/Badsnus/club-directory/internal/domain/common/errorz"
)

// columns maps the public sort field names onto table columns.
var columns = map[string]string{
	"updated_date": "updated_at",
	"created_date": "created_at",
	"name":         "name",
	"email":        "email",
	"full_name":    "full_name",
	"category":     "category",
	"owner_email":  "owner_email",
}

// Order turns a sort key such as "-updated_date" into an ORDER BY clause.
// A leading "-" means descending. An empty key yields an empty clause.
func Order(sortKey string) (string, error) {
	if sortKey == "" {
		return "", nil
	}
	direction := "asc"
	field := sortKey
	if strings.HasPrefix(sortKey, "-") {
		direction = "desc"
		field = sortKey[1:]
	}
	column, ok := columns[field]
	if !ok {
		return "", fmt.Errorf("%w: %q", errorz.ErrInvalidSortKey, sortKey)
	}
	return column + " " + direction, nil
}

package search

import (
	"strings"

	"github.com/Badsnus/club-directory/internal/domain/entity"
)

// Filter keeps the clubs whose name or description contains query
// (case-insensitive) and whose category equals category. An empty query and
// the AllCategories sentinel match everything. Input order is preserved.
func Filter(clubs []entity.Club, query string, category entity.Category) []entity.Club {
	q := strings.ToLower(query)
	result := make([]entity.Club, 0, len(clubs))
	for _, club := range clubs {
		if !matchesQuery(club, q) {
			continue
		}
		if category != entity.AllCategories && club.Category != category {
			continue
		}
		result = append(result, club)
	}
	return result
}

// FilterAdmin is the admin table search: name or owner email.
func FilterAdmin(clubs []entity.Club, query string) []entity.Club {
	q := strings.ToLower(query)
	result := make([]entity.Club, 0, len(clubs))
	for _, club := range clubs {
		if strings.Contains(strings.ToLower(club.Name), q) ||
			strings.Contains(strings.ToLower(club.OwnerEmail), q) {
			result = append(result, club)
		}
	}
	return result
}

func matchesQuery(club entity.Club, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(club.Name), q) ||
		strings.Contains(strings.ToLower(club.Description), q)
}

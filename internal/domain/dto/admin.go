package dto

import "github.com/Badsnus/club-directory/internal/domain/entity"

// Stats are the counters at the top of the admin dashboard.
type Stats struct {
	TotalClubs  int `json:"total_clubs"`
	ActiveClubs int `json:"active_clubs"`
	TotalUsers  int `json:"total_users"`
	Admins      int `json:"admins"`
}

// UserRow is a line of the admin users table: the user plus the club they
// own, if any.
type UserRow struct {
	entity.User
	Club *ClubRef `json:"club"`
}

type ClubRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

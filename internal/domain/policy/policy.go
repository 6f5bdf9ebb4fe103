// Package policy holds every authorization decision about clubs and users.
//
// All functions are pure and total. A nil user is an anonymous visitor and
// fails every positive check.
package policy

import "github.com/Badsnus/club-directory/internal/domain/entity"

// LandingView is the portal state shown to a signed-in user.
type LandingView string

const (
	ApprovalRequired LandingView = "approval_required"
	CreatePrompt     LandingView = "create_prompt"
	EditView         LandingView = "edit_view"
)

// CanViewInDirectory reports whether the club is listed publicly.
//
// Inactive clubs are hidden from the listing only: the profile page is still
// served by direct id, so an owner can preview a hidden club by link.
func CanViewInDirectory(club *entity.Club) bool {
	return club != nil && club.IsActive
}

// CanCreateClub reports whether user may create a club given the club they
// already own (nil if none). Owners go through edit, never create.
func CanCreateClub(user *entity.User, existing *entity.Club) bool {
	if user == nil || existing != nil {
		return false
	}
	return user.IsAdmin() || user.IsClubLeader
}

func CanEditClub(user *entity.User, club *entity.Club) bool {
	if user == nil || club == nil {
		return false
	}
	return user.IsAdmin() || user.Email == club.OwnerEmail
}

func CanDeleteClub(user *entity.User) bool {
	return user.IsAdmin()
}

func CanToggleActive(user *entity.User) bool {
	return user.IsAdmin()
}

// CanManageUsers covers granting and revoking the club leader flag.
func CanManageUsers(user *entity.User) bool {
	return user.IsAdmin()
}

func CanViewAdminDashboard(user *entity.User) bool {
	return user.IsAdmin()
}

// ResolveLandingView picks the portal state for user and the club they own.
// An existing club always yields EditView, whatever the approval status.
func ResolveLandingView(user *entity.User, club *entity.Club) LandingView {
	switch {
	case club != nil && CanEditClub(user, club):
		return EditView
	case club == nil && CanCreateClub(user, nil):
		return CreatePrompt
	default:
		return ApprovalRequired
	}
}

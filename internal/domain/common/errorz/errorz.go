package errorz

import "errors"

var (
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthorized      = errors.New("authentication required")
	ErrNotFound          = errors.New("not found")
	ErrClubAlreadyExists = errors.New("user already owns a club")
	ErrInvalidForm       = errors.New("invalid form")
	ErrInvalidCode       = errors.New("invalid code")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidSortKey    = errors.New("invalid sort key")
	ErrNotApplicable     = errors.New("not applicable to admins")
)

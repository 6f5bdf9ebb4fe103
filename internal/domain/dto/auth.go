package dto

// LoginCode is a pending one-time sign-in code together with the name the
// user typed when requesting it.
type LoginCode struct {
	Code     string
	FullName string
}

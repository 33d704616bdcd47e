package application

import "errors"

// Failure classes shared by every service. Handlers map these onto
// HTTP status codes; more specific errors wrap one of them so callers
// can errors.Is against the class.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrUpstream   = errors.New("upstream unavailable")
)

var (
	ErrAlreadyAssigned  = wrap(ErrConflict, "complaint already assigned")
	ErrAlreadyResolved  = wrap(ErrConflict, "complaint already resolved")
	ErrTicketClosed     = wrap(ErrConflict, "ticket already closed")
	ErrCategoryInUse    = wrap(ErrConflict, "category is still referenced")
	ErrCategoryMismatch = wrap(ErrForbidden, "category mismatch")
	ErrNotApproved      = wrap(ErrForbidden, "staff member is not approved")
	ErrEmailTaken       = wrap(ErrConflict, "email already registered")
	ErrAlreadyReviewed  = wrap(ErrConflict, "user already submitted a review")
)

type wrappedError struct {
	class error
	msg   string
}

func (e *wrappedError) Error() string { return e.msg }
func (e *wrappedError) Unwrap() error { return e.class }

func wrap(class error, msg string) error {
	return &wrappedError{class: class, msg: msg}
}

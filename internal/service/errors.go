package service

import (
	"errors"

	"mediconnect-server/internal/models"
)

// Error taxonomy. Handlers map these onto fixed HTTP statuses
// (400/401/403/404/422); anything else renders as a server fault.
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrResourceNotFound   = errors.New("resource not found")
	ErrValidation         = errors.New("validation error")
)

// Identity is the request-scoped authenticated caller. The zero value means
// anonymous.
type Identity struct {
	UserID uint
	Role   models.Role
}

// IsAnonymous reports whether no verified token accompanied the request.
func (id Identity) IsAnonymous() bool {
	return id.UserID == 0
}

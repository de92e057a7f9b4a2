package hierarchy

import "errors"

var (
	ErrInvalidID         = errors.New("hierarchy: invalid id")
	ErrInvalidProjectID  = errors.New("hierarchy: invalid project id")
	ErrUserNotFound      = errors.New("hierarchy: user not found")
	ErrManagerNotFound   = errors.New("hierarchy: manager not found")
	ErrCycleDetected     = errors.New("hierarchy: assignment would create a reporting cycle")
	ErrAdminHasManager   = errors.New("hierarchy: admin cannot be assigned a manager")
	ErrMemberAsManager   = errors.New("hierarchy: member cannot manage other users")
	ErrForbidden         = errors.New("hierarchy: requester may not access this user")
	ErrInvalidAssignment = errors.New("hierarchy: invalid manager assignment")
)

package timesheet

import "errors"

var (
	ErrInvalidID          = errors.New("timesheet: invalid id")
	ErrInvalidOwnerID     = errors.New("timesheet: invalid owner id")
	ErrInvalidMonth       = errors.New("timesheet: invalid month")
	ErrMarkerNotFound     = errors.New("timesheet: workday marker not found")
	ErrEntryNotFound      = errors.New("timesheet: time entry not found")
	ErrBreakNotFound      = errors.New("timesheet: break not found")
	ErrWorkdayAlreadyOpen = errors.New("timesheet: workday already started")
	ErrNoOpenWorkday      = errors.New("timesheet: no open workday")
	ErrEntryAlreadyOpen   = errors.New("timesheet: time entry already running")
	ErrNoOpenEntry        = errors.New("timesheet: no running time entry")
	ErrBreakAlreadyOpen   = errors.New("timesheet: break already in progress")
	ErrNoOpenBreak        = errors.New("timesheet: no break in progress")
)

package handler

import (
	"errors"

	"github.com/chronoplane/chronoplane-backend/internal/core/hierarchy"
	"github.com/chronoplane/chronoplane-backend/internal/core/timesheet"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, hierarchy.ErrInvalidID),
		errors.Is(err, hierarchy.ErrInvalidProjectID),
		errors.Is(err, hierarchy.ErrInvalidAssignment),
		errors.Is(err, timesheet.ErrInvalidID),
		errors.Is(err, timesheet.ErrInvalidOwnerID),
		errors.Is(err, timesheet.ErrInvalidMonth):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, hierarchy.ErrCycleDetected),
		errors.Is(err, hierarchy.ErrAdminHasManager),
		errors.Is(err, hierarchy.ErrMemberAsManager),
		errors.Is(err, timesheet.ErrWorkdayAlreadyOpen),
		errors.Is(err, timesheet.ErrNoOpenWorkday),
		errors.Is(err, timesheet.ErrEntryAlreadyOpen),
		errors.Is(err, timesheet.ErrNoOpenEntry),
		errors.Is(err, timesheet.ErrBreakAlreadyOpen),
		errors.Is(err, timesheet.ErrNoOpenBreak):
		return status.Error(codes.FailedPrecondition, err.Error())
	// 閲覧範囲外は NotFound ではなく常に PermissionDenied を返します。
	case errors.Is(err, hierarchy.ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, hierarchy.ErrUserNotFound),
		errors.Is(err, hierarchy.ErrManagerNotFound),
		errors.Is(err, timesheet.ErrMarkerNotFound),
		errors.Is(err, timesheet.ErrEntryNotFound),
		errors.Is(err, timesheet.ErrBreakNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

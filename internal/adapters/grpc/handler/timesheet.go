package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	tspb "github.com/chronoplane/chronoplane-backend/internal/adapters/grpc/gen/timesheet/v1"
	"github.com/chronoplane/chronoplane-backend/internal/core/timesheet"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// TimesheetGrpcHandler は TimesheetService の gRPC 実装です。
type TimesheetGrpcHandler struct {
	svc timesheet.UseCase
	tspb.UnimplementedTimesheetServiceServer
}

// NewTimesheetGrpcHandler は TimesheetGrpcHandler を生成します。
func NewTimesheetGrpcHandler(svc timesheet.UseCase) *TimesheetGrpcHandler {
	return &TimesheetGrpcHandler{svc: svc}
}

// GetDailyReport は指定した 1 日分の集計を返します。
func (h *TimesheetGrpcHandler) GetDailyReport(ctx context.Context, req *tspb.GetDailyReportRequest) (*tspb.GetDailyReportResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	date, err := parseDate(req.GetDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("date: %v", err))
	}

	report, err := h.svc.GetDailyReport(ctx, timesheet.GetDailyReportInput{
		RequesterID: req.GetRequesterId(),
		ProjectID:   req.GetProjectId(),
		UserID:      req.GetUserId(),
		Date:        date,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &tspb.GetDailyReportResponse{Report: toProtoDailyReport(report)}, nil
}

// GetMonthlyReport は月次レポートを返します。
func (h *TimesheetGrpcHandler) GetMonthlyReport(ctx context.Context, req *tspb.GetMonthlyReportRequest) (*tspb.GetMonthlyReportResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	month, err := parseMonth(req.GetMonth())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("month: %v", err))
	}

	report, err := h.svc.GetMonthlyReport(ctx, timesheet.GetMonthlyReportInput{
		RequesterID: req.GetRequesterId(),
		ProjectID:   req.GetProjectId(),
		UserID:      req.GetUserId(),
		Month:       month,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	days := make([]*tspb.DailyReport, 0, len(report.Days))
	for i := range report.Days {
		days = append(days, toProtoDailyReport(&report.Days[i]))
	}

	return &tspb.GetMonthlyReportResponse{Report: &tspb.MonthlyReport{
		Days:             days,
		TotalWorkedHours: report.TotalWorkedHours,
		TotalTargetHours: report.TotalTargetHours,
	}}, nil
}

// GetBalance は当月のバランスを返します。
func (h *TimesheetGrpcHandler) GetBalance(ctx context.Context, req *tspb.GetBalanceRequest) (*tspb.GetBalanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	balance, err := h.svc.GetBalance(ctx, timesheet.GetBalanceInput{
		RequesterID: req.GetRequesterId(),
		ProjectID:   req.GetProjectId(),
		UserID:      req.GetUserId(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &tspb.GetBalanceResponse{Balance: &tspb.Balance{
		WorkedHours: balance.WorkedHours,
		TargetHours: balance.TargetHours,
		Balance:     balance.Balance,
		Overtime:    balance.Overtime,
		Deficit:     balance.Deficit,
		DaysWorked:  int32(balance.DaysWorked),
		TodayWorked: balance.TodayWorked,
	}}, nil
}

// StartWorkday は勤務日を開始します。
func (h *TimesheetGrpcHandler) StartWorkday(ctx context.Context, req *tspb.StartWorkdayRequest) (*tspb.StartWorkdayResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	marker, err := h.svc.StartWorkday(ctx, timesheet.LifecycleInput{UserID: req.GetUserId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &tspb.StartWorkdayResponse{Marker: toProtoMarker(marker)}, nil
}

// EndWorkday は勤務日を終了します。
func (h *TimesheetGrpcHandler) EndWorkday(ctx context.Context, req *tspb.EndWorkdayRequest) (*tspb.EndWorkdayResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	marker, err := h.svc.EndWorkday(ctx, timesheet.LifecycleInput{UserID: req.GetUserId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &tspb.EndWorkdayResponse{Marker: toProtoMarker(marker)}, nil
}

// StartEntry は作業セッションを開始します。
func (h *TimesheetGrpcHandler) StartEntry(ctx context.Context, req *tspb.StartEntryRequest) (*tspb.StartEntryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	entry, err := h.svc.StartEntry(ctx, timesheet.StartEntryInput{
		UserID: req.GetUserId(),
		Manual: req.GetManual(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &tspb.StartEntryResponse{Entry: toProtoEntry(entry)}, nil
}

// StopEntry は計測中の作業セッションを終了します。
func (h *TimesheetGrpcHandler) StopEntry(ctx context.Context, req *tspb.StopEntryRequest) (*tspb.StopEntryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	entry, err := h.svc.StopEntry(ctx, timesheet.LifecycleInput{UserID: req.GetUserId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &tspb.StopEntryResponse{Entry: toProtoEntry(entry)}, nil
}

// StartBreak は計測中のセッションに休憩を開始します。
func (h *TimesheetGrpcHandler) StartBreak(ctx context.Context, req *tspb.StartBreakRequest) (*tspb.StartBreakResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	entry, err := h.svc.StartBreak(ctx, timesheet.LifecycleInput{UserID: req.GetUserId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &tspb.StartBreakResponse{Entry: toProtoEntry(entry)}, nil
}

// EndBreak は休憩を終了します。
func (h *TimesheetGrpcHandler) EndBreak(ctx context.Context, req *tspb.EndBreakRequest) (*tspb.EndBreakResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	entry, err := h.svc.EndBreak(ctx, timesheet.LifecycleInput{UserID: req.GetUserId()})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &tspb.EndBreakResponse{Entry: toProtoEntry(entry)}, nil
}

func toProtoDailyReport(report *timesheet.DailyReport) *tspb.DailyReport {
	if report == nil {
		return nil
	}

	return &tspb.DailyReport{
		Date:             report.Date.Format(dateLayout),
		Weekday:          report.Weekday,
		IsWorkDay:        report.IsWorkDay,
		WorkdayStart:     timePointerToTimestamp(report.WorkdayStart),
		WorkdayEnd:       timePointerToTimestamp(report.WorkdayEnd),
		TotalHours:       report.TotalHours,
		NetHours:         report.NetHours,
		Status:           toProtoDayStatus(report.Status),
		HasManualEntries: report.HasManualEntries,
		SessionRange:     report.SessionRange,
	}
}

func toProtoDayStatus(s timesheet.DayStatus) tspb.DayStatus {
	switch s {
	case timesheet.StatusMet:
		return tspb.DayStatus_DAY_STATUS_MET
	case timesheet.StatusMissed:
		return tspb.DayStatus_DAY_STATUS_MISSED
	case timesheet.StatusOff:
		return tspb.DayStatus_DAY_STATUS_OFF
	case timesheet.StatusPending:
		return tspb.DayStatus_DAY_STATUS_PENDING
	default:
		return tspb.DayStatus_DAY_STATUS_UNSPECIFIED
	}
}

func toProtoMarker(m *timesheet.Marker) *tspb.Marker {
	if m == nil {
		return nil
	}

	return &tspb.Marker{
		Id:        m.ID,
		OwnerId:   m.OwnerID,
		StartedAt: timestamppb.New(m.Start),
		EndedAt:   timePointerToTimestamp(m.End),
	}
}

func toProtoEntry(e *timesheet.Entry) *tspb.Entry {
	if e == nil {
		return nil
	}

	breaks := make([]*tspb.Break, 0, len(e.Breaks))
	for _, b := range e.Breaks {
		breaks = append(breaks, &tspb.Break{
			Id:        b.ID,
			StartedAt: timestamppb.New(b.Start),
			EndedAt:   timePointerToTimestamp(b.End),
		})
	}

	return &tspb.Entry{
		Id:        e.ID,
		OwnerId:   e.OwnerID,
		StartedAt: timestamppb.New(e.Start),
		EndedAt:   timePointerToTimestamp(e.End),
		Manual:    e.Manual,
		Breaks:    breaks,
	}
}

func timePointerToTimestamp(value *time.Time) *timestamppb.Timestamp {
	if value == nil {
		return nil
	}
	return timestamppb.New(*value)
}

func parseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("value is required")
	}
	t, err := time.ParseInLocation(dateLayout, trimmed, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid format, expected YYYY-MM-DD")
	}
	return t, nil
}

func parseMonth(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("value is required")
	}
	t, err := time.ParseInLocation(monthLayout, trimmed, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid format, expected YYYY-MM")
	}
	return t, nil
}

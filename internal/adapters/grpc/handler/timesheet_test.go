package handler

import (
	"context"
	"testing"
	"time"

	tspb "github.com/chronoplane/chronoplane-backend/internal/adapters/grpc/gen/timesheet/v1"
	"github.com/chronoplane/chronoplane-backend/internal/core/timesheet"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type stubTimesheetUseCase struct {
	dailyInput timesheet.GetDailyReportInput
	dailyErr   error
	dailyOut   *timesheet.DailyReport

	monthlyInput timesheet.GetMonthlyReportInput
	monthlyErr   error
	monthlyOut   *timesheet.MonthlyReport

	balanceInput timesheet.GetBalanceInput
	balanceErr   error
	balanceOut   *timesheet.Balance

	lifecycleInput timesheet.LifecycleInput
	startEntryIn   timesheet.StartEntryInput
	markerErr      error
	markerOut      *timesheet.Marker
	entryErr       error
	entryOut       *timesheet.Entry
}

func (s *stubTimesheetUseCase) GetDailyReport(ctx context.Context, in timesheet.GetDailyReportInput) (*timesheet.DailyReport, error) {
	s.dailyInput = in
	return s.dailyOut, s.dailyErr
}

func (s *stubTimesheetUseCase) GetMonthlyReport(ctx context.Context, in timesheet.GetMonthlyReportInput) (*timesheet.MonthlyReport, error) {
	s.monthlyInput = in
	return s.monthlyOut, s.monthlyErr
}

func (s *stubTimesheetUseCase) GetBalance(ctx context.Context, in timesheet.GetBalanceInput) (*timesheet.Balance, error) {
	s.balanceInput = in
	return s.balanceOut, s.balanceErr
}

func (s *stubTimesheetUseCase) StartWorkday(ctx context.Context, in timesheet.LifecycleInput) (*timesheet.Marker, error) {
	s.lifecycleInput = in
	return s.markerOut, s.markerErr
}

func (s *stubTimesheetUseCase) EndWorkday(ctx context.Context, in timesheet.LifecycleInput) (*timesheet.Marker, error) {
	s.lifecycleInput = in
	return s.markerOut, s.markerErr
}

func (s *stubTimesheetUseCase) StartEntry(ctx context.Context, in timesheet.StartEntryInput) (*timesheet.Entry, error) {
	s.startEntryIn = in
	return s.entryOut, s.entryErr
}

func (s *stubTimesheetUseCase) StopEntry(ctx context.Context, in timesheet.LifecycleInput) (*timesheet.Entry, error) {
	s.lifecycleInput = in
	return s.entryOut, s.entryErr
}

func (s *stubTimesheetUseCase) StartBreak(ctx context.Context, in timesheet.LifecycleInput) (*timesheet.Entry, error) {
	s.lifecycleInput = in
	return s.entryOut, s.entryErr
}

func (s *stubTimesheetUseCase) EndBreak(ctx context.Context, in timesheet.LifecycleInput) (*timesheet.Entry, error) {
	s.lifecycleInput = in
	return s.entryOut, s.entryErr
}

func TestTimesheetGrpcHandler_GetDailyReport(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)
	stub := &stubTimesheetUseCase{
		dailyOut: &timesheet.DailyReport{
			Date:         time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			Weekday:      "Wednesday",
			IsWorkDay:    true,
			WorkdayStart: &start,
			WorkdayEnd:   &end,
			TotalHours:   8,
			NetHours:     7.5,
			Status:       timesheet.StatusMissed,
			SessionRange: "09:00 - 17:00",
		},
	}

	handler := NewTimesheetGrpcHandler(stub)

	resp, err := handler.GetDailyReport(context.Background(), &tspb.GetDailyReportRequest{
		RequesterId: "user-1",
		ProjectId:   "project-1",
		UserId:      "user-2",
		Date:        "2025-03-12",
	})
	if err != nil {
		t.Fatalf("GetDailyReport returned error: %v", err)
	}

	if !stub.dailyInput.Date.Equal(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected parsed date %v", stub.dailyInput.Date)
	}

	report := resp.GetReport()
	if report.GetDate() != "2025-03-12" {
		t.Errorf("unexpected date %s", report.GetDate())
	}
	if report.GetStatus() != tspb.DayStatus_DAY_STATUS_MISSED {
		t.Errorf("unexpected status %v", report.GetStatus())
	}
	if report.GetSessionRange() != "09:00 - 17:00" {
		t.Errorf("unexpected session range %s", report.GetSessionRange())
	}
}

func TestTimesheetGrpcHandler_GetDailyReport_InvalidDate(t *testing.T) {
	t.Parallel()

	handler := NewTimesheetGrpcHandler(&stubTimesheetUseCase{})

	_, err := handler.GetDailyReport(context.Background(), &tspb.GetDailyReportRequest{
		RequesterId: "user-1",
		ProjectId:   "project-1",
		UserId:      "user-2",
		Date:        "12/03/2025",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", status.Code(err))
	}
}

func TestTimesheetGrpcHandler_GetMonthlyReport(t *testing.T) {
	t.Parallel()

	stub := &stubTimesheetUseCase{
		monthlyOut: &timesheet.MonthlyReport{
			Days: []timesheet.DailyReport{
				{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Weekday: "Saturday", Status: timesheet.StatusOff},
				{Date: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), Weekday: "Monday", IsWorkDay: true, NetHours: 8, Status: timesheet.StatusMet},
			},
			TotalWorkedHours: 8,
			TotalTargetHours: 8,
		},
	}

	handler := NewTimesheetGrpcHandler(stub)

	resp, err := handler.GetMonthlyReport(context.Background(), &tspb.GetMonthlyReportRequest{
		RequesterId: "user-1",
		ProjectId:   "project-1",
		UserId:      "user-2",
		Month:       "2025-03",
	})
	if err != nil {
		t.Fatalf("GetMonthlyReport returned error: %v", err)
	}

	if !stub.monthlyInput.Month.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected parsed month %v", stub.monthlyInput.Month)
	}

	report := resp.GetReport()
	if len(report.GetDays()) != 2 {
		t.Fatalf("expected 2 days, got %d", len(report.GetDays()))
	}
	if report.GetTotalWorkedHours() != 8 {
		t.Errorf("unexpected total worked hours %v", report.GetTotalWorkedHours())
	}
}

func TestTimesheetGrpcHandler_GetMonthlyReport_InvalidMonth(t *testing.T) {
	t.Parallel()

	handler := NewTimesheetGrpcHandler(&stubTimesheetUseCase{})

	_, err := handler.GetMonthlyReport(context.Background(), &tspb.GetMonthlyReportRequest{
		RequesterId: "user-1",
		ProjectId:   "project-1",
		UserId:      "user-2",
		Month:       "March 2025",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", status.Code(err))
	}
}

func TestTimesheetGrpcHandler_GetBalance(t *testing.T) {
	t.Parallel()

	stub := &stubTimesheetUseCase{
		balanceOut: &timesheet.Balance{
			WorkedHours: 42,
			TargetHours: 40,
			Balance:     2,
			Overtime:    2,
			DaysWorked:  5,
			TodayWorked: 6,
		},
	}

	handler := NewTimesheetGrpcHandler(stub)

	resp, err := handler.GetBalance(context.Background(), &tspb.GetBalanceRequest{
		RequesterId: "user-1",
		ProjectId:   "project-1",
		UserId:      "user-1",
	})
	if err != nil {
		t.Fatalf("GetBalance returned error: %v", err)
	}

	balance := resp.GetBalance()
	if balance.GetOvertime() != 2 || balance.GetDeficit() != 0 {
		t.Errorf("unexpected balance %+v", balance)
	}
	if balance.GetDaysWorked() != 5 {
		t.Errorf("unexpected days worked %d", balance.GetDaysWorked())
	}
}

func TestTimesheetGrpcHandler_StartWorkday(t *testing.T) {
	t.Parallel()

	started := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	stub := &stubTimesheetUseCase{
		markerOut: &timesheet.Marker{ID: "marker-1", OwnerID: "user-1", Start: started},
	}

	handler := NewTimesheetGrpcHandler(stub)

	resp, err := handler.StartWorkday(context.Background(), &tspb.StartWorkdayRequest{UserId: "user-1"})
	if err != nil {
		t.Fatalf("StartWorkday returned error: %v", err)
	}

	if stub.lifecycleInput.UserID != "user-1" {
		t.Errorf("unexpected input %+v", stub.lifecycleInput)
	}

	marker := resp.GetMarker()
	if marker.GetId() != "marker-1" {
		t.Errorf("unexpected marker id %s", marker.GetId())
	}
	if marker.GetEndedAt() != nil {
		t.Errorf("fresh marker must be open, got %v", marker.GetEndedAt())
	}
}

func TestTimesheetGrpcHandler_StartWorkday_ConflictMapping(t *testing.T) {
	t.Parallel()

	stub := &stubTimesheetUseCase{markerErr: timesheet.ErrWorkdayAlreadyOpen}
	handler := NewTimesheetGrpcHandler(stub)

	_, err := handler.StartWorkday(context.Background(), &tspb.StartWorkdayRequest{UserId: "user-1"})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", status.Code(err))
	}
}

func TestTimesheetGrpcHandler_StopEntry_ReturnsBreaks(t *testing.T) {
	t.Parallel()

	started := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	ended := started.Add(8 * time.Hour)
	breakStart := started.Add(3 * time.Hour)
	breakEnd := breakStart.Add(30 * time.Minute)
	stub := &stubTimesheetUseCase{
		entryOut: &timesheet.Entry{
			ID:      "entry-1",
			OwnerID: "user-1",
			Start:   started,
			End:     &ended,
			Breaks:  []timesheet.Break{{ID: "break-1", Start: breakStart, End: &breakEnd}},
		},
	}

	handler := NewTimesheetGrpcHandler(stub)

	resp, err := handler.StopEntry(context.Background(), &tspb.StopEntryRequest{UserId: "user-1"})
	if err != nil {
		t.Fatalf("StopEntry returned error: %v", err)
	}

	entry := resp.GetEntry()
	if entry.GetEndedAt() == nil {
		t.Fatalf("expected closed entry")
	}
	if len(entry.GetBreaks()) != 1 {
		t.Fatalf("expected 1 break, got %d", len(entry.GetBreaks()))
	}
	if !entry.GetBreaks()[0].GetEndedAt().AsTime().Equal(breakEnd) {
		t.Errorf("unexpected break end %v", entry.GetBreaks()[0].GetEndedAt())
	}
}

func TestTimesheetGrpcHandler_StartEntry_PassesManualFlag(t *testing.T) {
	t.Parallel()

	started := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	stub := &stubTimesheetUseCase{
		entryOut: &timesheet.Entry{ID: "entry-1", OwnerID: "user-1", Start: started, Manual: true},
	}

	handler := NewTimesheetGrpcHandler(stub)

	resp, err := handler.StartEntry(context.Background(), &tspb.StartEntryRequest{UserId: "user-1", Manual: true})
	if err != nil {
		t.Fatalf("StartEntry returned error: %v", err)
	}

	if !stub.startEntryIn.Manual {
		t.Errorf("expected manual flag passed through")
	}
	if !resp.GetEntry().GetManual() {
		t.Errorf("expected manual flag in response")
	}
}

func TestTimesheetGrpcHandler_EndBreak_NoOpenBreakMapping(t *testing.T) {
	t.Parallel()

	stub := &stubTimesheetUseCase{entryErr: timesheet.ErrNoOpenBreak}
	handler := NewTimesheetGrpcHandler(stub)

	_, err := handler.EndBreak(context.Background(), &tspb.EndBreakRequest{UserId: "user-1"})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", status.Code(err))
	}
}

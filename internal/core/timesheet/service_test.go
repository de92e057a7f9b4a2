package timesheet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chronoplane/chronoplane-backend/internal/core/hierarchy"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeDirectory struct {
	users []*hierarchy.User
}

func (d *fakeDirectory) ListByProject(_ context.Context, projectID string) ([]*hierarchy.User, error) {
	result := make([]*hierarchy.User, 0, len(d.users))
	for _, u := range d.users {
		if u.ProjectID == projectID {
			result = append(result, u)
		}
	}
	return result, nil
}

func (d *fakeDirectory) FindByID(_ context.Context, id string) (*hierarchy.User, error) {
	for _, u := range d.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, hierarchy.ErrUserNotFound
}

func (d *fakeDirectory) UpdateManager(_ context.Context, _ string, _ *string) error {
	return nil
}

type fakeLedger struct {
	entries []*Entry
	markers []*Marker
}

func (l *fakeLedger) ListEntries(_ context.Context, ownerID string, from, to time.Time) ([]*Entry, error) {
	var result []*Entry
	for _, e := range l.entries {
		if e.OwnerID == ownerID && !e.Start.Before(from) && e.Start.Before(to) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (l *fakeLedger) ListMarkers(_ context.Context, ownerID string, from, to time.Time) ([]*Marker, error) {
	var result []*Marker
	for _, m := range l.markers {
		if m.OwnerID == ownerID && !m.Start.Before(from) && m.Start.Before(to) {
			result = append(result, m)
		}
	}
	return result, nil
}

func (l *fakeLedger) FindOpenMarker(_ context.Context, ownerID string) (*Marker, error) {
	for _, m := range l.markers {
		if m.OwnerID == ownerID && m.End == nil {
			return m, nil
		}
	}
	return nil, nil
}

func (l *fakeLedger) CreateMarker(_ context.Context, m *Marker) (*Marker, error) {
	clone := *m
	l.markers = append(l.markers, &clone)
	return &clone, nil
}

func (l *fakeLedger) CloseMarker(_ context.Context, id string, end time.Time) (*Marker, error) {
	for _, m := range l.markers {
		if m.ID == id {
			closed := end
			m.End = &closed
			return m, nil
		}
	}
	return nil, ErrMarkerNotFound
}

func (l *fakeLedger) FindOpenEntry(_ context.Context, ownerID string) (*Entry, error) {
	for _, e := range l.entries {
		if e.OwnerID == ownerID && e.End == nil {
			return e, nil
		}
	}
	return nil, nil
}

func (l *fakeLedger) CreateEntry(_ context.Context, e *Entry) (*Entry, error) {
	clone := *e
	l.entries = append(l.entries, &clone)
	return &clone, nil
}

func (l *fakeLedger) CloseEntry(_ context.Context, id string, end time.Time) (*Entry, error) {
	for _, e := range l.entries {
		if e.ID == id {
			closed := end
			e.End = &closed
			return e, nil
		}
	}
	return nil, ErrEntryNotFound
}

func (l *fakeLedger) AddBreak(_ context.Context, entryID string, b Break) (*Entry, error) {
	for _, e := range l.entries {
		if e.ID == entryID {
			e.Breaks = append(e.Breaks, b)
			return e, nil
		}
	}
	return nil, ErrEntryNotFound
}

func (l *fakeLedger) CloseBreak(_ context.Context, breakID string, end time.Time) error {
	for _, e := range l.entries {
		for i := range e.Breaks {
			if e.Breaks[i].ID == breakID {
				closed := end
				e.Breaks[i].End = &closed
				return nil
			}
		}
	}
	return ErrEntryNotFound
}

func managerIDPtr(id string) *string {
	return &id
}

func serviceDirectory() *fakeDirectory {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &fakeDirectory{users: []*hierarchy.User{
		{ID: "mgr", ProjectID: "project-1", Role: hierarchy.RoleManager,
			DailyTarget: 8, WorkDays: []int{1, 2, 3, 4, 5}, CreatedAt: created},
		{ID: "emp", ProjectID: "project-1", ManagerID: managerIDPtr("mgr"), Role: hierarchy.RoleMember,
			DailyTarget: 8, WorkDays: []int{1, 2, 3, 4, 5}, CreatedAt: created},
		{ID: "other", ProjectID: "project-1", Role: hierarchy.RoleMember,
			DailyTarget: 8, WorkDays: []int{1, 2, 3, 4, 5}, CreatedAt: created},
	}}
}

func newTestService(ledger *fakeLedger, clk Clock) *Service {
	return NewService(serviceDirectory(), ledger, clk, nil, TargetDefaults{DailyTarget: 8, WorkDays: []int{1, 2, 3, 4, 5}})
}

func TestService_GetMonthlyReport_ScopeDenied(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeLedger{}, &stubClock{now: testNow})

	_, err := svc.GetMonthlyReport(context.Background(), GetMonthlyReportInput{
		RequesterID: "emp",
		ProjectID:   "project-1",
		UserID:      "other",
		Month:       testNow,
	})
	if !errors.Is(err, hierarchy.ErrForbidden) {
		t.Fatalf("member requesting another user must be forbidden, got %v", err)
	}
}

func TestService_GetMonthlyReport_ManagerForReport(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	ledger := &fakeLedger{entries: []*Entry{
		{ID: "e-1", OwnerID: "emp", Start: at(day, 9, 0), End: timePtr(at(day, 17, 0))},
	}}
	svc := newTestService(ledger, &stubClock{now: testNow})

	report, err := svc.GetMonthlyReport(context.Background(), GetMonthlyReportInput{
		RequesterID: "mgr",
		ProjectID:   "project-1",
		UserID:      "emp",
		Month:       testNow,
	})
	if err != nil {
		t.Fatalf("GetMonthlyReport returned error: %v", err)
	}
	if report.TotalWorkedHours != 8 {
		t.Fatalf("expected 8 worked hours, got %f", report.TotalWorkedHours)
	}
	if len(report.Days) != 31 {
		t.Fatalf("expected 31 days, got %d", len(report.Days))
	}
}

func TestService_GetDailyReport_Self(t *testing.T) {
	t.Parallel()

	day := startOfDay(testNow)
	ledger := &fakeLedger{entries: []*Entry{
		{ID: "e-1", OwnerID: "emp", Start: at(day, 9, 0), End: timePtr(at(day, 12, 0))},
	}}
	svc := newTestService(ledger, &stubClock{now: testNow})

	report, err := svc.GetDailyReport(context.Background(), GetDailyReportInput{
		RequesterID: "emp",
		ProjectID:   "project-1",
		UserID:      "emp",
		Date:        testNow,
	})
	if err != nil {
		t.Fatalf("GetDailyReport returned error: %v", err)
	}
	if report.NetHours != 3 {
		t.Fatalf("expected 3 net hours, got %f", report.NetHours)
	}
	if report.Status != StatusMissed {
		t.Fatalf("3 < 8 must be MISSED, got %s", report.Status)
	}
}

func TestService_GetBalance_UsesMarkers(t *testing.T) {
	t.Parallel()

	today := startOfDay(testNow)
	ledger := &fakeLedger{markers: []*Marker{
		{ID: "m-1", OwnerID: "emp", Start: at(today, 9, 0)}, // 勤務中 6h
	}}
	svc := newTestService(ledger, &stubClock{now: testNow})

	balance, err := svc.GetBalance(context.Background(), GetBalanceInput{
		RequesterID: "mgr",
		ProjectID:   "project-1",
		UserID:      "emp",
	})
	if err != nil {
		t.Fatalf("GetBalance returned error: %v", err)
	}
	if !approx(balance.WorkedHours, 6) {
		t.Fatalf("expected 6 worked hours from the open marker, got %f", balance.WorkedHours)
	}
	if !approx(balance.TodayWorked, 6) {
		t.Fatalf("expected 6 hours today, got %f", balance.TodayWorked)
	}
	if balance.Deficit == 0 {
		t.Fatalf("expected a deficit this early in the month")
	}
}

func TestService_StartWorkday_ConflictWhenOpen(t *testing.T) {
	t.Parallel()

	ledger := &fakeLedger{}
	svc := newTestService(ledger, &stubClock{now: testNow})

	marker, err := svc.StartWorkday(context.Background(), LifecycleInput{UserID: "emp"})
	if err != nil {
		t.Fatalf("StartWorkday returned error: %v", err)
	}
	if marker.ID == "" || !marker.Start.Equal(testNow) {
		t.Fatalf("expected marker with generated id starting now, got %+v", marker)
	}

	if _, err := svc.StartWorkday(context.Background(), LifecycleInput{UserID: "emp"}); !errors.Is(err, ErrWorkdayAlreadyOpen) {
		t.Fatalf("expected ErrWorkdayAlreadyOpen, got %v", err)
	}
}

func TestService_EndWorkday(t *testing.T) {
	t.Parallel()

	ledger := &fakeLedger{}
	clk := &stubClock{now: testNow}
	svc := newTestService(ledger, clk)

	if _, err := svc.EndWorkday(context.Background(), LifecycleInput{UserID: "emp"}); !errors.Is(err, ErrNoOpenWorkday) {
		t.Fatalf("expected ErrNoOpenWorkday, got %v", err)
	}

	if _, err := svc.StartWorkday(context.Background(), LifecycleInput{UserID: "emp"}); err != nil {
		t.Fatalf("StartWorkday returned error: %v", err)
	}

	clk.now = clk.now.Add(8 * time.Hour)
	closed, err := svc.EndWorkday(context.Background(), LifecycleInput{UserID: "emp"})
	if err != nil {
		t.Fatalf("EndWorkday returned error: %v", err)
	}
	if closed.End == nil || !closed.End.Equal(clk.now) {
		t.Fatalf("expected marker closed at now, got %+v", closed.End)
	}
}

func TestService_EntryLifecycleWithBreak(t *testing.T) {
	t.Parallel()

	ledger := &fakeLedger{}
	clk := &stubClock{now: testNow}
	svc := newTestService(ledger, clk)

	if _, err := svc.StopEntry(context.Background(), LifecycleInput{UserID: "emp"}); !errors.Is(err, ErrNoOpenEntry) {
		t.Fatalf("expected ErrNoOpenEntry, got %v", err)
	}

	entry, err := svc.StartEntry(context.Background(), StartEntryInput{UserID: "emp"})
	if err != nil {
		t.Fatalf("StartEntry returned error: %v", err)
	}
	if entry.End != nil {
		t.Fatalf("new entry must be running")
	}

	if _, err := svc.StartEntry(context.Background(), StartEntryInput{UserID: "emp"}); !errors.Is(err, ErrEntryAlreadyOpen) {
		t.Fatalf("expected ErrEntryAlreadyOpen, got %v", err)
	}

	clk.now = clk.now.Add(2 * time.Hour)
	if _, err := svc.StartBreak(context.Background(), LifecycleInput{UserID: "emp"}); err != nil {
		t.Fatalf("StartBreak returned error: %v", err)
	}
	if _, err := svc.StartBreak(context.Background(), LifecycleInput{UserID: "emp"}); !errors.Is(err, ErrBreakAlreadyOpen) {
		t.Fatalf("expected ErrBreakAlreadyOpen, got %v", err)
	}

	// 休憩を開いたままセッションを停止すると休憩も閉じられる。
	clk.now = clk.now.Add(30 * time.Minute)
	stopped, err := svc.StopEntry(context.Background(), LifecycleInput{UserID: "emp"})
	if err != nil {
		t.Fatalf("StopEntry returned error: %v", err)
	}
	if stopped.End == nil || !stopped.End.Equal(clk.now) {
		t.Fatalf("expected entry closed at now")
	}
	if len(stopped.Breaks) != 1 || stopped.Breaks[0].End == nil {
		t.Fatalf("expected the open break to be closed with the entry, got %+v", stopped.Breaks)
	}
}

func TestService_EndBreak(t *testing.T) {
	t.Parallel()

	ledger := &fakeLedger{}
	clk := &stubClock{now: testNow}
	svc := newTestService(ledger, clk)

	if _, err := svc.StartEntry(context.Background(), StartEntryInput{UserID: "emp"}); err != nil {
		t.Fatalf("StartEntry returned error: %v", err)
	}

	if _, err := svc.EndBreak(context.Background(), LifecycleInput{UserID: "emp"}); !errors.Is(err, ErrNoOpenBreak) {
		t.Fatalf("expected ErrNoOpenBreak, got %v", err)
	}

	if _, err := svc.StartBreak(context.Background(), LifecycleInput{UserID: "emp"}); err != nil {
		t.Fatalf("StartBreak returned error: %v", err)
	}

	clk.now = clk.now.Add(15 * time.Minute)
	updated, err := svc.EndBreak(context.Background(), LifecycleInput{UserID: "emp"})
	if err != nil {
		t.Fatalf("EndBreak returned error: %v", err)
	}
	if len(updated.Breaks) != 1 || updated.Breaks[0].End == nil || !updated.Breaks[0].End.Equal(clk.now) {
		t.Fatalf("expected break closed at now, got %+v", updated.Breaks)
	}
}

func TestService_TargetDefaultsApplied(t *testing.T) {
	t.Parallel()

	// 目標設定を一切持たないユーザーにはプロジェクト既定値が適用される。
	dir := serviceDirectory()
	dir.users = append(dir.users, &hierarchy.User{
		ID: "bare", ProjectID: "project-1", Role: hierarchy.RoleMember,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	svc := NewService(dir, &fakeLedger{}, &stubClock{now: testNow}, nil,
		TargetDefaults{DailyTarget: 7, WorkDays: []int{1, 2, 3, 4, 5}})

	report, err := svc.GetDailyReport(context.Background(), GetDailyReportInput{
		RequesterID: "bare",
		ProjectID:   "project-1",
		UserID:      "bare",
		Date:        testNow,
	})
	if err != nil {
		t.Fatalf("GetDailyReport returned error: %v", err)
	}
	if !report.IsWorkDay {
		t.Fatalf("defaults should make wednesday a work day")
	}
	if report.Status != StatusMissed {
		t.Fatalf("expected MISSED against the default 7h target, got %s", report.Status)
	}
}

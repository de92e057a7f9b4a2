package timesheet

import (
	"reflect"
	"testing"
	"time"
)

// 2025-03-12 は水曜日。
var (
	testNow = time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)
	weekMF  = TargetModel{DailyTarget: 8, WorkDays: []int{1, 2, 3, 4, 5}}
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, time.UTC)
}

func TestAggregateDay_MissedWithoutEntries(t *testing.T) {
	t.Parallel()

	day := testNow // 水曜、勤務日、エントリーなし
	report := AggregateDay(day, nil, nil, weekMF, testNow)

	if report.Status != StatusMissed {
		t.Fatalf("workday without entries must be MISSED, got %s", report.Status)
	}
	if report.NetHours != 0 {
		t.Fatalf("expected 0 net hours, got %f", report.NetHours)
	}
	if !report.IsWorkDay {
		t.Fatalf("expected work day")
	}
	if report.Weekday != "Wednesday" {
		t.Fatalf("expected Wednesday, got %s", report.Weekday)
	}
}

func TestAggregateDay_OffDay(t *testing.T) {
	t.Parallel()

	saturday := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	report := AggregateDay(saturday, nil, nil, weekMF, testNow)

	if report.Status != StatusOff {
		t.Fatalf("non-work day must be OFF, got %s", report.Status)
	}
	if report.IsWorkDay {
		t.Fatalf("saturday must not be a work day for Mon-Fri model")
	}
}

func TestAggregateDay_SessionWithBreak(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC) // 火曜
	entries := []*Entry{
		{
			ID:      "e-1",
			OwnerID: "u-1",
			Start:   at(day, 9, 0),
			End:     timePtr(at(day, 17, 0)),
			Breaks: []Break{
				{ID: "b-1", Start: at(day, 12, 0), End: timePtr(at(day, 12, 30))},
			},
		},
	}

	report := AggregateDay(day, entries, nil, weekMF, testNow)

	if report.TotalHours != 8.0 {
		t.Fatalf("expected total 8.0, got %f", report.TotalHours)
	}
	if report.NetHours != 7.5 {
		t.Fatalf("expected net 7.5, got %f", report.NetHours)
	}
	if report.Status != StatusMissed {
		t.Fatalf("7.5 < 8 must be MISSED, got %s", report.Status)
	}
	if report.SessionRange != "09:00 - 17:00" {
		t.Fatalf("unexpected session range %q", report.SessionRange)
	}
}

func TestAggregateDay_FutureDayAlwaysPending(t *testing.T) {
	t.Parallel()

	future := testNow.AddDate(0, 0, 2) // 金曜、勤務日
	// 異常データ: 未来の日に記録されたエントリーがあっても PENDING のまま。
	entries := []*Entry{
		{ID: "e-1", OwnerID: "u-1", Start: at(future, 9, 0), End: timePtr(at(future, 17, 0))},
	}

	report := AggregateDay(future, entries, nil, weekMF, testNow)
	if report.Status != StatusPending {
		t.Fatalf("future work day must be PENDING, got %s", report.Status)
	}
}

func TestAggregateDay_OpenSessionToday(t *testing.T) {
	t.Parallel()

	day := startOfDay(testNow)
	entries := []*Entry{
		{ID: "e-1", OwnerID: "u-1", Start: at(day, 9, 0)}, // 計測中
	}

	report := AggregateDay(day, entries, nil, weekMF, testNow)
	if report.TotalHours != 6.0 {
		t.Fatalf("open session today should count to now (6h), got %f", report.TotalHours)
	}
	if report.SessionRange != "09:00 -" {
		t.Fatalf("unexpected session range %q", report.SessionRange)
	}
}

func TestAggregateDay_StaleOpenSessionExcluded(t *testing.T) {
	t.Parallel()

	pastDay := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC) // 月曜
	entries := []*Entry{
		{ID: "e-1", OwnerID: "u-1", Start: at(pastDay, 9, 0)}, // 閉じ忘れ
		{ID: "e-2", OwnerID: "u-1", Start: at(pastDay, 13, 0), End: timePtr(at(pastDay, 15, 0))},
	}

	report := AggregateDay(pastDay, entries, nil, weekMF, testNow)
	if report.TotalHours != 2.0 {
		t.Fatalf("stale open session must not contribute, got %f", report.TotalHours)
	}
	if report.NetHours != 2.0 {
		t.Fatalf("expected net 2.0, got %f", report.NetHours)
	}
}

func TestAggregateDay_MetDay(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	entries := []*Entry{
		{ID: "e-1", OwnerID: "u-1", Start: at(day, 8, 0), End: timePtr(at(day, 12, 0))},
		{ID: "e-2", OwnerID: "u-1", Start: at(day, 13, 0), End: timePtr(at(day, 17, 30)), Manual: true},
	}

	report := AggregateDay(day, entries, nil, weekMF, testNow)
	if report.NetHours != 8.5 {
		t.Fatalf("expected net 8.5, got %f", report.NetHours)
	}
	if report.Status != StatusMet {
		t.Fatalf("expected MET, got %s", report.Status)
	}
	if !report.HasManualEntries {
		t.Fatalf("expected manual entry flag")
	}
	if report.SessionRange != "08:00 - 17:30" {
		t.Fatalf("unexpected session range %q", report.SessionRange)
	}
}

func TestAggregateDay_MarkerSelection(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	markers := []*Marker{
		{ID: "m-1", OwnerID: "u-1", Start: at(day, 8, 0), End: timePtr(at(day, 9, 0))},
		{ID: "m-2", OwnerID: "u-1", Start: at(day, 9, 30)}, // 開いたまま
		{ID: "m-3", OwnerID: "u-1", Start: at(day, 7, 0), End: timePtr(at(day, 7, 30))},
	}

	report := AggregateDay(day, nil, markers, weekMF, testNow)
	if report.WorkdayStart == nil || !report.WorkdayStart.Equal(at(day, 9, 30)) {
		t.Fatalf("open marker must be authoritative, got %+v", report.WorkdayStart)
	}
	if report.WorkdayEnd != nil {
		t.Fatalf("open marker has no end, got %+v", report.WorkdayEnd)
	}
}

func TestAggregateDay_MostRecentMarkerWhenAllClosed(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	markers := []*Marker{
		{ID: "m-1", OwnerID: "u-1", Start: at(day, 8, 0), End: timePtr(at(day, 12, 0))},
		{ID: "m-2", OwnerID: "u-1", Start: at(day, 13, 0), End: timePtr(at(day, 17, 0))},
	}

	report := AggregateDay(day, nil, markers, weekMF, testNow)
	if report.WorkdayStart == nil || !report.WorkdayStart.Equal(at(day, 13, 0)) {
		t.Fatalf("expected most recently started marker, got %+v", report.WorkdayStart)
	}
	if report.WorkdayEnd == nil || !report.WorkdayEnd.Equal(at(day, 17, 0)) {
		t.Fatalf("expected marker end 17:00, got %+v", report.WorkdayEnd)
	}
}

func TestAggregateDay_Idempotent(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	entries := []*Entry{
		{ID: "e-1", OwnerID: "u-1", Start: at(day, 9, 0), End: timePtr(at(day, 17, 0)),
			Breaks: []Break{{ID: "b-1", Start: at(day, 12, 0), End: timePtr(at(day, 13, 0))}}},
	}
	markers := []*Marker{
		{ID: "m-1", OwnerID: "u-1", Start: at(day, 8, 55), End: timePtr(at(day, 17, 5))},
	}

	first := AggregateDay(day, entries, markers, weekMF, testNow)
	second := AggregateDay(day, entries, markers, weekMF, testNow)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("aggregation must be idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAggregateDay_NegativeSpansClamped(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	entries := []*Entry{
		// 休憩がセッションより長い壊れたデータ。
		{ID: "e-1", OwnerID: "u-1", Start: at(day, 9, 0), End: timePtr(at(day, 10, 0)),
			Breaks: []Break{{ID: "b-1", Start: at(day, 9, 0), End: timePtr(at(day, 12, 0))}}},
	}

	report := AggregateDay(day, entries, nil, weekMF, testNow)
	if report.NetHours != 0 {
		t.Fatalf("net hours must never go negative, got %f", report.NetHours)
	}
	if report.TotalHours != 1.0 {
		t.Fatalf("expected total 1.0, got %f", report.TotalHours)
	}
}

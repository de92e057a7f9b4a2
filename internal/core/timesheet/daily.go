package timesheet

import (
	"fmt"
	"sort"
	"time"
)

const clockLayout = "15:04"

// AggregateDay は 1 暦日分の生レコードを DailyReport へ集約します。
// 同一入力に対して常に同一の結果を返す純関数です。
//
// 計測中のセッションは date が now と同じ日である場合に限り now までの
// 経過時間として計上します。過去の日に開いたまま残っているセッションは
// 履歴合計を壊さないよう集計から除外します。
func AggregateDay(date time.Time, entries []*Entry, markers []*Marker, target TargetModel, now time.Time) DailyReport {
	day := startOfDay(date)
	targetHours := target.HoursFor(day.Weekday())

	report := DailyReport{
		Date:      day,
		Weekday:   day.Weekday().String(),
		IsWorkDay: targetHours > 0,
	}

	if m := authoritativeMarker(day, markers); m != nil {
		start := m.Start
		report.WorkdayStart = &start
		if m.End != nil {
			end := *m.End
			report.WorkdayEnd = &end
		}
	}

	dayEntries := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		if sameDay(e.Start, day) {
			dayEntries = append(dayEntries, e)
		}
	}
	sort.SliceStable(dayEntries, func(i, j int) bool {
		return dayEntries[i].Start.Before(dayEntries[j].Start)
	})

	var total, net float64
	var rangeStart, rangeEnd *time.Time
	running := false
	for _, e := range dayEntries {
		if e.Manual {
			report.HasManualEntries = true
		}

		if rangeStart == nil {
			start := e.Start
			rangeStart = &start
		}

		end := e.End
		if end == nil {
			if !sameDay(now, day) {
				continue
			}
			running = true
			end = &now
		}

		span := end.Sub(e.Start).Hours()
		if span < 0 {
			span = 0
		}

		var pauses float64
		for _, b := range e.Breaks {
			breakEnd := b.End
			if breakEnd == nil {
				breakEnd = &now
			}
			if d := breakEnd.Sub(b.Start).Hours(); d > 0 {
				pauses += d
			}
		}

		sessionNet := span - pauses
		if sessionNet < 0 {
			sessionNet = 0
		}

		total += span
		net += sessionNet

		if e.End != nil && (rangeEnd == nil || e.End.After(*rangeEnd)) {
			rangeEnd = e.End
		}
	}

	report.TotalHours = total
	report.NetHours = net
	report.SessionRange = formatSessionRange(rangeStart, rangeEnd, running)

	switch {
	case !report.IsWorkDay:
		report.Status = StatusOff
	case day.After(startOfDay(now)):
		report.Status = StatusPending
	case net >= targetHours:
		report.Status = StatusMet
	default:
		report.Status = StatusMissed
	}

	return report
}

// authoritativeMarker は指定日の正のマーカーを選択します。終了していない
// マーカーがあればそれを、なければ最も遅く開始されたものを返します。
func authoritativeMarker(day time.Time, markers []*Marker) *Marker {
	var open, latest *Marker
	for _, m := range markers {
		if !sameDay(m.Start, day) {
			continue
		}
		if m.End == nil {
			if open == nil || m.Start.After(open.Start) {
				open = m
			}
		}
		if latest == nil || m.Start.After(latest.Start) {
			latest = m
		}
	}
	if open != nil {
		return open
	}
	return latest
}

func formatSessionRange(start, end *time.Time, running bool) string {
	switch {
	case start == nil:
		return ""
	case running:
		return fmt.Sprintf("%s -", start.UTC().Format(clockLayout))
	case end == nil:
		return start.UTC().Format(clockLayout)
	default:
		return fmt.Sprintf("%s - %s", start.UTC().Format(clockLayout), end.UTC().Format(clockLayout))
	}
}

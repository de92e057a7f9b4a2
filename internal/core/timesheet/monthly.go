package timesheet

import "time"

// BuildMonthlyReport は anchor の属する月について日次レポートを日付順に
// 生成し、月次合計を付けて返します。
//
// 範囲の下限はアカウント作成日で、上限は月末でクランプされます。
// 下限が上限を超える場合（アカウント作成前の月など）は失敗ではなく
// 空のレポートを返します。未来の日はリストに PENDING として現れますが、
// TotalTargetHours には now 以前の勤務日の目標だけが加算されます。
func BuildMonthlyReport(anchor time.Time, entries []*Entry, markers []*Marker, target TargetModel, accountCreatedAt, now time.Time) MonthlyReport {
	from := startOfMonth(anchor)
	if created := startOfDay(accountCreatedAt); created.After(from) {
		from = created
	}
	to := endOfMonth(anchor)

	if from.After(to) {
		return MonthlyReport{Days: []DailyReport{}}
	}

	today := startOfDay(now)
	report := MonthlyReport{Days: make([]DailyReport, 0, 31)}
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		daily := AggregateDay(day, entries, markers, target, now)
		report.Days = append(report.Days, daily)
		report.TotalWorkedHours += daily.NetHours

		if daily.IsWorkDay && !day.After(today) {
			report.TotalTargetHours += target.HoursFor(day.Weekday())
		}
	}

	return report
}

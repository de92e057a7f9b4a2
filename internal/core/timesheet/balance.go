package timesheet

import "time"

// BalanceAsOf は基準時点 now における実績と目標の差分を計算します。
//
// 実績時間は日次レポートとは異なり勤務日マーカーから直接導出します。
// 日次レポートが「その日に何が起きたか」に答えるのに対し、ここでは
// 「今までにどれだけ経過したか」に答えるためで、2 つの計算を統合すると
// 既存の合計値が変わってしまいます。各暦日につき正のマーカー 1 件のみが
// 寄与し、終了していないマーカーは当日に限り now まで計上します。
func BalanceAsOf(now time.Time, markers []*Marker, target TargetModel, accountCreatedAt time.Time) Balance {
	monthStart := startOfMonth(now)
	today := startOfDay(now)

	var worked, todayWorked float64
	for day := monthStart; !day.After(today); day = day.AddDate(0, 0, 1) {
		m := authoritativeMarker(day, markers)
		if m == nil || m.Start.After(now) {
			continue
		}

		var end time.Time
		switch {
		case m.End != nil:
			end = *m.End
		case day.Equal(today):
			end = now
		default:
			// 過去の日に開いたまま残ったマーカーは計上しない。
			continue
		}

		hours := end.Sub(m.Start).Hours()
		if hours <= 0 {
			continue
		}
		worked += hours
		if day.Equal(today) {
			todayWorked += hours
		}
	}

	targetFrom := monthStart
	if created := startOfDay(accountCreatedAt); created.After(targetFrom) {
		targetFrom = created
	}

	var targetHours float64
	daysWorked := 0
	for day := targetFrom; !day.After(today); day = day.AddDate(0, 0, 1) {
		if h := target.HoursFor(day.Weekday()); h > 0 {
			targetHours += h
			daysWorked++
		}
	}

	balance := worked - targetHours
	result := Balance{
		WorkedHours: worked,
		TargetHours: targetHours,
		Balance:     balance,
		DaysWorked:  daysWorked,
		TodayWorked: todayWorked,
	}
	if balance > 0 {
		result.Overtime = balance
	} else if balance < 0 {
		result.Deficit = -balance
	}

	return result
}

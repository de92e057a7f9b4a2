package timesheet

import (
	"time"

	"github.com/chronoplane/chronoplane-backend/internal/core/hierarchy"
)

// TargetModel は曜日ごとの目標時間を解決します。WeeklyHours が設定されて
// いる場合はそちらが優先され、未設定の場合は WorkDays + DailyTarget の
// 旧モデルにフォールバックします。月次レポートとバランス計算は必ず
// 同一のモデルを共有します。
type TargetModel struct {
	DailyTarget float64
	WorkDays    []int
	WeeklyHours map[int]float64
}

// HoursFor は指定した曜日の目標時間を返します。勤務日でない曜日は 0 です。
func (m TargetModel) HoursFor(day time.Weekday) float64 {
	if len(m.WeeklyHours) > 0 {
		return m.WeeklyHours[int(day)]
	}
	for _, d := range m.WorkDays {
		if d == int(day) {
			return m.DailyTarget
		}
	}
	return 0
}

// TargetModelFor はユーザーレコードから目標時間モデルを構築します。
func TargetModelFor(u *hierarchy.User) TargetModel {
	if u == nil {
		return TargetModel{}
	}
	return TargetModel{
		DailyTarget: u.DailyTarget,
		WorkDays:    append([]int(nil), u.WorkDays...),
		WeeklyHours: cloneWeeklyHours(u.WeeklyHours),
	}
}

func cloneWeeklyHours(src map[int]float64) map[int]float64 {
	if len(src) == 0 {
		return nil
	}
	clone := make(map[int]float64, len(src))
	for k, v := range src {
		clone[k] = v
	}
	return clone
}

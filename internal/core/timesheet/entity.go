package timesheet

import "time"

// Break はセッション内の休憩区間です。End が nil の場合は休憩中を表します。
type Break struct {
	ID    string
	Start time.Time
	End   *time.Time
}

// Entry は 1 回の作業セッションです。End が nil の場合は計測中を表します。
type Entry struct {
	ID      string
	OwnerID string
	Start   time.Time
	End     *time.Time
	Manual  bool
	Breaks  []Break
}

// Marker は「勤務開始/終了」ボタンで生成される勤務日レコードです。
// 個々の作業セッションとは独立しており、End が nil の場合はその日が
// まだ閉じられていないことを表します。
type Marker struct {
	ID      string
	OwnerID string
	Start   time.Time
	End     *time.Time
}

// DayStatus は 1 日の達成状況です。
type DayStatus string

const (
	StatusMet     DayStatus = "MET"
	StatusMissed  DayStatus = "MISSED"
	StatusOff     DayStatus = "OFF"
	StatusPending DayStatus = "PENDING"
)

// DailyReport は 1 暦日分の集計結果です。
type DailyReport struct {
	Date             time.Time
	Weekday          string
	IsWorkDay        bool
	WorkdayStart     *time.Time
	WorkdayEnd       *time.Time
	TotalHours       float64
	NetHours         float64
	Status           DayStatus
	HasManualEntries bool
	SessionRange     string
}

// MonthlyReport はクランプ済みの日付範囲に対する日次レポートの列と
// 月次合計です。TotalTargetHours には当日以前の勤務日の目標時間のみが
// 含まれます。
type MonthlyReport struct {
	Days             []DailyReport
	TotalWorkedHours float64
	TotalTargetHours float64
}

// Balance は基準時点における実績と目標の差分スナップショットです。
// Overtime と Deficit は表示用の非負派生値で、常にどちらか一方のみが
// 正になります。
type Balance struct {
	WorkedHours float64
	TargetHours float64
	Balance     float64
	Overtime    float64
	Deficit     float64
	DaysWorked  int
	TodayWorked float64
}

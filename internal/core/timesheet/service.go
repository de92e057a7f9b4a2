package timesheet

import (
	"context"
	"strings"
	"time"

	"github.com/chronoplane/chronoplane-backend/internal/core/hierarchy"
	"github.com/google/uuid"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// TargetDefaults はユーザーレコードに目標設定が無い場合に適用される
// プロジェクト既定値です。
type TargetDefaults struct {
	DailyTarget float64
	WorkDays    []int
}

// Service は時間集計に関するユースケースをまとめます。
type Service struct {
	directory hierarchy.Repository
	ledger    Ledger
	clock     Clock
	tx        TransactionManager
	defaults  TargetDefaults
}

// UseCase は時間集計ユースケースの公開インターフェースです。
type UseCase interface {
	GetDailyReport(ctx context.Context, in GetDailyReportInput) (*DailyReport, error)
	GetMonthlyReport(ctx context.Context, in GetMonthlyReportInput) (*MonthlyReport, error)
	GetBalance(ctx context.Context, in GetBalanceInput) (*Balance, error)
	StartWorkday(ctx context.Context, in LifecycleInput) (*Marker, error)
	EndWorkday(ctx context.Context, in LifecycleInput) (*Marker, error)
	StartEntry(ctx context.Context, in StartEntryInput) (*Entry, error)
	StopEntry(ctx context.Context, in LifecycleInput) (*Entry, error)
	StartBreak(ctx context.Context, in LifecycleInput) (*Entry, error)
	EndBreak(ctx context.Context, in LifecycleInput) (*Entry, error)
}

// NewService は Service を生成します。
func NewService(directory hierarchy.Repository, ledger Ledger, clock Clock, tx TransactionManager, defaults TargetDefaults) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{directory: directory, ledger: ledger, clock: clock, tx: tx, defaults: defaults}
}

// GetDailyReportInput は日次レポート取得時の入力です。
type GetDailyReportInput struct {
	RequesterID string
	ProjectID   string
	UserID      string
	Date        time.Time
}

// GetMonthlyReportInput は月次レポート取得時の入力です。Month はその月に
// 属する任意の時刻で構いません。
type GetMonthlyReportInput struct {
	RequesterID string
	ProjectID   string
	UserID      string
	Month       time.Time
}

// GetBalanceInput はバランス取得時の入力です。
type GetBalanceInput struct {
	RequesterID string
	ProjectID   string
	UserID      string
}

// LifecycleInput は勤務日・セッション操作の入力です。
type LifecycleInput struct {
	UserID string
}

// StartEntryInput はセッション開始時の入力です。
type StartEntryInput struct {
	UserID string
	Manual bool
}

// GetDailyReport は指定した 1 日分の集計を返します。
func (s *Service) GetDailyReport(ctx context.Context, in GetDailyReportInput) (*DailyReport, error) {
	var report *DailyReport
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		target, model, err := s.authorize(txCtx, in.RequesterID, in.ProjectID, in.UserID)
		if err != nil {
			return err
		}

		day := startOfDay(in.Date)
		entries, markers, err := s.fetchLedger(txCtx, target.ID, day, day.AddDate(0, 0, 1))
		if err != nil {
			return err
		}

		daily := AggregateDay(day, entries, markers, model, s.clock.Now())
		report = &daily
		return nil
	}); err != nil {
		return nil, err
	}

	return report, nil
}

// GetMonthlyReport は月次レポートを返します。範囲はアカウント作成日と
// 月末でクランプされます。
func (s *Service) GetMonthlyReport(ctx context.Context, in GetMonthlyReportInput) (*MonthlyReport, error) {
	if in.Month.IsZero() {
		return nil, ErrInvalidMonth
	}

	var report *MonthlyReport
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		target, model, err := s.authorize(txCtx, in.RequesterID, in.ProjectID, in.UserID)
		if err != nil {
			return err
		}

		from := startOfMonth(in.Month)
		to := endOfMonth(in.Month).AddDate(0, 0, 1)
		entries, markers, err := s.fetchLedger(txCtx, target.ID, from, to)
		if err != nil {
			return err
		}

		monthly := BuildMonthlyReport(in.Month, entries, markers, model, target.CreatedAt, s.clock.Now())
		report = &monthly
		return nil
	}); err != nil {
		return nil, err
	}

	return report, nil
}

// GetBalance は今月の実績と目標の差分スナップショットを返します。
func (s *Service) GetBalance(ctx context.Context, in GetBalanceInput) (*Balance, error) {
	var balance *Balance
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		target, model, err := s.authorize(txCtx, in.RequesterID, in.ProjectID, in.UserID)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		markers, err := s.ledger.ListMarkers(txCtx, target.ID, startOfMonth(now), startOfDay(now).AddDate(0, 0, 1))
		if err != nil {
			return err
		}

		result := BalanceAsOf(now, markers, model, target.CreatedAt)
		balance = &result
		return nil
	}); err != nil {
		return nil, err
	}

	return balance, nil
}

// StartWorkday は勤務日マーカーを開きます。既に開いているマーカーが
// ある場合は ErrWorkdayAlreadyOpen を返します。
func (s *Service) StartWorkday(ctx context.Context, in LifecycleInput) (*Marker, error) {
	ownerID, err := normalizeOwnerID(in.UserID)
	if err != nil {
		return nil, err
	}

	var created *Marker
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		open, err := s.ledger.FindOpenMarker(txCtx, ownerID)
		if err != nil {
			return err
		}
		if open != nil {
			return ErrWorkdayAlreadyOpen
		}

		result, err := s.ledger.CreateMarker(txCtx, &Marker{
			ID:      uuid.NewString(),
			OwnerID: ownerID,
			Start:   s.clock.Now(),
		})
		if err != nil {
			return err
		}
		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// EndWorkday は開いている勤務日マーカーを閉じます。
func (s *Service) EndWorkday(ctx context.Context, in LifecycleInput) (*Marker, error) {
	ownerID, err := normalizeOwnerID(in.UserID)
	if err != nil {
		return nil, err
	}

	var closed *Marker
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		open, err := s.ledger.FindOpenMarker(txCtx, ownerID)
		if err != nil {
			return err
		}
		if open == nil {
			return ErrNoOpenWorkday
		}

		result, err := s.ledger.CloseMarker(txCtx, open.ID, s.clock.Now())
		if err != nil {
			return err
		}
		closed = result
		return nil
	}); err != nil {
		return nil, err
	}

	return closed, nil
}

// StartEntry は作業セッションを開始します。
func (s *Service) StartEntry(ctx context.Context, in StartEntryInput) (*Entry, error) {
	ownerID, err := normalizeOwnerID(in.UserID)
	if err != nil {
		return nil, err
	}

	var created *Entry
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		open, err := s.ledger.FindOpenEntry(txCtx, ownerID)
		if err != nil {
			return err
		}
		if open != nil {
			return ErrEntryAlreadyOpen
		}

		result, err := s.ledger.CreateEntry(txCtx, &Entry{
			ID:      uuid.NewString(),
			OwnerID: ownerID,
			Start:   s.clock.Now(),
			Manual:  in.Manual,
		})
		if err != nil {
			return err
		}
		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// StopEntry は計測中のセッションを終了します。休憩中であれば休憩も
// 同時に閉じます。
func (s *Service) StopEntry(ctx context.Context, in LifecycleInput) (*Entry, error) {
	ownerID, err := normalizeOwnerID(in.UserID)
	if err != nil {
		return nil, err
	}

	var stopped *Entry
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		open, err := s.ledger.FindOpenEntry(txCtx, ownerID)
		if err != nil {
			return err
		}
		if open == nil {
			return ErrNoOpenEntry
		}

		now := s.clock.Now()
		if b := openBreak(open); b != nil {
			if err := s.ledger.CloseBreak(txCtx, b.ID, now); err != nil {
				return err
			}
		}

		result, err := s.ledger.CloseEntry(txCtx, open.ID, now)
		if err != nil {
			return err
		}
		stopped = result
		return nil
	}); err != nil {
		return nil, err
	}

	return stopped, nil
}

// StartBreak は計測中のセッションに休憩を追加します。
func (s *Service) StartBreak(ctx context.Context, in LifecycleInput) (*Entry, error) {
	ownerID, err := normalizeOwnerID(in.UserID)
	if err != nil {
		return nil, err
	}

	var updated *Entry
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		open, err := s.ledger.FindOpenEntry(txCtx, ownerID)
		if err != nil {
			return err
		}
		if open == nil {
			return ErrNoOpenEntry
		}
		if openBreak(open) != nil {
			return ErrBreakAlreadyOpen
		}

		result, err := s.ledger.AddBreak(txCtx, open.ID, Break{
			ID:    uuid.NewString(),
			Start: s.clock.Now(),
		})
		if err != nil {
			return err
		}
		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// EndBreak は休憩を終了します。
func (s *Service) EndBreak(ctx context.Context, in LifecycleInput) (*Entry, error) {
	ownerID, err := normalizeOwnerID(in.UserID)
	if err != nil {
		return nil, err
	}

	var updated *Entry
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		open, err := s.ledger.FindOpenEntry(txCtx, ownerID)
		if err != nil {
			return err
		}
		if open == nil {
			return ErrNoOpenEntry
		}

		b := openBreak(open)
		if b == nil {
			return ErrNoOpenBreak
		}

		if err := s.ledger.CloseBreak(txCtx, b.ID, s.clock.Now()); err != nil {
			return err
		}

		refreshed, err := s.ledger.FindOpenEntry(txCtx, ownerID)
		if err != nil {
			return err
		}
		updated = refreshed
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// authorize はスコープを検証し、対象ユーザーとその目標時間モデルを
// 返します。スコープ外の対象には存在を漏らさず ErrForbidden を返します。
func (s *Service) authorize(ctx context.Context, requesterID, projectID, targetID string) (*hierarchy.User, TargetModel, error) {
	requesterID = strings.TrimSpace(requesterID)
	targetID = strings.TrimSpace(targetID)
	if requesterID == "" || targetID == "" {
		return nil, TargetModel{}, ErrInvalidOwnerID
	}

	users, err := s.directory.ListByProject(ctx, strings.TrimSpace(projectID))
	if err != nil {
		return nil, TargetModel{}, err
	}

	var requester, target *hierarchy.User
	for _, u := range users {
		if u.ID == requesterID {
			requester = u
		}
		if u.ID == targetID {
			target = u
		}
	}
	if requester == nil {
		return nil, TargetModel{}, hierarchy.ErrUserNotFound
	}
	if _, ok := hierarchy.VisibleUserIDs(requester, users)[targetID]; !ok || target == nil {
		return nil, TargetModel{}, hierarchy.ErrForbidden
	}

	return target, s.targetModelFor(target), nil
}

func (s *Service) targetModelFor(u *hierarchy.User) TargetModel {
	model := TargetModelFor(u)
	if len(model.WeeklyHours) > 0 {
		return model
	}
	if model.DailyTarget <= 0 {
		model.DailyTarget = s.defaults.DailyTarget
	}
	if len(model.WorkDays) == 0 {
		model.WorkDays = append([]int(nil), s.defaults.WorkDays...)
	}
	return model
}

func (s *Service) fetchLedger(ctx context.Context, ownerID string, from, to time.Time) ([]*Entry, []*Marker, error) {
	entries, err := s.ledger.ListEntries(ctx, ownerID, from, to)
	if err != nil {
		return nil, nil, err
	}
	markers, err := s.ledger.ListMarkers(ctx, ownerID, from, to)
	if err != nil {
		return nil, nil, err
	}
	return entries, markers, nil
}

func normalizeOwnerID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidOwnerID
	}
	return trimmed, nil
}

func openBreak(e *Entry) *Break {
	for i := range e.Breaks {
		if e.Breaks[i].End == nil {
			return &e.Breaks[i]
		}
	}
	return nil
}

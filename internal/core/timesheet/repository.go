package timesheet

import (
	"context"
	"time"
)

// Ledger は時間記録の永続化の抽象です。FindOpenMarker / FindOpenEntry は
// 該当レコードが存在しない場合にエラーではなく nil を返します。
type Ledger interface {
	// ListEntries は started_at が [from, to) に入るセッションを
	// 休憩込みで開始時刻順に返します。
	ListEntries(ctx context.Context, ownerID string, from, to time.Time) ([]*Entry, error)
	// ListMarkers は started_at が [from, to) に入る勤務日マーカーを
	// 開始時刻順に返します。
	ListMarkers(ctx context.Context, ownerID string, from, to time.Time) ([]*Marker, error)

	FindOpenMarker(ctx context.Context, ownerID string) (*Marker, error)
	CreateMarker(ctx context.Context, m *Marker) (*Marker, error)
	CloseMarker(ctx context.Context, id string, end time.Time) (*Marker, error)

	FindOpenEntry(ctx context.Context, ownerID string) (*Entry, error)
	CreateEntry(ctx context.Context, e *Entry) (*Entry, error)
	CloseEntry(ctx context.Context, id string, end time.Time) (*Entry, error)
	AddBreak(ctx context.Context, entryID string, b Break) (*Entry, error)
	CloseBreak(ctx context.Context, breakID string, end time.Time) error
}

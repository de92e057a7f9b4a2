package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/chronoplane/chronoplane-backend/internal/core/timesheet"
	pgdb "github.com/chronoplane/chronoplane-backend/internal/platform/db/postgres"
	"github.com/jackc/pgx/v5"
)

const entryColumns = `id, owner_id, started_at, ended_at, is_manual`
const markerColumns = `id, owner_id, started_at, ended_at`
const breakColumns = `id, entry_id, started_at, ended_at`

// LedgerRepository は PostgreSQL を利用した時間記録台帳の実装です。
type LedgerRepository struct {
	pool pgdb.Querier
}

// NewLedgerRepository は LedgerRepository を生成します。
func NewLedgerRepository(pool pgdb.Querier) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// ListEntries は範囲内のセッションを休憩込みで開始時刻順に返します。
func (r *LedgerRepository) ListEntries(ctx context.Context, ownerID string, from, to time.Time) ([]*timesheet.Entry, error) {
	exec := pgdb.QuerierFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+entryColumns+`
          FROM time_entries
         WHERE owner_id = $1
           AND started_at >= $2
           AND started_at < $3
         ORDER BY started_at ASC, id ASC
    `, ownerID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*timesheet.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachBreaks(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListMarkers は範囲内の勤務日マーカーを開始時刻順に返します。
func (r *LedgerRepository) ListMarkers(ctx context.Context, ownerID string, from, to time.Time) ([]*timesheet.Marker, error) {
	exec := pgdb.QuerierFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+markerColumns+`
          FROM workday_markers
         WHERE owner_id = $1
           AND started_at >= $2
           AND started_at < $3
         ORDER BY started_at ASC, id ASC
    `, ownerID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	markers := make([]*timesheet.Marker, 0)
	for rows.Next() {
		m, err := scanMarker(rows)
		if err != nil {
			return nil, err
		}
		markers = append(markers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return markers, nil
}

// FindOpenMarker は終了していない勤務日マーカーを返します。存在しない
// 場合は nil を返します。
func (r *LedgerRepository) FindOpenMarker(ctx context.Context, ownerID string) (*timesheet.Marker, error) {
	exec := pgdb.QuerierFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+markerColumns+`
          FROM workday_markers
         WHERE owner_id = $1 AND ended_at IS NULL
         ORDER BY started_at DESC
         LIMIT 1
    `, ownerID)

	m, err := scanMarker(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// CreateMarker は勤務日マーカーを作成します。
func (r *LedgerRepository) CreateMarker(ctx context.Context, m *timesheet.Marker) (*timesheet.Marker, error) {
	exec := pgdb.QuerierFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO workday_markers (id, owner_id, started_at, ended_at)
        VALUES ($1, $2, $3, $4)
        RETURNING `+markerColumns+`
    `, m.ID, m.OwnerID, m.Start, nullableTime(m.End))

	created, err := scanMarker(row)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CloseMarker は勤務日マーカーを閉じます。
func (r *LedgerRepository) CloseMarker(ctx context.Context, id string, end time.Time) (*timesheet.Marker, error) {
	exec := pgdb.QuerierFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE workday_markers
           SET ended_at = $1
         WHERE id = $2
        RETURNING `+markerColumns+`
    `, end, id)

	closed, err := scanMarker(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, timesheet.ErrMarkerNotFound
		}
		return nil, err
	}
	return closed, nil
}

// FindOpenEntry は計測中のセッションを休憩込みで返します。存在しない
// 場合は nil を返します。
func (r *LedgerRepository) FindOpenEntry(ctx context.Context, ownerID string) (*timesheet.Entry, error) {
	exec := pgdb.QuerierFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+entryColumns+`
          FROM time_entries
         WHERE owner_id = $1 AND ended_at IS NULL
         ORDER BY started_at DESC
         LIMIT 1
    `, ownerID)

	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.attachBreaks(ctx, []*timesheet.Entry{e}); err != nil {
		return nil, err
	}
	return e, nil
}

// CreateEntry はセッションを作成します。
func (r *LedgerRepository) CreateEntry(ctx context.Context, e *timesheet.Entry) (*timesheet.Entry, error) {
	exec := pgdb.QuerierFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO time_entries (id, owner_id, started_at, ended_at, is_manual)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING `+entryColumns+`
    `, e.ID, e.OwnerID, e.Start, nullableTime(e.End), e.Manual)

	created, err := scanEntry(row)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CloseEntry はセッションを終了し、休憩込みで返します。
func (r *LedgerRepository) CloseEntry(ctx context.Context, id string, end time.Time) (*timesheet.Entry, error) {
	exec := pgdb.QuerierFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE time_entries
           SET ended_at = $1
         WHERE id = $2
        RETURNING `+entryColumns+`
    `, end, id)

	closed, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, timesheet.ErrEntryNotFound
		}
		return nil, err
	}

	if err := r.attachBreaks(ctx, []*timesheet.Entry{closed}); err != nil {
		return nil, err
	}
	return closed, nil
}

// AddBreak はセッションに休憩を追加し、更新後のセッションを返します。
func (r *LedgerRepository) AddBreak(ctx context.Context, entryID string, b timesheet.Break) (*timesheet.Entry, error) {
	exec := pgdb.QuerierFromContext(ctx, r.pool)
	if _, err := exec.Exec(ctx, `
        INSERT INTO breaks (id, entry_id, started_at, ended_at)
        VALUES ($1, $2, $3, $4)
    `, b.ID, entryID, b.Start, nullableTime(b.End)); err != nil {
		return nil, err
	}

	return r.findEntryByID(ctx, entryID)
}

// CloseBreak は休憩を終了します。
func (r *LedgerRepository) CloseBreak(ctx context.Context, breakID string, end time.Time) error {
	exec := pgdb.QuerierFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `UPDATE breaks SET ended_at = $1 WHERE id = $2`, end, breakID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrBreakNotFound
	}
	return nil
}

func (r *LedgerRepository) findEntryByID(ctx context.Context, id string) (*timesheet.Entry, error) {
	exec := pgdb.QuerierFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+entryColumns+`
          FROM time_entries
         WHERE id = $1
         LIMIT 1
    `, id)

	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, timesheet.ErrEntryNotFound
		}
		return nil, err
	}

	if err := r.attachBreaks(ctx, []*timesheet.Entry{e}); err != nil {
		return nil, err
	}
	return e, nil
}

// attachBreaks はセッション集合に属する休憩を 1 クエリで読み込んで
// 各セッションへ割り当てます。
func (r *LedgerRepository) attachBreaks(ctx context.Context, entries []*timesheet.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	ids := make([]string, 0, len(entries))
	byID := make(map[string]*timesheet.Entry, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
		byID[e.ID] = e
	}

	exec := pgdb.QuerierFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+breakColumns+`
          FROM breaks
         WHERE entry_id = ANY($1)
         ORDER BY started_at ASC, id ASC
    `, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id      string
			entryID string
			started time.Time
			ended   sql.NullTime
		)
		if err := rows.Scan(&id, &entryID, &started, &ended); err != nil {
			return err
		}

		b := timesheet.Break{ID: id, Start: started}
		if ended.Valid {
			end := ended.Time
			b.End = &end
		}
		if e, ok := byID[entryID]; ok {
			e.Breaks = append(e.Breaks, b)
		}
	}

	return rows.Err()
}

func scanEntry(row pgx.Row) (*timesheet.Entry, error) {
	var (
		id       string
		ownerID  string
		started  time.Time
		ended    sql.NullTime
		isManual bool
	)

	if err := row.Scan(&id, &ownerID, &started, &ended, &isManual); err != nil {
		return nil, err
	}

	e := &timesheet.Entry{ID: id, OwnerID: ownerID, Start: started, Manual: isManual}
	if ended.Valid {
		end := ended.Time
		e.End = &end
	}
	return e, nil
}

func scanMarker(row pgx.Row) (*timesheet.Marker, error) {
	var (
		id      string
		ownerID string
		started time.Time
		ended   sql.NullTime
	)

	if err := row.Scan(&id, &ownerID, &started, &ended); err != nil {
		return nil, err
	}

	m := &timesheet.Marker{ID: id, OwnerID: ownerID, Start: started}
	if ended.Valid {
		end := ended.Time
		m.End = &end
	}
	return m, nil
}

func nullableTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return *value
}

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/chronoplane/chronoplane-backend/internal/core/hierarchy"
	pgdb "github.com/chronoplane/chronoplane-backend/internal/platform/db/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	foreignKeyViolationCode = "23503"
)

const userColumns = `id, project_id, manager_id, role, daily_target, work_days, weekly_hours, work_mode, created_at`

// UserRepository は PostgreSQL を利用したユーザーディレクトリの実装です。
type UserRepository struct {
	pool pgdb.Querier
}

// NewUserRepository は UserRepository を生成します。
func NewUserRepository(pool pgdb.Querier) *UserRepository {
	return &UserRepository{pool: pool}
}

// ListByProject はプロジェクト配下の全ユーザーを作成順で返します。
func (r *UserRepository) ListByProject(ctx context.Context, projectID string) ([]*hierarchy.User, error) {
	exec := pgdb.QuerierFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+userColumns+`
          FROM users
         WHERE project_id = $1
         ORDER BY created_at ASC, id ASC
    `, projectID)
	if err != nil {
		return nil, translateUserPgError(err)
	}
	defer rows.Close()

	users := make([]*hierarchy.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, translateUserPgError(err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, translateUserPgError(err)
	}

	return users, nil
}

// FindByID はユーザーを取得します。
func (r *UserRepository) FindByID(ctx context.Context, id string) (*hierarchy.User, error) {
	exec := pgdb.QuerierFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+userColumns+`
          FROM users
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanUser(row)
	if err != nil {
		return nil, translateUserPgError(err)
	}
	return found, nil
}

// UpdateManager は検証済みのマネージャー再割り当てを書き込みます。
func (r *UserRepository) UpdateManager(ctx context.Context, userID string, managerID *string) error {
	exec := pgdb.QuerierFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `UPDATE users SET manager_id = $1 WHERE id = $2`, nullableString(managerID), userID)
	if err != nil {
		return translateUserPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return hierarchy.ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*hierarchy.User, error) {
	var (
		id             string
		projectID      string
		managerID      sql.NullString
		role           string
		dailyTarget    float64
		workDays       []int32
		weeklyHoursRaw []byte
		workMode       sql.NullString
		createdAt      time.Time
	)

	if err := row.Scan(
		&id,
		&projectID,
		&managerID,
		&role,
		&dailyTarget,
		&workDays,
		&weeklyHoursRaw,
		&workMode,
		&createdAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, hierarchy.ErrUserNotFound
		}
		return nil, err
	}

	weekly, err := decodeWeeklyHours(weeklyHoursRaw)
	if err != nil {
		return nil, err
	}

	var managerPtr *string
	if managerID.Valid {
		value := managerID.String
		managerPtr = &value
	}

	days := make([]int, 0, len(workDays))
	for _, d := range workDays {
		days = append(days, int(d))
	}

	return &hierarchy.User{
		ID:          id,
		ProjectID:   projectID,
		ManagerID:   managerPtr,
		Role:        hierarchy.Role(role),
		DailyTarget: dailyTarget,
		WorkDays:    days,
		WeeklyHours: weekly,
		WorkMode:    workMode.String,
		CreatedAt:   createdAt,
	}, nil
}

// decodeWeeklyHours は jsonb の曜日→時間マップを復号します。
// キーは "0"〜"6" の文字列として保存されています。
func decodeWeeklyHours(raw []byte) (map[int]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var decoded map[string]float64
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("postgres: decode weekly_hours: %w", err)
	}
	if len(decoded) == 0 {
		return nil, nil
	}

	weekly := make(map[int]float64, len(decoded))
	for key, hours := range decoded {
		day, err := strconv.Atoi(key)
		if err != nil || day < 0 || day > 6 {
			return nil, fmt.Errorf("postgres: weekly_hours key %q is not a weekday", key)
		}
		weekly[day] = hours
	}
	return weekly, nil
}

func translateUserPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return hierarchy.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
		if pgErr.ConstraintName == "users_manager_id_fkey" {
			return hierarchy.ErrManagerNotFound
		}
	}

	return err
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/chronoplane/chronoplane-backend/internal/core/hierarchy"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

type stubRow struct {
	scanFn func(dest ...interface{}) error
}

func (s stubRow) Scan(dest ...interface{}) error {
	return s.scanFn(dest...)
}

func TestScanUser_Success(t *testing.T) {
	t.Parallel()

	createdAt := time.Now().UTC()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		if len(dest) != 9 {
			return errors.New("unexpected dest length")
		}
		*(dest[0].(*string)) = "user-1"
		*(dest[1].(*string)) = "project-1"

		managerDest := dest[2].(*sql.NullString)
		managerDest.String = "user-0"
		managerDest.Valid = true

		*(dest[3].(*string)) = string(hierarchy.RoleManager)
		*(dest[4].(*float64)) = 8
		*(dest[5].(*[]int32)) = []int32{1, 2, 3, 4, 5}
		*(dest[6].(*[]byte)) = []byte(`{"1": 6.5, "3": 4}`)

		modeDest := dest[7].(*sql.NullString)
		modeDest.String = "remote"
		modeDest.Valid = true

		*(dest[8].(*time.Time)) = createdAt
		return nil
	}}

	u, err := scanUser(row)
	if err != nil {
		t.Fatalf("scanUser returned error: %v", err)
	}

	if u.ID != "user-1" || u.ProjectID != "project-1" {
		t.Fatalf("unexpected user %+v", u)
	}
	if u.ManagerID == nil || *u.ManagerID != "user-0" {
		t.Fatalf("expected manager user-0, got %+v", u.ManagerID)
	}
	if len(u.WorkDays) != 5 || u.WorkDays[0] != 1 {
		t.Fatalf("unexpected work days %+v", u.WorkDays)
	}
	if u.WeeklyHours[1] != 6.5 || u.WeeklyHours[3] != 4 {
		t.Fatalf("unexpected weekly hours %+v", u.WeeklyHours)
	}
	if u.WorkMode != "remote" {
		t.Fatalf("expected work mode remote, got %s", u.WorkMode)
	}
}

func TestScanUser_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanUser(row)
	if !errors.Is(err, hierarchy.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDecodeWeeklyHours(t *testing.T) {
	t.Parallel()

	weekly, err := decodeWeeklyHours([]byte(`{"0": 2, "6": 3.5}`))
	if err != nil {
		t.Fatalf("decodeWeeklyHours returned error: %v", err)
	}
	if weekly[0] != 2 || weekly[6] != 3.5 {
		t.Fatalf("unexpected weekly hours %+v", weekly)
	}

	if got, err := decodeWeeklyHours(nil); err != nil || got != nil {
		t.Fatalf("empty payload should decode to nil, got %+v (%v)", got, err)
	}

	if _, err := decodeWeeklyHours([]byte(`{"7": 1}`)); err == nil {
		t.Fatalf("weekday outside 0-6 must be rejected")
	}
	if _, err := decodeWeeklyHours([]byte(`{"mon": 1}`)); err == nil {
		t.Fatalf("non-numeric weekday key must be rejected")
	}
}

func TestTranslateUserPgError(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "users_manager_id_fkey"}
	if !errors.Is(translateUserPgError(pgErr), hierarchy.ErrManagerNotFound) {
		t.Fatalf("expected manager not found mapping")
	}

	otherErr := errors.New("random")
	if translateUserPgError(otherErr) != otherErr {
		t.Fatalf("unexpected translation for generic error")
	}
}

func TestUserRepository_ListByProject(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewUserRepository(mock)

	query := regexp.QuoteMeta(`
        SELECT ` + userColumns + `
          FROM users
         WHERE project_id = $1
         ORDER BY created_at ASC, id ASC
    `)

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{"id", "project_id", "manager_id", "role", "daily_target", "work_days", "weekly_hours", "work_mode", "created_at"}).
		AddRow("user-1", "project-1", sql.NullString{}, string(hierarchy.RoleAdmin), 8.0, []int32{1, 2, 3, 4, 5}, []byte(nil), sql.NullString{String: "office", Valid: true}, now).
		AddRow("user-2", "project-1", sql.NullString{String: "user-1", Valid: true}, string(hierarchy.RoleMember), 8.0, []int32{1, 2, 3}, []byte(`{"1": 4}`), sql.NullString{}, now)

	mock.ExpectQuery(query).
		WithArgs("project-1").
		WillReturnRows(rows)

	users, err := repo.ListByProject(context.Background(), "project-1")
	if err != nil {
		t.Fatalf("ListByProject returned error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].ManagerID != nil {
		t.Fatalf("expected root user without manager")
	}
	if users[1].ManagerID == nil || *users[1].ManagerID != "user-1" {
		t.Fatalf("expected user-2 managed by user-1")
	}
	if users[1].WeeklyHours[1] != 4 {
		t.Fatalf("expected weekly hours decoded, got %+v", users[1].WeeklyHours)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_UpdateManager_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET manager_id = $1 WHERE id = $2`)).
		WithArgs("user-1", "ghost").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	managerID := "user-1"
	if err := repo.UpdateManager(context.Background(), "ghost", &managerID); !errors.Is(err, hierarchy.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_UpdateManager_Clear(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewUserRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET manager_id = $1 WHERE id = $2`)).
		WithArgs(nil, "user-2").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	if err := repo.UpdateManager(context.Background(), "user-2", nil); err != nil {
		t.Fatalf("UpdateManager returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

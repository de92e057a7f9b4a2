package hierarchy

import "time"

// Role はユーザーの権限階層を表します。
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
)

// User は組織階層の対象となるユーザーです。ディレクトリから読み取った
// スナップショットであり、このパッケージ内で変更されることはありません。
type User struct {
	ID          string
	ProjectID   string
	ManagerID   *string
	Role        Role
	DailyTarget float64
	WorkDays    []int
	WeeklyHours map[int]float64
	WorkMode    string
	CreatedAt   time.Time
}

// Node はレポートラインの木構造の 1 ノードです。永続化されず、
// リクエストごとにフラットなユーザー一覧から再構築されます。
type Node struct {
	User     *User
	Children []*Node
}

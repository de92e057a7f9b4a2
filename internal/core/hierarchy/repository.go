package hierarchy

import "context"

// Repository はユーザーディレクトリの抽象です。
type Repository interface {
	// ListByProject はプロジェクト配下の全ユーザーを入力順（作成順）で返します。
	ListByProject(ctx context.Context, projectID string) ([]*User, error)
	// FindByID はユーザーを取得します。存在しない場合は ErrUserNotFound を返します。
	FindByID(ctx context.Context, id string) (*User, error)
	// UpdateManager は検証済みのマネージャー再割り当てを書き込みます。
	UpdateManager(ctx context.Context, userID string, managerID *string) error
}

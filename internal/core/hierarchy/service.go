package hierarchy

import (
	"context"
	"strings"
)

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

// Service は組織階層に関するユースケースをまとめます。
type Service struct {
	repo Repository
	tx   TransactionManager
}

// UseCase は組織階層ユースケースの公開インターフェースです。
type UseCase interface {
	GetTree(ctx context.Context, in GetTreeInput) ([]*Node, error)
	ListVisibleUsers(ctx context.Context, in ListVisibleUsersInput) ([]*User, error)
	ReassignManager(ctx context.Context, in ReassignManagerInput) (*User, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, tx TransactionManager) *Service {
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, tx: tx}
}

// GetTreeInput はレポートラインの木構造取得時の入力です。
type GetTreeInput struct {
	RequesterID string
	ProjectID   string
}

// ListVisibleUsersInput は閲覧可能ユーザー一覧取得時の入力です。
type ListVisibleUsersInput struct {
	RequesterID string
	ProjectID   string
}

// ReassignManagerInput はマネージャー再割り当て時の入力です。
// ManagerID が nil の場合は割り当て解除を意味します。
type ReassignManagerInput struct {
	RequesterID string
	ProjectID   string
	UserID      string
	ManagerID   *string
}

// GetTree はリクエストしたユーザーから見えるレポートラインの森を返します。
// manager の場合は自分を含む部分木、admin の場合は組織全体になります。
func (s *Service) GetTree(ctx context.Context, in GetTreeInput) ([]*Node, error) {
	requesterID, projectID, err := normalizeScopeInput(in.RequesterID, in.ProjectID)
	if err != nil {
		return nil, err
	}

	var roots []*Node
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		visible, err := s.visibleUsers(txCtx, requesterID, projectID)
		if err != nil {
			return err
		}
		roots = BuildForest(visible)
		return nil
	}); err != nil {
		return nil, err
	}

	return roots, nil
}

// ListVisibleUsers はアクセススコープ内のユーザー一覧を入力順で返します。
func (s *Service) ListVisibleUsers(ctx context.Context, in ListVisibleUsersInput) ([]*User, error) {
	requesterID, projectID, err := normalizeScopeInput(in.RequesterID, in.ProjectID)
	if err != nil {
		return nil, err
	}

	var visible []*User
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.visibleUsers(txCtx, requesterID, projectID)
		if err != nil {
			return err
		}
		visible = result
		return nil
	}); err != nil {
		return nil, err
	}

	return visible, nil
}

// ReassignManager はマネージャー再割り当てを検証したうえで書き込みます。
// 循環やロール制約の違反はセンチネルエラーとして返し、書き込みは一切
// 行いません。
func (s *Service) ReassignManager(ctx context.Context, in ReassignManagerInput) (*User, error) {
	requesterID, projectID, err := normalizeScopeInput(in.RequesterID, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.UserID) == "" {
		return nil, ErrInvalidID
	}

	var updated *User
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		users, err := s.repo.ListByProject(txCtx, projectID)
		if err != nil {
			return err
		}

		requester := findUser(users, requesterID)
		if requester == nil {
			return ErrUserNotFound
		}
		if requester.Role == RoleMember {
			return ErrForbidden
		}
		if _, ok := VisibleUserIDs(requester, users)[in.UserID]; !ok {
			return ErrForbidden
		}

		employee := findUser(users, in.UserID)
		if employee == nil {
			return ErrUserNotFound
		}

		if in.ManagerID != nil {
			manager := findUser(users, *in.ManagerID)
			if err := ValidateAssignment(employee, manager, users); err != nil {
				return err
			}
		}

		if err := s.repo.UpdateManager(txCtx, employee.ID, in.ManagerID); err != nil {
			return err
		}

		clone := *employee
		clone.ManagerID = cloneStringPtr(in.ManagerID)
		updated = &clone
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) visibleUsers(ctx context.Context, requesterID, projectID string) ([]*User, error) {
	users, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	requester := findUser(users, requesterID)
	if requester == nil {
		return nil, ErrUserNotFound
	}

	scope := VisibleUserIDs(requester, users)
	visible := make([]*User, 0, len(scope))
	for _, u := range users {
		if _, ok := scope[u.ID]; ok {
			visible = append(visible, u)
		}
	}
	return visible, nil
}

func normalizeScopeInput(requesterID, projectID string) (string, string, error) {
	requesterID = strings.TrimSpace(requesterID)
	if requesterID == "" {
		return "", "", ErrInvalidID
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return "", "", ErrInvalidProjectID
	}
	return requesterID, projectID, nil
}

func findUser(users []*User, id string) *User {
	for _, u := range users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func cloneStringPtr(value *string) *string {
	if value == nil {
		return nil
	}
	clone := *value
	return &clone
}

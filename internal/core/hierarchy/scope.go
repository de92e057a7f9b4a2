package hierarchy

// VisibleUserIDs はリクエストしたユーザーが閲覧・管理できるユーザー ID の
// 集合を返します。
//
//   - admin:   一覧内の全ユーザー
//   - manager: 自分自身と推移的な部下
//   - member:  自分自身のみ
//
// 返却された集合に含まれない ID はデフォルト拒否として扱います。
// 境界層では存在の漏洩を避けるため NotFound ではなく PermissionDenied に
// マッピングします。
func VisibleUserIDs(requester *User, users []*User) map[string]struct{} {
	visible := make(map[string]struct{}, len(users))
	if requester == nil {
		return visible
	}

	switch requester.Role {
	case RoleAdmin:
		for _, u := range users {
			visible[u.ID] = struct{}{}
		}
	case RoleManager:
		visible = Descendants(requester.ID, users)
		visible[requester.ID] = struct{}{}
	default:
		visible[requester.ID] = struct{}{}
	}

	return visible
}

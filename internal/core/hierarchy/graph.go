package hierarchy

// BuildForest はフラットなユーザー一覧からレポートラインの森を構築します。
// 失敗することはなく、入力の全ユーザーがちょうど 1 回ずつ出力に現れます。
// ManagerID が一覧内のどのユーザーにも解決できない場合、そのユーザーは
// 切り捨てられるのではなくルートへ昇格します。ルートおよび各ノードの
// 子は入力順を保持します。
//
// 入力データが既にマネージャー循環を含んでいても木構造に循環が
// 持ち込まれることはありません。リンクした時点で自分自身の祖先に
// なってしまうユーザーはルートへ昇格します。
func BuildForest(users []*User) []*Node {
	index := make(map[string]*Node, len(users))
	order := make([]*Node, 0, len(users))
	for _, u := range users {
		n := &Node{User: u}
		index[u.ID] = n
		order = append(order, n)
	}

	parents := make(map[*Node]*Node, len(users))
	roots := make([]*Node, 0)
	for _, n := range order {
		managerID := n.User.ManagerID
		if managerID == nil || *managerID == n.User.ID {
			roots = append(roots, n)
			continue
		}

		parent, ok := index[*managerID]
		if !ok || isLinkedAncestor(n, parent, parents) {
			roots = append(roots, n)
			continue
		}

		parent.Children = append(parent.Children, n)
		parents[n] = parent
	}

	return roots
}

// isLinkedAncestor は構築済みの親リンクを辿り、candidate が from の
// 祖先として既にリンクされているかを返します。
func isLinkedAncestor(candidate, from *Node, parents map[*Node]*Node) bool {
	for cur := from; cur != nil; cur = parents[cur] {
		if cur == candidate {
			return true
		}
	}
	return false
}

// Descendants は userID から直属の部下を推移的に辿って到達できる
// 全ユーザー ID を返します。userID 自身は含まれません。
//
// 探索は訪問済み集合付きの幅優先で行うため、バリデーターを迂回して
// 循環が書き込まれてしまったデータに対しても必ず停止します。
func Descendants(userID string, users []*User) map[string]struct{} {
	children := make(map[string][]string, len(users))
	for _, u := range users {
		if u.ManagerID == nil {
			continue
		}
		children[*u.ManagerID] = append(children[*u.ManagerID], u.ID)
	}

	result := make(map[string]struct{})
	queue := append([]string(nil), children[userID]...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		if id == userID {
			continue
		}
		if _, seen := result[id]; seen {
			continue
		}
		result[id] = struct{}{}
		queue = append(queue, children[id]...)
	}

	return result
}

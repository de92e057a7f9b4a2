package hierarchy

import (
	"testing"
	"time"
)

func ptr(s string) *string {
	return &s
}

func testUser(id string, managerID *string, role Role) *User {
	return &User{
		ID:        id,
		ProjectID: "project-1",
		ManagerID: managerID,
		Role:      role,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildForest_SingleRootTree(t *testing.T) {
	t.Parallel()

	users := []*User{
		testUser("ceo", nil, RoleAdmin),
		testUser("mgr-1", ptr("ceo"), RoleManager),
		testUser("mgr-2", ptr("ceo"), RoleManager),
		testUser("emp-1", ptr("mgr-1"), RoleMember),
		testUser("emp-2", ptr("mgr-1"), RoleMember),
	}

	roots := BuildForest(users)
	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	if roots[0].User.ID != "ceo" {
		t.Fatalf("expected ceo as root, got %s", roots[0].User.ID)
	}
	if len(roots[0].Children) != 2 {
		t.Fatalf("expected 2 children under ceo, got %d", len(roots[0].Children))
	}
	if roots[0].Children[0].User.ID != "mgr-1" || roots[0].Children[1].User.ID != "mgr-2" {
		t.Fatalf("children should preserve input order, got %s %s",
			roots[0].Children[0].User.ID, roots[0].Children[1].User.ID)
	}
	if len(roots[0].Children[0].Children) != 2 {
		t.Fatalf("expected 2 reports under mgr-1, got %d", len(roots[0].Children[0].Children))
	}
}

func TestBuildForest_DanglingManagerBecomesRoot(t *testing.T) {
	t.Parallel()

	users := []*User{
		testUser("a", ptr("missing"), RoleMember),
		testUser("b", nil, RoleManager),
	}

	roots := BuildForest(users)
	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}
	if roots[0].User.ID != "a" || roots[1].User.ID != "b" {
		t.Fatalf("roots should preserve input order, got %s %s", roots[0].User.ID, roots[1].User.ID)
	}
}

func TestBuildForest_EveryUserAppearsExactlyOnce(t *testing.T) {
	t.Parallel()

	users := []*User{
		testUser("r", nil, RoleAdmin),
		testUser("m", ptr("r"), RoleManager),
		testUser("x", ptr("m"), RoleMember),
		testUser("y", ptr("ghost"), RoleMember),
	}

	roots := BuildForest(users)

	seen := make(map[string]int)
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			seen[n.User.ID]++
			walk(n.Children)
		}
	}
	walk(roots)

	if len(seen) != len(users) {
		t.Fatalf("expected %d distinct users in forest, got %d", len(users), len(seen))
	}
	for id, count := range seen {
		if count != 1 {
			t.Fatalf("user %s appears %d times", id, count)
		}
	}
}

func TestBuildForest_CyclicInputNeverBuildsLoop(t *testing.T) {
	t.Parallel()

	// 直接データ編集でしか作れない壊れた入力。a と b が互いを
	// マネージャーに指している。
	users := []*User{
		testUser("a", ptr("b"), RoleManager),
		testUser("b", ptr("a"), RoleManager),
		testUser("c", ptr("c"), RoleManager),
	}

	roots := BuildForest(users)

	visited := make(map[string]struct{})
	var walk func(n *Node)
	walk = func(n *Node) {
		if _, seen := visited[n.User.ID]; seen {
			t.Fatalf("node %s revisited: forest contains a loop", n.User.ID)
		}
		visited[n.User.ID] = struct{}{}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}

	if len(visited) != len(users) {
		t.Fatalf("expected all %d users reachable from roots, got %d", len(users), len(visited))
	}
}

func TestDescendants_Transitive(t *testing.T) {
	t.Parallel()

	users := []*User{
		testUser("ceo", nil, RoleAdmin),
		testUser("mgr", ptr("ceo"), RoleManager),
		testUser("lead", ptr("mgr"), RoleManager),
		testUser("emp", ptr("lead"), RoleMember),
		testUser("other", nil, RoleMember),
	}

	got := Descendants("mgr", users)
	if len(got) != 2 {
		t.Fatalf("expected 2 descendants, got %d", len(got))
	}
	for _, id := range []string{"lead", "emp"} {
		if _, ok := got[id]; !ok {
			t.Fatalf("expected %s in descendants", id)
		}
	}
	if _, ok := got["mgr"]; ok {
		t.Fatalf("descendants must not include the user itself")
	}
	if _, ok := got["other"]; ok {
		t.Fatalf("unrelated user leaked into descendants")
	}
}

func TestDescendants_AncestorSymmetry(t *testing.T) {
	t.Parallel()

	users := []*User{
		testUser("r", nil, RoleAdmin),
		testUser("m1", ptr("r"), RoleManager),
		testUser("m2", ptr("m1"), RoleManager),
		testUser("e", ptr("m2"), RoleMember),
	}

	// e から根までのマネージャー連鎖上にあるユーザーだけが
	// e を部下として持つ。
	chain := map[string]struct{}{"r": {}, "m1": {}, "m2": {}}
	for _, u := range users {
		_, onChain := chain[u.ID]
		_, hasE := Descendants(u.ID, users)["e"]
		if onChain != hasE {
			t.Fatalf("user %s: onChain=%v but descendant lookup=%v", u.ID, onChain, hasE)
		}
	}
}

func TestDescendants_TerminatesOnCyclicInput(t *testing.T) {
	t.Parallel()

	users := []*User{
		testUser("a", ptr("b"), RoleManager),
		testUser("b", ptr("a"), RoleManager),
	}

	got := Descendants("a", users)
	if _, ok := got["b"]; !ok {
		t.Fatalf("expected b reachable from a")
	}
	if _, ok := got["a"]; ok {
		t.Fatalf("user itself must not appear even on cyclic input")
	}
}

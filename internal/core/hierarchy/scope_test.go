package hierarchy

import "testing"

func scopeUsers() []*User {
	return []*User{
		testUser("admin", nil, RoleAdmin),
		testUser("mgr", nil, RoleManager),
		testUser("emp-1", ptr("mgr"), RoleMember),
		testUser("emp-2", ptr("emp-1"), RoleMember),
		testUser("outsider", nil, RoleMember),
	}
}

func TestVisibleUserIDs_Admin(t *testing.T) {
	t.Parallel()

	users := scopeUsers()
	got := VisibleUserIDs(users[0], users)
	if len(got) != len(users) {
		t.Fatalf("admin should see all %d users, got %d", len(users), len(got))
	}
}

func TestVisibleUserIDs_ManagerSeesSelfAndSubtree(t *testing.T) {
	t.Parallel()

	users := scopeUsers()
	got := VisibleUserIDs(users[1], users)

	for _, id := range []string{"mgr", "emp-1", "emp-2"} {
		if _, ok := got[id]; !ok {
			t.Fatalf("expected %s visible to manager", id)
		}
	}
	if len(got) != 3 {
		t.Fatalf("expected exactly 3 visible users, got %d", len(got))
	}
	if _, ok := got["outsider"]; ok {
		t.Fatalf("manager must not see users outside the subtree")
	}
}

func TestVisibleUserIDs_MemberSeesOnlySelf(t *testing.T) {
	t.Parallel()

	users := scopeUsers()
	got := VisibleUserIDs(users[4], users)
	if len(got) != 1 {
		t.Fatalf("member should see exactly one user, got %d", len(got))
	}
	if _, ok := got["outsider"]; !ok {
		t.Fatalf("member should see itself")
	}
}

func TestVisibleUserIDs_NilRequesterDeniesAll(t *testing.T) {
	t.Parallel()

	got := VisibleUserIDs(nil, scopeUsers())
	if len(got) != 0 {
		t.Fatalf("nil requester should see nothing, got %d", len(got))
	}
}

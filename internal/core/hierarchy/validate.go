package hierarchy

// WouldCreateCycle は employeeID のマネージャーを proposedManagerID に
// 変更した場合にレポートラインへ循環が生じるかを判定します。
// 自分自身をマネージャーに指定するケース、および提案されたマネージャーが
// 既に employeeID の部下であるケースで true を返します。
func WouldCreateCycle(employeeID, proposedManagerID string, users []*User) bool {
	if employeeID == proposedManagerID {
		return true
	}

	_, isDescendant := Descendants(employeeID, users)[proposedManagerID]
	return isDescendant
}

// ValidateAssignment はマネージャー再割り当てを書き込む前に呼び出す
// 検証です。違反を検出した場合はセンチネルエラーを返し、呼び出し側は
// 変更を部分適用せずに拒否しなければなりません。
func ValidateAssignment(employee, manager *User, users []*User) error {
	if employee == nil {
		return ErrUserNotFound
	}
	if manager == nil {
		return ErrManagerNotFound
	}
	if employee.Role == RoleAdmin {
		return ErrAdminHasManager
	}
	if manager.Role == RoleMember {
		return ErrMemberAsManager
	}
	if WouldCreateCycle(employee.ID, manager.ID, users) {
		return ErrCycleDetected
	}
	return nil
}

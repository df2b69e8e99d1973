package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Attendance Management
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceCreate  Permission = "attendance.create"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Leave Management
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Task Management
	PermissionTaskViewOwn Permission = "task.view_own"
	PermissionTaskViewAll Permission = "task.view_all"
	PermissionTaskUpdate  Permission = "task.update"
	PermissionTaskCreate  Permission = "task.create"
	PermissionTaskDelete  Permission = "task.delete"

	// Performance
	PermissionPerformanceViewOwn Permission = "performance.view_own"

	// User Directory
	PermissionUserViewAll Permission = "user.view_all"

	// Settings
	PermissionSettingsManage Permission = "settings.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		// Admin has all permissions
		PermissionViewOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceCreate,
		PermissionAttendanceViewAll,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionTaskViewOwn,
		PermissionTaskViewAll,
		PermissionTaskUpdate,
		PermissionTaskCreate,
		PermissionTaskDelete,
		PermissionPerformanceViewOwn,
		PermissionUserViewAll,
		PermissionSettingsManage,
	},
	RoleSupervisor: {
		// Supervisor can manage the board and approve leave
		PermissionViewOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceCreate,
		PermissionAttendanceViewAll,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveApprove,
		PermissionTaskViewOwn,
		PermissionTaskViewAll,
		PermissionTaskUpdate,
		PermissionTaskCreate,
		PermissionTaskDelete,
		PermissionPerformanceViewOwn,
		PermissionUserViewAll,
	},
	RoleMember: {
		// Member works their own tasks and attendance
		PermissionViewOwnProfile,
		PermissionAttendanceViewOwn,
		PermissionAttendanceCreate,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionTaskViewOwn,
		PermissionTaskUpdate,
		PermissionPerformanceViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}

// file: internals/constants/roles.go
package constants

/* =======================
   Role names (klaim JWT)
   ======================= */

const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

/* =======================
   Permission table
   =======================
   Dibangun sekali per proses dan di-inject (bukan global tersembunyi):
   route setup memanggil DefaultPermissions() lalu menaruhnya di locals,
   guard di helpers/auth membacanya dari sana.
*/

const (
	PermManageSchedules  = "schedules:manage"  // create / patch / delete
	PermViewSchedules    = "schedules:view"    // weekly & teacher views
	PermManageExceptions = "exceptions:manage" // record exception
	PermManageMasters    = "masters:manage"    // class / subject / teacher CRUD
)

type PermissionTable map[string]map[string]bool

// DefaultPermissions mengembalikan tabel role→permission deterministik.
func DefaultPermissions() PermissionTable {
	return PermissionTable{
		RoleOwner: {
			PermManageSchedules:  true,
			PermViewSchedules:    true,
			PermManageExceptions: true,
			PermManageMasters:    true,
		},
		RoleAdmin: {
			PermManageSchedules:  true,
			PermViewSchedules:    true,
			PermManageExceptions: true,
			PermManageMasters:    true,
		},
		RoleTeacher: {
			PermManageSchedules:  true,
			PermViewSchedules:    true,
			PermManageExceptions: true,
		},
		RoleStudent: {
			PermViewSchedules: true,
		},
	}
}

// Allowed cek satu role terhadap satu permission; role tak dikenal = false.
func (t PermissionTable) Allowed(role, perm string) bool {
	if t == nil {
		return false
	}
	perms, ok := t[role]
	if !ok {
		return false
	}
	return perms[perm]
}

// AnyAllowed cek beberapa role sekaligus (user bisa punya lebih dari satu role).
func (t PermissionTable) AnyAllowed(roles []string, perm string) bool {
	for _, r := range roles {
		if t.Allowed(r, perm) {
			return true
		}
	}
	return false
}

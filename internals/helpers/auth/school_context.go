// file: internals/helpers/auth/school_context.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sekolahku_backend/internals/constants"
)

/* ============================================
   Locals Keys (middleware should set these)
   ============================================ */

const (
	LocUserID      = "user_id"      // string UUID
	LocSchoolID    = "school_id"    // string UUID (tenant aktif dari token)
	LocRoles       = "roles"        // []string
	LocPermissions = "permissions"  // constants.PermissionTable (di-inject saat setup route)
)

/* ============================================
   SchoolContext — tenant context eksplisit
   ============================================
   Semua call ke service layer WAJIB bawa context ini;
   school_id tidak pernah diambil dari body/query client.
*/

type SchoolContext struct {
	SchoolID uuid.UUID
	UserID   uuid.UUID
	Roles    []string
}

var (
	ErrSchoolContextMissing = fiber.NewError(fiber.StatusUnauthorized, "School context tidak ditemukan di token")
)

// ResolveSchoolContext membaca locals hasil AuthJWT dan membentuk SchoolContext.
func ResolveSchoolContext(c *fiber.Ctx) (SchoolContext, error) {
	var ctx SchoolContext

	sid := localString(c, LocSchoolID)
	if sid == "" {
		return ctx, ErrSchoolContextMissing
	}
	id, err := uuid.Parse(sid)
	if err != nil || id == uuid.Nil {
		return ctx, ErrSchoolContextMissing
	}
	ctx.SchoolID = id

	if uidStr := localString(c, LocUserID); uidStr != "" {
		if uid, err := uuid.Parse(uidStr); err == nil {
			ctx.UserID = uid
		}
	}
	ctx.Roles = localStringSlice(c, LocRoles)
	return ctx, nil
}

/* ============================================
   Guards
   ============================================ */

func RolesFromLocals(c *fiber.Ctx) []string {
	return localStringSlice(c, LocRoles)
}

func IsOwner(c *fiber.Ctx) bool   { return hasRole(c, constants.RoleOwner) }
func IsAdmin(c *fiber.Ctx) bool   { return hasRole(c, constants.RoleAdmin) }
func IsTeacher(c *fiber.Ctx) bool { return hasRole(c, constants.RoleTeacher) }

// HasPermission cek role user terhadap tabel permission yang di-inject route setup.
func HasPermission(c *fiber.Ctx, perm string) bool {
	table, ok := c.Locals(LocPermissions).(constants.PermissionTable)
	if !ok {
		return false
	}
	return table.AnyAllowed(RolesFromLocals(c), perm)
}

/* ============================================
   Tiny shared helpers
   ============================================ */

func hasRole(c *fiber.Ctx, role string) bool {
	for _, r := range RolesFromLocals(c) {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

func localString(c *fiber.Ctx, key string) string {
	if v, ok := c.Locals(key).(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func localStringSlice(c *fiber.Ctx, key string) []string {
	switch v := c.Locals(key).(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, it := range v {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}

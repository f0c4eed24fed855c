// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	acadRoute "sekolahku_backend/internals/features/school/academics/route"
	schedRoute "sekolahku_backend/internals/features/school/schedules/route"
	helperAuth "sekolahku_backend/internals/helpers/auth"
	authMw "sekolahku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	validate := validator.New()

	// Tabel permission dibangun SEKALI lalu di-inject ke locals —
	// guard di helpers/auth tidak pernah baca global tersembunyi.
	permissions := constants.DefaultPermissions()
	injectPermissions := func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocPermissions, permissions)
		return c.Next()
	}

	jwt := authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", jwt, injectPermissions)
	schedRoute.ScheduleUserRoutes(user, db, validate)

	// ===================== ADMIN (per school) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", jwt, injectPermissions)
	schedRoute.ScheduleAdminRoutes(admin, db, validate)
	acadRoute.AcademicsAdminRoutes(admin, db, validate)
}

// file: internals/features/school/schedules/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schedCtl "sekolahku_backend/internals/features/school/schedules/controller"
	svc "sekolahku_backend/internals/features/school/schedules/service"
	"sekolahku_backend/internals/middlewares"
)

// ScheduleAdminRoutes mendaftarkan route tulis untuk admin/teacher.
func ScheduleAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	sched := schedCtl.New(svc.NewScheduleService(db), svc.NewViewService(db), v)
	exc := schedCtl.NewExceptionController(svc.NewExceptionService(db), v)

	grpSched := admin.Group("/class-schedules", middlewares.ScheduleWriteRateLimiter())
	grpSched.Post("/", sched.Create)
	grpSched.Patch("/:id", sched.Patch)
	grpSched.Delete("/:id", sched.Delete)

	grpExc := admin.Group("/schedule-exceptions")
	grpExc.Post("/", exc.Record)
}

// file: internals/features/school/schedules/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schedCtl "sekolahku_backend/internals/features/school/schedules/controller"
	svc "sekolahku_backend/internals/features/school/schedules/service"
)

// ScheduleUserRoutes mendaftarkan route baca (semua role ber-token).
func ScheduleUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	sched := schedCtl.New(svc.NewScheduleService(db), svc.NewViewService(db), v)
	exc := schedCtl.NewExceptionController(svc.NewExceptionService(db), v)

	grpSched := user.Group("/class-schedules")
	grpSched.Get("/", sched.List)
	grpSched.Get("/:id", sched.GetByID)

	// projections
	user.Get("/classes/:class_id/weekly-view", sched.WeeklyViewForClass)
	user.Get("/teachers/:teacher_id/schedule-view", sched.ViewForTeacher)

	grpExc := user.Group("/schedule-exceptions")
	grpExc.Get("/", exc.List)
}

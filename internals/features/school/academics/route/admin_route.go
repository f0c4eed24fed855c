// file: internals/features/school/academics/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	acadCtl "sekolahku_backend/internals/features/school/academics/controller"
)

// AcademicsAdminRoutes: master data kelas / mapel / guru (CRUD ringan).
func AcademicsAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := acadCtl.New(db, v)

	grpClass := admin.Group("/classes")
	grpClass.Post("/", ctl.CreateClass)
	grpClass.Get("/", ctl.ListClasses)
	grpClass.Get("/:id", ctl.GetClass)
	grpClass.Delete("/:id", ctl.DeleteClass)

	grpSubject := admin.Group("/subjects")
	grpSubject.Post("/", ctl.CreateSubject)
	grpSubject.Get("/", ctl.ListSubjects)
	grpSubject.Get("/:id", ctl.GetSubject)
	grpSubject.Delete("/:id", ctl.DeleteSubject)

	grpTeacher := admin.Group("/teachers")
	grpTeacher.Post("/", ctl.CreateTeacher)
	grpTeacher.Get("/", ctl.ListTeachers)
	grpTeacher.Get("/:id", ctl.GetTeacher)
	grpTeacher.Delete("/:id", ctl.DeleteTeacher)
}

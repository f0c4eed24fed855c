// file: internals/features/school/schedules/controller/schedule_get_controller.go
package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	d "sekolahku_backend/internals/features/school/schedules/dto"
	svc "sekolahku_backend/internals/features/school/schedules/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"

	"sekolahku_backend/internals/constants"
)

/* =========================
   Small helpers
========================= */

const (
	defLimit = 50
	maxLimit = 200
)

func strPtrQuery(c *fiber.Ctx, name string) *string {
	s := strings.TrimSpace(c.Query(name))
	if s == "" {
		return nil
	}
	return &s
}

// ?days=1,2,3 → []int (invalid token diabaikan)
func daysFromQuery(c *fiber.Ctx) []int {
	raw := strings.TrimSpace(c.Query("days"))
	if raw == "" {
		if d := strings.TrimSpace(c.Query("day_of_week")); d != "" {
			raw = d
		} else {
			return nil
		}
	}
	var out []int
	for _, part := range strings.Split(raw, ",") {
		if v, err := strconv.Atoi(strings.TrimSpace(part)); err == nil && v >= 1 && v <= 7 {
			out = append(out, v)
		}
	}
	return out
}

func viewFilterFromQuery(c *fiber.Ctx) svc.ViewFilter {
	return svc.ViewFilter{
		Semester:     strPtrQuery(c, "semester"),
		AcademicYear: strPtrQuery(c, "academic_year"),
	}
}

/* =========================
   GET by id
   ========================= */

func (ctl *ClassScheduleController) GetByID(c *fiber.Ctx) error {
	if !helperAuth.HasPermission(c, constants.PermViewSchedules) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak")
	}
	mc, err := helperAuth.ResolveSchoolContext(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	tenant := svc.TenantContext{SchoolID: mc.SchoolID, UserID: mc.UserID}
	row, err := ctl.Service.GetByID(c.UserContext(), tenant, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", d.FromModel(row))
}

/* =========================
   LIST (filter equality, absen = unconstrained)
   ========================= */

func (ctl *ClassScheduleController) List(c *fiber.Ctx) error {
	if !helperAuth.HasPermission(c, constants.PermViewSchedules) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak")
	}
	mc, err := helperAuth.ResolveSchoolContext(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	paging := helper.ResolvePaging(c, defLimit, maxLimit)
	f := svc.ListSchedulesFilter{
		DaysOfWeek:   daysFromQuery(c),
		Semester:     strPtrQuery(c, "semester"),
		AcademicYear: strPtrQuery(c, "academic_year"),
		Limit:        paging.Limit,
		Offset:       paging.Offset,
	}
	if id, err := helper.ParseUUIDQuery(c, "class_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	} else if id != uuid.Nil {
		f.ClassID = &id
	}
	if id, err := helper.ParseUUIDQuery(c, "subject_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	} else if id != uuid.Nil {
		f.SubjectID = &id
	}
	if id, err := helper.ParseUUIDQuery(c, "teacher_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	} else if id != uuid.Nil {
		f.TeacherID = &id
	}

	tenant := svc.TenantContext{SchoolID: mc.SchoolID, UserID: mc.UserID}
	rows, total, err := ctl.Service.ListActive(c.UserContext(), tenant, f)
	if err != nil {
		return writeServiceError(c, err)
	}

	data := d.FromModels(rows)
	return helper.JsonList(c, "ok", data,
		helper.BuildPagination(paging.Page, paging.PerPage, total, len(data)))
}

/* =========================
   Weekly view (per kelas)
   ========================= */

func (ctl *ClassScheduleController) WeeklyViewForClass(c *fiber.Ctx) error {
	if !helperAuth.HasPermission(c, constants.PermViewSchedules) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak")
	}
	mc, err := helperAuth.ResolveSchoolContext(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	classID, err := helper.ParseUUIDParam(c, "class_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	tenant := svc.TenantContext{SchoolID: mc.SchoolID, UserID: mc.UserID}
	view, err := ctl.Views.WeeklyViewForClass(c.UserContext(), tenant, classID, viewFilterFromQuery(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", d.FromWeeklyView(view))
}

/* =========================
   Teacher view
   ========================= */

func (ctl *ClassScheduleController) ViewForTeacher(c *fiber.Ctx) error {
	if !helperAuth.HasPermission(c, constants.PermViewSchedules) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak")
	}
	mc, err := helperAuth.ResolveSchoolContext(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}
	teacherID, err := helper.ParseUUIDParam(c, "teacher_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	tenant := svc.TenantContext{SchoolID: mc.SchoolID, UserID: mc.UserID}
	rows, err := ctl.Views.ViewForTeacher(c.UserContext(), tenant, teacherID, viewFilterFromQuery(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", d.FromModels(rows))
}

// file: internals/features/school/schedules/controller/schedule_exception_controller.go
package controller

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	d "sekolahku_backend/internals/features/school/schedules/dto"
	svc "sekolahku_backend/internals/features/school/schedules/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"

	"sekolahku_backend/internals/constants"
)

/* =========================
   Controller & Constructor
   ========================= */

type ScheduleExceptionController struct {
	Service  *svc.ExceptionService
	Validate *validator.Validate
}

func NewExceptionController(service *svc.ExceptionService, v *validator.Validate) *ScheduleExceptionController {
	return &ScheduleExceptionController{Service: service, Validate: v}
}

/* =========================
   Record
   ========================= */

func (ctl *ScheduleExceptionController) Record(c *fiber.Ctx) error {
	// --- guard
	if !helperAuth.HasPermission(c, constants.PermManageExceptions) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak")
	}

	mc, err := helperAuth.ResolveSchoolContext(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	var req d.RecordScheduleExceptionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ScheduleException.Record] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonValidationError(c, validationErrorsToMap(err))
		}
	}

	in, err := req.ToInput()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	tenant := svc.TenantContext{SchoolID: mc.SchoolID, UserID: mc.UserID}
	row, err := ctl.Service.Record(c.UserContext(), tenant, in)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonCreated(c, "Exception recorded", d.FromExceptionModel(row))
}

/* =========================
   List (dateRange + classId)
   ========================= */

func (ctl *ScheduleExceptionController) List(c *fiber.Ctx) error {
	if !helperAuth.HasPermission(c, constants.PermViewSchedules) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak")
	}

	mc, err := helperAuth.ResolveSchoolContext(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	from, err := helper.ParseDateQuery(c, "date_from")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	to, err := helper.ParseDateQuery(c, "date_to")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	paging := helper.ResolvePaging(c, defLimit, maxLimit)
	f := svc.ListExceptionsFilter{
		DateFrom: from,
		DateTo:   to,
		Limit:    paging.Limit,
		Offset:   paging.Offset,
	}
	if id, err := helper.ParseUUIDQuery(c, "class_id"); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	} else if id != uuid.Nil {
		f.ClassID = &id
	}

	tenant := svc.TenantContext{SchoolID: mc.SchoolID, UserID: mc.UserID}
	rows, total, err := ctl.Service.List(c.UserContext(), tenant, f)
	if err != nil {
		return writeServiceError(c, err)
	}

	data := d.FromExceptionsWithParent(rows)
	return helper.JsonList(c, "ok", data,
		helper.BuildPagination(paging.Page, paging.PerPage, total, len(data)))
}

// file: internals/features/school/schedules/controller/schedule_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	d "sekolahku_backend/internals/features/school/schedules/dto"
	svc "sekolahku_backend/internals/features/school/schedules/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"

	"sekolahku_backend/internals/constants"
)

/* =========================
   Controller & Constructor
   ========================= */

type ClassScheduleController struct {
	Service  *svc.ScheduleService
	Views    *svc.ViewService
	Validate *validator.Validate
}

func New(service *svc.ScheduleService, views *svc.ViewService, v *validator.Validate) *ClassScheduleController {
	return &ClassScheduleController{Service: service, Views: views, Validate: v}
}

/* =========================
   Error mapping
   ========================= */

// writeServiceError memetakan taxonomy service ke HTTP:
// ValidationError→400, NotFound→404, Conflict→409 (+detail), transient→503.
func writeServiceError(c *fiber.Ctx, err error) error {
	var ve *svc.ValidationError
	if errors.As(err, &ve) {
		return helper.JsonError(c, http.StatusBadRequest, ve.Msg)
	}

	var nfe *svc.NotFoundError
	if errors.As(err, &nfe) {
		return helper.JsonError(c, http.StatusNotFound, nfe.Error())
	}

	var ce *svc.ConflictError
	if errors.As(err, &ce) {
		// detail cukup buat caller menyusun pesan presisi, tidak pernah auto-reassign slot
		return c.Status(http.StatusConflict).JSON(fiber.Map{
			"success":    false,
			"message":    ce.Error(),
			"error_code": "CONFLICT",
			"conflict": fiber.Map{
				"kind":                    string(ce.Kind),
				"conflicting_schedule_id": ce.ConflictingScheduleID,
			},
		})
	}

	if errors.Is(err, svc.ErrTransient) {
		return helper.JsonError(c, http.StatusServiceUnavailable, err.Error())
	}

	return writePGError(c, err)
}

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func writePGError(c *fiber.Ctx, err error) error {
	// 23P01 = exclusion_violation, 23503 = foreign_key_violation, 23505 = unique_violation
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23P01", "23505":
			return helper.JsonError(c, http.StatusConflict, "Bentrok jadwal: slot sudah terpakai (constraint DB).")
		case "23503":
			return helper.JsonError(c, http.StatusBadRequest, "Referensi tidak ditemukan (FK violation).")
		}
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

func validationErrorsToMap(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}

/* =========================
   Create
   ========================= */

func (ctl *ClassScheduleController) Create(c *fiber.Ctx) error {
	// --- guard
	if !helperAuth.HasPermission(c, constants.PermManageSchedules) {
		return helper.JsonError(c, http.StatusForbidden, "Akses ditolak")
	}

	// --- tenant context dari token
	mc, err := helperAuth.ResolveSchoolContext(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, err.Error())
	}

	// --- body
	var req d.CreateClassScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ClassSchedule.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			log.Printf("[ClassSchedule.Create] Validation error: %v", err)
			return helper.JsonValidationError(c, validationErrorsToMap(err))
		}
	}

	in, err := req.ToInput()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	tenant := svc.TenantContext{SchoolID: mc.SchoolID, UserID: mc.UserID}
	created, err := ctl.Service.Create(c.UserContext(), tenant, in)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonCreated(c, "Schedule created", d.FromModel(created))
}

/* =========================
   Patch (Partial) — DTO pointer-based
   ========================= */

func (ctl *ClassScheduleController) Patch(c *fiber.Ctx) error {
	if !helperAuth.HasPermission(c, constants.PermManageSchedules) {
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

	var req d.UpdateClassScheduleRequest
	if err := c.BodyParser(&req); err != nil {
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
	updated, err := ctl.Service.Update(c.UserContext(), tenant, id, in)
	if err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonUpdated(c, "Schedule updated", d.FromModel(updated))
}

/* =========================
   Soft Delete (set inactive)
   ========================= */

func (ctl *ClassScheduleController) Delete(c *fiber.Ctx) error {
	if !helperAuth.HasPermission(c, constants.PermManageSchedules) {
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
	if err := ctl.Service.SoftDelete(c.UserContext(), tenant, id); err != nil {
		return writeServiceError(c, err)
	}

	return helper.JsonDeleted(c, "Schedule deactivated", fiber.Map{"class_schedule_id": id})
}

// file: internals/features/school/academics/controller/academics_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "sekolahku_backend/internals/features/school/academics/dto"
	m "sekolahku_backend/internals/features/school/academics/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"

	"sekolahku_backend/internals/constants"
)

/* =========================
   Controller & Constructor
   ========================= */

type AcademicsController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AcademicsController {
	return &AcademicsController{DB: db, Validate: v}
}

func (ctl *AcademicsController) guardManage(c *fiber.Ctx) (helperAuth.SchoolContext, error) {
	if !helperAuth.HasPermission(c, constants.PermManageMasters) {
		return helperAuth.SchoolContext{}, fiber.NewError(http.StatusForbidden, "Akses ditolak")
	}
	return helperAuth.ResolveSchoolContext(c)
}

func (ctl *AcademicsController) guardView(c *fiber.Ctx) (helperAuth.SchoolContext, error) {
	if !helperAuth.HasPermission(c, constants.PermViewSchedules) {
		return helperAuth.SchoolContext{}, fiber.NewError(http.StatusForbidden, "Akses ditolak")
	}
	return helperAuth.ResolveSchoolContext(c)
}

func writeGuardError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

/* =========================
   CLASS
   ========================= */

func (ctl *AcademicsController) CreateClass(c *fiber.Ctx) error {
	mc, err := ctl.guardManage(c)
	if err != nil {
		return writeGuardError(c, err)
	}

	var req d.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	row := req.ToModel(mc.SchoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Class created", d.FromClassModel(&row))
}

func (ctl *AcademicsController) ListClasses(c *fiber.Ctx) error {
	mc, err := ctl.guardView(c)
	if err != nil {
		return writeGuardError(c, err)
	}

	paging := helper.ResolvePaging(c, 50, 200)
	q := ctl.DB.WithContext(c.UserContext()).Model(&m.ClassModel{}).
		Where("class_school_id = ?", mc.SchoolID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.ClassModel
	if err := q.Order("class_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	data := d.FromClassModels(rows)
	return helper.JsonList(c, "ok", data, helper.BuildPagination(paging.Page, paging.PerPage, total, len(data)))
}

func (ctl *AcademicsController) GetClass(c *fiber.Ctx) error {
	mc, err := ctl.guardView(c)
	if err != nil {
		return writeGuardError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_id = ? AND class_school_id = ?", id, mc.SchoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "class tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", d.FromClassModel(&row))
}

func (ctl *AcademicsController) DeleteClass(c *fiber.Ctx) error {
	mc, err := ctl.guardManage(c)
	if err != nil {
		return writeGuardError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_id = ? AND class_school_id = ?", id, mc.SchoolID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "class tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	// GORM soft delete → set class_deleted_at
	if err := ctl.DB.WithContext(c.UserContext()).Delete(&existing).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Class deleted", d.FromClassModel(&existing))
}

/* =========================
   SUBJECT
   ========================= */

func (ctl *AcademicsController) CreateSubject(c *fiber.Ctx) error {
	mc, err := ctl.guardManage(c)
	if err != nil {
		return writeGuardError(c, err)
	}

	var req d.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	row := req.ToModel(mc.SchoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Subject created", d.FromSubjectModel(&row))
}

func (ctl *AcademicsController) ListSubjects(c *fiber.Ctx) error {
	mc, err := ctl.guardView(c)
	if err != nil {
		return writeGuardError(c, err)
	}

	paging := helper.ResolvePaging(c, 50, 200)
	q := ctl.DB.WithContext(c.UserContext()).Model(&m.SubjectModel{}).
		Where("subject_school_id = ?", mc.SchoolID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.SubjectModel
	if err := q.Order("subject_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	data := d.FromSubjectModels(rows)
	return helper.JsonList(c, "ok", data, helper.BuildPagination(paging.Page, paging.PerPage, total, len(data)))
}

func (ctl *AcademicsController) GetSubject(c *fiber.Ctx) error {
	mc, err := ctl.guardView(c)
	if err != nil {
		return writeGuardError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("subject_id = ? AND subject_school_id = ?", id, mc.SchoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "subject tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", d.FromSubjectModel(&row))
}

func (ctl *AcademicsController) DeleteSubject(c *fiber.Ctx) error {
	mc, err := ctl.guardManage(c)
	if err != nil {
		return writeGuardError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.SubjectModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("subject_id = ? AND subject_school_id = ?", id, mc.SchoolID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "subject tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(&existing).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Subject deleted", d.FromSubjectModel(&existing))
}

/* =========================
   TEACHER
   ========================= */

func (ctl *AcademicsController) CreateTeacher(c *fiber.Ctx) error {
	mc, err := ctl.guardManage(c)
	if err != nil {
		return writeGuardError(c, err)
	}

	var req d.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	row := req.ToModel(mc.SchoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Teacher created", d.FromTeacherModel(&row))
}

func (ctl *AcademicsController) ListTeachers(c *fiber.Ctx) error {
	mc, err := ctl.guardView(c)
	if err != nil {
		return writeGuardError(c, err)
	}

	paging := helper.ResolvePaging(c, 50, 200)
	q := ctl.DB.WithContext(c.UserContext()).Model(&m.TeacherModel{}).
		Where("teacher_school_id = ?", mc.SchoolID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.TeacherModel
	if err := q.Order("teacher_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	data := d.FromTeacherModels(rows)
	return helper.JsonList(c, "ok", data, helper.BuildPagination(paging.Page, paging.PerPage, total, len(data)))
}

func (ctl *AcademicsController) GetTeacher(c *fiber.Ctx) error {
	mc, err := ctl.guardView(c)
	if err != nil {
		return writeGuardError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var row m.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("teacher_id = ? AND teacher_school_id = ?", id, mc.SchoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "teacher tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", d.FromTeacherModel(&row))
}

func (ctl *AcademicsController) DeleteTeacher(c *fiber.Ctx) error {
	mc, err := ctl.guardManage(c)
	if err != nil {
		return writeGuardError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.TeacherModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("teacher_id = ? AND teacher_school_id = ?", id, mc.SchoolID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "teacher tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(&existing).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Teacher deleted", d.FromTeacherModel(&existing))
}

// file: internals/features/school/schedules/service/schedule_service.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	acadModel "sekolahku_backend/internals/features/school/academics/model"
	m "sekolahku_backend/internals/features/school/schedules/model"
)

/* =========================
   TenantContext
   =========================
   Tenant id selalu datang dari sesi terautentikasi (controller yang
   resolve dari token) dan dibawa eksplisit ke setiap call — tidak ada
   ambient/global tenant.
*/

type TenantContext struct {
	SchoolID uuid.UUID
	UserID   uuid.UUID
}

/* =========================
   Inputs
   ========================= */

type CreateScheduleInput struct {
	ClassID   uuid.UUID
	SubjectID uuid.UUID
	TeacherID uuid.UUID

	// Tepat satu yang terisi
	DayOfWeek *int // 1=Senin .. 7=Minggu
	Date      *time.Time

	StartMin int
	EndMin   int

	Room         *string
	Semester     *string
	AcademicYear *string
	Notes        *string
}

// UpdateScheduleInput: patch eksplisit — field nil = tidak diubah.
// Mengisi DayOfWeek mengosongkan Date (dan sebaliknya); dua-duanya
// dalam satu patch = ValidationError.
type UpdateScheduleInput struct {
	ClassID   *uuid.UUID
	SubjectID *uuid.UUID
	TeacherID *uuid.UUID

	DayOfWeek *int
	Date      *time.Time

	StartMin *int
	EndMin   *int

	Room         *string
	Semester     *string
	AcademicYear *string
	Notes        *string
}

type ListSchedulesFilter struct {
	ClassID      *uuid.UUID
	SubjectID    *uuid.UUID
	TeacherID    *uuid.UUID
	DaysOfWeek   []int
	Semester     *string
	AcademicYear *string
	Limit        int
	Offset       int
}

/* =========================
   Service
   ========================= */

type ScheduleService struct {
	DB *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService { return &ScheduleService{DB: db} }

/* ---------- Create ---------- */

func (s *ScheduleService) Create(ctx context.Context, tenant TenantContext, in CreateScheduleInput) (*m.ClassScheduleModel, error) {
	if err := validateKindAndWindow(in.DayOfWeek, in.Date, in.StartMin, in.EndMin); err != nil {
		return nil, err
	}

	var created m.ClassScheduleModel
	err := s.runScheduleTx(ctx, tenant, func(tx *gorm.DB) error {
		snapshot, err := resolveRefs(tx, tenant.SchoolID, in.ClassID, in.SubjectID, in.TeacherID)
		if err != nil {
			return err
		}

		cand := ConflictCandidate{
			SchoolID:  tenant.SchoolID,
			ClassID:   in.ClassID,
			TeacherID: in.TeacherID,
			DayOfWeek: in.DayOfWeek,
			Date:      in.Date,
			Window:    Interval{StartMin: in.StartMin, EndMin: in.EndMin},
		}
		if err := checkConflicts(tx, cand); err != nil {
			return err
		}

		created = m.ClassScheduleModel{
			ClassScheduleSchoolID:     tenant.SchoolID,
			ClassScheduleClassID:      in.ClassID,
			ClassScheduleSubjectID:    in.SubjectID,
			ClassScheduleTeacherID:    in.TeacherID,
			ClassScheduleDayOfWeek:    in.DayOfWeek,
			ClassScheduleDate:         in.Date,
			ClassScheduleStartMin:     in.StartMin,
			ClassScheduleEndMin:       in.EndMin,
			ClassScheduleRoom:         in.Room,
			ClassScheduleSemester:     in.Semester,
			ClassScheduleAcademicYear: in.AcademicYear,
			ClassScheduleNotes:        in.Notes,
			ClassScheduleStatus:       m.ScheduleStatusActive,
			ClassScheduleSnapshot:     snapshot,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

/* ---------- Update (patch) ---------- */

func (s *ScheduleService) Update(ctx context.Context, tenant TenantContext, id uuid.UUID, in UpdateScheduleInput) (*m.ClassScheduleModel, error) {
	if in.DayOfWeek != nil && in.Date != nil {
		return nil, newValidationError("day_of_week dan date tidak boleh diisi bersamaan")
	}

	var updated m.ClassScheduleModel
	err := s.runScheduleTx(ctx, tenant, func(tx *gorm.DB) error {
		var existing m.ClassScheduleModel
		if err := tx.
			Where("class_schedule_id = ? AND class_schedule_school_id = ? AND class_schedule_status = ?",
				id, tenant.SchoolID, m.ScheduleStatusActive).
			First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "schedule"}
			}
			return err
		}

		needsConflictCheck := applyPatch(&existing, in)

		if err := validateKindAndWindow(existing.ClassScheduleDayOfWeek, existing.ClassScheduleDate,
			existing.ClassScheduleStartMin, existing.ClassScheduleEndMin); err != nil {
			return err
		}

		// Referensi berubah → re-resolve tenant-safe + refresh snapshot
		if in.ClassID != nil || in.SubjectID != nil || in.TeacherID != nil {
			snapshot, err := resolveRefs(tx, tenant.SchoolID,
				existing.ClassScheduleClassID, existing.ClassScheduleSubjectID, existing.ClassScheduleTeacherID)
			if err != nil {
				return err
			}
			existing.ClassScheduleSnapshot = snapshot
		}

		if needsConflictCheck {
			cand := ConflictCandidate{
				ExcludeScheduleID: existing.ClassScheduleID, // entry tidak bentrok dengan dirinya sendiri
				SchoolID:          tenant.SchoolID,
				ClassID:           existing.ClassScheduleClassID,
				TeacherID:         existing.ClassScheduleTeacherID,
				DayOfWeek:         existing.ClassScheduleDayOfWeek,
				Date:              existing.ClassScheduleDate,
				Window:            Interval{StartMin: existing.ClassScheduleStartMin, EndMin: existing.ClassScheduleEndMin},
			}
			if err := checkConflicts(tx, cand); err != nil {
				return err
			}
		}

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// applyPatch terapkan field yang terisi; return true kalau ada perubahan yang
// mengharuskan conflict check ulang (jendela waktu / day / date / class / teacher).
func applyPatch(existing *m.ClassScheduleModel, in UpdateScheduleInput) bool {
	needsCheck := false

	if in.ClassID != nil && *in.ClassID != existing.ClassScheduleClassID {
		existing.ClassScheduleClassID = *in.ClassID
		needsCheck = true
	}
	if in.SubjectID != nil {
		existing.ClassScheduleSubjectID = *in.SubjectID
	}
	if in.TeacherID != nil && *in.TeacherID != existing.ClassScheduleTeacherID {
		existing.ClassScheduleTeacherID = *in.TeacherID
		needsCheck = true
	}
	if in.DayOfWeek != nil {
		existing.ClassScheduleDayOfWeek = in.DayOfWeek
		existing.ClassScheduleDate = nil
		needsCheck = true
	}
	if in.Date != nil {
		existing.ClassScheduleDate = in.Date
		existing.ClassScheduleDayOfWeek = nil
		needsCheck = true
	}
	if in.StartMin != nil && *in.StartMin != existing.ClassScheduleStartMin {
		existing.ClassScheduleStartMin = *in.StartMin
		needsCheck = true
	}
	if in.EndMin != nil && *in.EndMin != existing.ClassScheduleEndMin {
		existing.ClassScheduleEndMin = *in.EndMin
		needsCheck = true
	}

	if in.Room != nil {
		existing.ClassScheduleRoom = in.Room
	}
	if in.Semester != nil {
		existing.ClassScheduleSemester = in.Semester
	}
	if in.AcademicYear != nil {
		existing.ClassScheduleAcademicYear = in.AcademicYear
	}
	if in.Notes != nil {
		existing.ClassScheduleNotes = in.Notes
	}

	return needsCheck
}

/* ---------- Soft delete ---------- */

// SoftDelete set status inactive. Idempotent: entry yang sudah inactive bukan error.
// Exceptions TIDAK ikut terhapus — tetap bisa di-query untuk histori.
func (s *ScheduleService) SoftDelete(ctx context.Context, tenant TenantContext, id uuid.UUID) error {
	var existing m.ClassScheduleModel
	if err := s.DB.WithContext(ctx).
		Where("class_schedule_id = ? AND class_schedule_school_id = ?", id, tenant.SchoolID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "schedule"}
		}
		return err
	}
	if existing.ClassScheduleStatus == m.ScheduleStatusInactive {
		return nil
	}
	return s.DB.WithContext(ctx).Model(&existing).
		Update("class_schedule_status", m.ScheduleStatusInactive).Error
}

/* ---------- Reads ---------- */

// GetByID: entry inactive tetap bisa dibaca (addressable untuk exception/histori).
func (s *ScheduleService) GetByID(ctx context.Context, tenant TenantContext, id uuid.UUID) (*m.ClassScheduleModel, error) {
	var row m.ClassScheduleModel
	if err := s.DB.WithContext(ctx).
		Where("class_schedule_id = ? AND class_schedule_school_id = ?", id, tenant.SchoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "schedule"}
		}
		return nil, err
	}
	return &row, nil
}

func (s *ScheduleService) ListActive(ctx context.Context, tenant TenantContext, f ListSchedulesFilter) ([]m.ClassScheduleModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&m.ClassScheduleModel{}).
		Where("class_schedule_school_id = ?", tenant.SchoolID).
		Where("class_schedule_status = ?", m.ScheduleStatusActive)

	if f.ClassID != nil {
		q = q.Where("class_schedule_class_id = ?", *f.ClassID)
	}
	if f.SubjectID != nil {
		q = q.Where("class_schedule_subject_id = ?", *f.SubjectID)
	}
	if f.TeacherID != nil {
		q = q.Where("class_schedule_teacher_id = ?", *f.TeacherID)
	}
	if len(f.DaysOfWeek) > 0 {
		days := make(pq.Int64Array, len(f.DaysOfWeek))
		for i, d := range f.DaysOfWeek {
			days[i] = int64(d)
		}
		q = q.Where("class_schedule_day_of_week = ANY(?)", days)
	}
	if f.Semester != nil {
		q = q.Where("class_schedule_semester = ?", *f.Semester)
	}
	if f.AcademicYear != nil {
		q = q.Where("class_schedule_academic_year = ?", *f.AcademicYear)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []m.ClassScheduleModel
	q = q.Order("class_schedule_day_of_week ASC NULLS LAST, class_schedule_date ASC NULLS LAST, class_schedule_start_min ASC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

/* =========================
   Shared internals
   ========================= */

// validateKindAndWindow jaga dua invariant inti sebelum sentuh DB:
// tepat satu discriminant, dan start < end.
func validateKindAndWindow(dayOfWeek *int, date *time.Time, startMin, endMin int) error {
	if (dayOfWeek == nil) == (date == nil) {
		return newValidationError("tepat satu dari day_of_week / date harus diisi")
	}
	if dayOfWeek != nil && (*dayOfWeek < 1 || *dayOfWeek > 7) {
		return newValidationError("day_of_week harus 1..7")
	}
	iv := Interval{StartMin: startMin, EndMin: endMin}
	if !iv.Valid() {
		return newValidationError("start_time harus lebih kecil dari end_time")
	}
	return nil
}

// resolveRefs pastikan class/subject/teacher milik tenant yang sama.
// Referensi lintas tenant ditolak di sini (NotFound), bukan ditemukan belakangan.
// Sekalian ambil nama untuk snapshot display.
func resolveRefs(tx *gorm.DB, schoolID, classID, subjectID, teacherID uuid.UUID) (datatypes.JSONMap, error) {
	var class acadModel.ClassModel
	if err := tx.Select("class_id, class_name").
		Where("class_id = ? AND class_school_id = ?", classID, schoolID).
		First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "class"}
		}
		return nil, err
	}

	var subject acadModel.SubjectModel
	if err := tx.Select("subject_id, subject_name").
		Where("subject_id = ? AND subject_school_id = ?", subjectID, schoolID).
		First(&subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "subject"}
		}
		return nil, err
	}

	var teacher acadModel.TeacherModel
	if err := tx.Select("teacher_id, teacher_name").
		Where("teacher_id = ? AND teacher_school_id = ?", teacherID, schoolID).
		First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "teacher"}
		}
		return nil, err
	}

	return datatypes.JSONMap{
		"class_name":   class.ClassName,
		"subject_name": subject.SubjectName,
		"teacher_name": teacher.TeacherName,
	}, nil
}

/* =========================
   TX scope + advisory lock + retry
   =========================
   Check-then-act race: dua request concurrent bisa sama-sama lihat state
   bersih lalu sama-sama commit pasangan yang overlap. Satu-satunya tempat
   di codebase ini yang butuh atomicity ketat — advisory lock per tenant
   di dalam transaksi men-serialisasi semua write jadwal tenant tsb.
*/

func (s *ScheduleService) runScheduleTx(ctx context.Context, tenant TenantContext, fn func(tx *gorm.DB) error) error {
	run := func() error {
		return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(
				"SELECT pg_advisory_xact_lock(hashtextextended(?, 0))",
				"class_schedules:"+tenant.SchoolID.String(),
			).Error; err != nil {
				return err
			}
			return fn(tx)
		})
	}

	err := run()
	if err != nil && isRetryableTxError(err) {
		log.Printf("[ScheduleService] tx retry sekali (sqlstate transient): %v", err)
		if err = run(); err != nil && isRetryableTxError(err) {
			return ErrTransient
		}
	}
	return err
}

type pgSQLErr interface {
	SQLState() string
	Error() string
}

// 40001 = serialization_failure, 40P01 = deadlock_detected
func isRetryableTxError(err error) bool {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "40001", "40P01":
			return true
		}
	}
	return false
}

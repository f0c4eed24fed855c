// file: internals/features/school/schedules/service/exception_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "sekolahku_backend/internals/features/school/schedules/model"
)

/* =========================
   Exception ledger
   =========================
   Deviasi (libur / batal / reschedule / acara khusus) dicatat terhadap
   tanggal konkret sebuah entry, TANPA mengubah entry induk dan TANPA
   conflict check — reschedule adalah deviasi yang di-assert caller,
   bukan komitmen baru.
*/

type RecordExceptionInput struct {
	ScheduleID uuid.UUID
	Date       time.Time
	Type       m.ScheduleExceptionTypeEnum

	// Hanya untuk type = rescheduled
	NewDate     *time.Time
	NewStartMin *int
	NewEndMin   *int

	Reason *string
}

type ListExceptionsFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	ClassID  *uuid.UUID
	Limit    int
	Offset   int
}

// ExceptionWithParent: baris exception + snapshot display entry induk.
type ExceptionWithParent struct {
	Exception m.ClassScheduleExceptionModel
	Parent    m.ClassScheduleModel
}

type ExceptionService struct {
	DB *gorm.DB
}

func NewExceptionService(db *gorm.DB) *ExceptionService { return &ExceptionService{DB: db} }

func (s *ExceptionService) Record(ctx context.Context, tenant TenantContext, in RecordExceptionInput) (*m.ClassScheduleExceptionModel, error) {
	if err := validateExceptionInput(in); err != nil {
		return nil, err
	}

	// Induk harus resolve untuk tenant ini — entry inactive (historis) juga sah
	var parent m.ClassScheduleModel
	if err := s.DB.WithContext(ctx).
		Select("class_schedule_id").
		Where("class_schedule_id = ? AND class_schedule_school_id = ?", in.ScheduleID, tenant.SchoolID).
		First(&parent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "schedule"}
		}
		return nil, err
	}

	row := m.ClassScheduleExceptionModel{
		ScheduleExceptionSchoolID:    tenant.SchoolID,
		ScheduleExceptionScheduleID:  in.ScheduleID,
		ScheduleExceptionDate:        in.Date,
		ScheduleExceptionType:        in.Type,
		ScheduleExceptionNewDate:     in.NewDate,
		ScheduleExceptionNewStartMin: in.NewStartMin,
		ScheduleExceptionNewEndMin:   in.NewEndMin,
		ScheduleExceptionReason:      in.Reason,
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func validateExceptionInput(in RecordExceptionInput) error {
	switch in.Type {
	case m.ExceptionTypeHoliday, m.ExceptionTypeCancelled, m.ExceptionTypeRescheduled, m.ExceptionTypeSpecialEvent:
	default:
		return newValidationError("exception_type %q tidak dikenal", string(in.Type))
	}

	hasReschedule := in.NewDate != nil || in.NewStartMin != nil || in.NewEndMin != nil
	if hasReschedule && in.Type != m.ExceptionTypeRescheduled {
		return newValidationError("field new_* hanya untuk type rescheduled")
	}
	if in.NewStartMin != nil && in.NewEndMin != nil {
		iv := Interval{StartMin: *in.NewStartMin, EndMin: *in.NewEndMin}
		if !iv.Valid() {
			return newValidationError("new_start_time harus lebih kecil dari new_end_time")
		}
	}
	return nil
}

// List join balik ke entry induk untuk display (nama kelas/mapel/guru dari snapshot).
func (s *ExceptionService) List(ctx context.Context, tenant TenantContext, f ListExceptionsFilter) ([]ExceptionWithParent, int64, error) {
	q := s.DB.WithContext(ctx).Model(&m.ClassScheduleExceptionModel{}).
		Where("schedule_exception_school_id = ?", tenant.SchoolID)

	if f.DateFrom != nil {
		q = q.Where("schedule_exception_date >= ?", f.DateFrom.Format("2006-01-02"))
	}
	if f.DateTo != nil {
		q = q.Where("schedule_exception_date <= ?", f.DateTo.Format("2006-01-02"))
	}
	if f.ClassID != nil {
		q = q.Where(
			"schedule_exception_schedule_id IN (?)",
			s.DB.Model(&m.ClassScheduleModel{}).
				Select("class_schedule_id").
				Where("class_schedule_school_id = ? AND class_schedule_class_id = ?", tenant.SchoolID, *f.ClassID),
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var exceptions []m.ClassScheduleExceptionModel
	q = q.Order("schedule_exception_date ASC, schedule_exception_created_at ASC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	if err := q.Find(&exceptions).Error; err != nil {
		return nil, 0, err
	}
	if len(exceptions) == 0 {
		return nil, total, nil
	}

	// Ambil induk sekali jalan lalu map by id
	parentIDs := make([]uuid.UUID, 0, len(exceptions))
	seen := map[uuid.UUID]struct{}{}
	for _, ex := range exceptions {
		if _, ok := seen[ex.ScheduleExceptionScheduleID]; !ok {
			seen[ex.ScheduleExceptionScheduleID] = struct{}{}
			parentIDs = append(parentIDs, ex.ScheduleExceptionScheduleID)
		}
	}
	var parents []m.ClassScheduleModel
	if err := s.DB.WithContext(ctx).
		Where("class_schedule_id IN ?", parentIDs).
		Find(&parents).Error; err != nil {
		return nil, 0, err
	}
	parentByID := make(map[uuid.UUID]m.ClassScheduleModel, len(parents))
	for _, p := range parents {
		parentByID[p.ClassScheduleID] = p
	}

	out := make([]ExceptionWithParent, 0, len(exceptions))
	for _, ex := range exceptions {
		out = append(out, ExceptionWithParent{
			Exception: ex,
			Parent:    parentByID[ex.ScheduleExceptionScheduleID],
		})
	}
	return out, total, nil
}

// file: internals/features/school/schedules/model/class_schedule_exception_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleExceptionTypeEnum string

const (
	ExceptionTypeHoliday      ScheduleExceptionTypeEnum = "holiday"
	ExceptionTypeCancelled    ScheduleExceptionTypeEnum = "cancelled"
	ExceptionTypeRescheduled  ScheduleExceptionTypeEnum = "rescheduled"
	ExceptionTypeSpecialEvent ScheduleExceptionTypeEnum = "special_event"
)

/* =====================
   MODEL
   =====================
   Catatan deviasi terhadap satu tanggal konkret dari sebuah entry.
   Tidak pernah mengubah entry induk dan tidak ikut conflict check.
*/

type ClassScheduleExceptionModel struct {
	// PK
	ScheduleExceptionID uuid.UUID `gorm:"column:schedule_exception_id;type:uuid;default:gen_random_uuid();primaryKey" json:"schedule_exception_id"`

	// Tenant guard
	ScheduleExceptionSchoolID uuid.UUID `gorm:"column:schedule_exception_school_id;type:uuid;not null;index" json:"schedule_exception_school_id"`

	// FK ke entry induk (boleh induk yang sudah inactive — histori tetap bisa dirujuk)
	ScheduleExceptionScheduleID uuid.UUID `gorm:"column:schedule_exception_schedule_id;type:uuid;not null;index" json:"schedule_exception_schedule_id"`

	// Tanggal konkret yang dideviasikan
	ScheduleExceptionDate time.Time `gorm:"column:schedule_exception_date;type:date;not null" json:"schedule_exception_date"`

	ScheduleExceptionType ScheduleExceptionTypeEnum `gorm:"column:schedule_exception_type;type:schedule_exception_type_enum;not null" json:"schedule_exception_type"`

	// Hanya bermakna saat type = rescheduled
	ScheduleExceptionNewDate     *time.Time `gorm:"column:schedule_exception_new_date;type:date" json:"schedule_exception_new_date,omitempty"`
	ScheduleExceptionNewStartMin *int       `gorm:"column:schedule_exception_new_start_min;type:smallint" json:"schedule_exception_new_start_min,omitempty"`
	ScheduleExceptionNewEndMin   *int       `gorm:"column:schedule_exception_new_end_min;type:smallint" json:"schedule_exception_new_end_min,omitempty"`

	ScheduleExceptionReason *string `gorm:"column:schedule_exception_reason;type:text" json:"schedule_exception_reason,omitempty"`

	// Audit
	ScheduleExceptionCreatedAt time.Time `gorm:"column:schedule_exception_created_at;type:timestamptz;not null;autoCreateTime" json:"schedule_exception_created_at"`
	ScheduleExceptionUpdatedAt time.Time `gorm:"column:schedule_exception_updated_at;type:timestamptz;not null;autoUpdateTime" json:"schedule_exception_updated_at"`
}

func (ClassScheduleExceptionModel) TableName() string { return "class_schedule_exceptions" }

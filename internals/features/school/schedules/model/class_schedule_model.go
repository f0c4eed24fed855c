// file: internals/features/school/schedules/model/class_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ClassScheduleStatusEnum string

const (
	ScheduleStatusActive   ClassScheduleStatusEnum = "active"
	ScheduleStatusInactive ClassScheduleStatusEnum = "inactive"
)

/* =====================
   MODEL
   =====================
   Satu baris = satu penugasan (kelas, mapel, guru, jendela waktu).
   Validity kind: TEPAT SATU dari day_of_week / date yang terisi
   (recurring mingguan vs sesi sekali jalan) — dijaga service layer
   dan DB CHECK (num_nonnulls(day_of_week, date) = 1).
*/

type ClassScheduleModel struct {
	// PK
	ClassScheduleID uuid.UUID `gorm:"column:class_schedule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_schedule_id"`

	// Tenant guard
	ClassScheduleSchoolID uuid.UUID `gorm:"column:class_schedule_school_id;type:uuid;not null;index" json:"class_schedule_school_id"`

	// Referensi (FK tenant-safe, diverifikasi service saat create/update)
	ClassScheduleClassID   uuid.UUID `gorm:"column:class_schedule_class_id;type:uuid;not null;index" json:"class_schedule_class_id"`
	ClassScheduleSubjectID uuid.UUID `gorm:"column:class_schedule_subject_id;type:uuid;not null" json:"class_schedule_subject_id"`
	ClassScheduleTeacherID uuid.UUID `gorm:"column:class_schedule_teacher_id;type:uuid;not null;index" json:"class_schedule_teacher_id"`

	// Validity kind — tepat satu yang terisi
	ClassScheduleDayOfWeek *int       `gorm:"column:class_schedule_day_of_week;type:smallint" json:"class_schedule_day_of_week,omitempty"` // 1=Senin .. 7=Minggu
	ClassScheduleDate      *time.Time `gorm:"column:class_schedule_date;type:date" json:"class_schedule_date,omitempty"`

	// Jendela waktu [start, end) dalam menit-sejak-tengah-malam.
	// Backstop slot dikelola di DDL migrasi sebagai PARTIAL unique index
	// (tag gorm tidak bisa menyatakan WHERE) — baris inactive bebas slot-nya:
	//   CREATE UNIQUE INDEX uq_class_schedule_slot ON class_schedules
	//     (class_schedule_class_id, class_schedule_subject_id,
	//      class_schedule_day_of_week, class_schedule_start_min, class_schedule_end_min)
	//     WHERE class_schedule_status = 'active';
	ClassScheduleStartMin int `gorm:"column:class_schedule_start_min;type:smallint;not null" json:"class_schedule_start_min"`
	ClassScheduleEndMin   int `gorm:"column:class_schedule_end_min;type:smallint;not null" json:"class_schedule_end_min"`

	// Metadata opsional
	ClassScheduleRoom         *string `gorm:"column:class_schedule_room;type:varchar(80)" json:"class_schedule_room,omitempty"`
	ClassScheduleSemester     *string `gorm:"column:class_schedule_semester;type:varchar(40)" json:"class_schedule_semester,omitempty"`
	ClassScheduleAcademicYear *string `gorm:"column:class_schedule_academic_year;type:varchar(20)" json:"class_schedule_academic_year,omitempty"`
	ClassScheduleNotes        *string `gorm:"column:class_schedule_notes;type:text" json:"class_schedule_notes,omitempty"`

	// Lifecycle — soft delete = set inactive; baris dipertahankan untuk histori
	ClassScheduleStatus ClassScheduleStatusEnum `gorm:"column:class_schedule_status;type:class_schedule_status_enum;not null;default:'active';index" json:"class_schedule_status"`

	// Snapshot display (diisi backend saat create, dipakai projection tanpa join)
	ClassScheduleSnapshot datatypes.JSONMap `gorm:"column:class_schedule_snapshot;type:jsonb;not null" json:"class_schedule_snapshot"`

	// Audit
	ClassScheduleCreatedAt time.Time `gorm:"column:class_schedule_created_at;type:timestamptz;not null;autoCreateTime" json:"class_schedule_created_at"`
	ClassScheduleUpdatedAt time.Time `gorm:"column:class_schedule_updated_at;type:timestamptz;not null;autoUpdateTime" json:"class_schedule_updated_at"`
}

func (ClassScheduleModel) TableName() string { return "class_schedules" }

// Guard: snapshot tidak boleh NULL saat create/update
func (m *ClassScheduleModel) BeforeSave(tx *gorm.DB) error {
	if m.ClassScheduleSnapshot == nil {
		m.ClassScheduleSnapshot = datatypes.JSONMap{}
	}
	return nil
}

// IsRecurring true kalau entry terikat day-of-week (bukan dated).
func (m *ClassScheduleModel) IsRecurring() bool { return m.ClassScheduleDayOfWeek != nil }

// IsActive true kalau entry masih ikut conflict check & projection.
func (m *ClassScheduleModel) IsActive() bool { return m.ClassScheduleStatus == ScheduleStatusActive }

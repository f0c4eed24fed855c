// file: internals/features/school/academics/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	// PK
	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`

	// Tenant guard
	TeacherSchoolID uuid.UUID `gorm:"column:teacher_school_id;type:uuid;not null;index" json:"teacher_school_id"`

	// Relasi opsional ke akun user (identity dikelola di luar modul ini)
	TeacherUserID *uuid.UUID `gorm:"column:teacher_user_id;type:uuid" json:"teacher_user_id,omitempty"`

	// Identitas
	TeacherName  string  `gorm:"column:teacher_name;type:varchar(120);not null" json:"teacher_name"`
	TeacherNIP   *string `gorm:"column:teacher_nip;type:varchar(40)" json:"teacher_nip,omitempty"`
	TeacherPhone *string `gorm:"column:teacher_phone;type:varchar(30)" json:"teacher_phone,omitempty"`

	// Audit
	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;type:timestamptz;not null;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;type:timestamptz;not null;autoUpdateTime" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }

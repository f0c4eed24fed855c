// file: internals/features/school/academics/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =====================
   MODEL
   ===================== */

type ClassModel struct {
	// PK
	ClassID uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`

	// Tenant guard
	ClassSchoolID uuid.UUID `gorm:"column:class_school_id;type:uuid;not null;index" json:"class_school_id"`

	// Identitas
	ClassName  string  `gorm:"column:class_name;type:varchar(120);not null" json:"class_name"`
	ClassCode  *string `gorm:"column:class_code;type:varchar(40)" json:"class_code,omitempty"`
	ClassLevel *string `gorm:"column:class_level;type:varchar(40)" json:"class_level,omitempty"`

	// Audit
	ClassCreatedAt time.Time      `gorm:"column:class_created_at;type:timestamptz;not null;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;type:timestamptz;not null;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

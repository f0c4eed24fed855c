// file: internals/features/school/academics/dto/academics_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/academics/model"
)

/* =========================================================
   CLASS
   ========================================================= */

type CreateClassRequest struct {
	ClassName  string  `json:"class_name"  validate:"required,max=120"`
	ClassCode  *string `json:"class_code"  validate:"omitempty,max=40"`
	ClassLevel *string `json:"class_level" validate:"omitempty,max=40"`
}

func (r CreateClassRequest) ToModel(schoolID uuid.UUID) m.ClassModel {
	return m.ClassModel{
		ClassSchoolID: schoolID,
		ClassName:     r.ClassName,
		ClassCode:     r.ClassCode,
		ClassLevel:    r.ClassLevel,
	}
}

type ClassResponse struct {
	ClassID        uuid.UUID `json:"class_id"`
	ClassName      string    `json:"class_name"`
	ClassCode      *string   `json:"class_code,omitempty"`
	ClassLevel     *string   `json:"class_level,omitempty"`
	ClassCreatedAt time.Time `json:"class_created_at"`
}

func FromClassModel(row *m.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:        row.ClassID,
		ClassName:      row.ClassName,
		ClassCode:      row.ClassCode,
		ClassLevel:     row.ClassLevel,
		ClassCreatedAt: row.ClassCreatedAt,
	}
}

func FromClassModels(rows []m.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromClassModel(&rows[i]))
	}
	return out
}

/* =========================================================
   SUBJECT
   ========================================================= */

type CreateSubjectRequest struct {
	SubjectName string  `json:"subject_name" validate:"required,max=120"`
	SubjectCode *string `json:"subject_code" validate:"omitempty,max=40"`
}

func (r CreateSubjectRequest) ToModel(schoolID uuid.UUID) m.SubjectModel {
	return m.SubjectModel{
		SubjectSchoolID: schoolID,
		SubjectName:     r.SubjectName,
		SubjectCode:     r.SubjectCode,
	}
}

type SubjectResponse struct {
	SubjectID        uuid.UUID `json:"subject_id"`
	SubjectName      string    `json:"subject_name"`
	SubjectCode      *string   `json:"subject_code,omitempty"`
	SubjectCreatedAt time.Time `json:"subject_created_at"`
}

func FromSubjectModel(row *m.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:        row.SubjectID,
		SubjectName:      row.SubjectName,
		SubjectCode:      row.SubjectCode,
		SubjectCreatedAt: row.SubjectCreatedAt,
	}
}

func FromSubjectModels(rows []m.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromSubjectModel(&rows[i]))
	}
	return out
}

/* =========================================================
   TEACHER
   ========================================================= */

type CreateTeacherRequest struct {
	TeacherName  string     `json:"teacher_name"  validate:"required,max=120"`
	TeacherNIP   *string    `json:"teacher_nip"   validate:"omitempty,max=40"`
	TeacherPhone *string    `json:"teacher_phone" validate:"omitempty,max=30"`
	TeacherUserID *uuid.UUID `json:"teacher_user_id" validate:"omitempty"`
}

func (r CreateTeacherRequest) ToModel(schoolID uuid.UUID) m.TeacherModel {
	return m.TeacherModel{
		TeacherSchoolID: schoolID,
		TeacherName:     r.TeacherName,
		TeacherNIP:      r.TeacherNIP,
		TeacherPhone:    r.TeacherPhone,
		TeacherUserID:   r.TeacherUserID,
	}
}

type TeacherResponse struct {
	TeacherID        uuid.UUID `json:"teacher_id"`
	TeacherName      string    `json:"teacher_name"`
	TeacherNIP       *string   `json:"teacher_nip,omitempty"`
	TeacherPhone     *string   `json:"teacher_phone,omitempty"`
	TeacherCreatedAt time.Time `json:"teacher_created_at"`
}

func FromTeacherModel(row *m.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID:        row.TeacherID,
		TeacherName:      row.TeacherName,
		TeacherNIP:       row.TeacherNIP,
		TeacherPhone:     row.TeacherPhone,
		TeacherCreatedAt: row.TeacherCreatedAt,
	}
}

func FromTeacherModels(rows []m.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromTeacherModel(&rows[i]))
	}
	return out
}

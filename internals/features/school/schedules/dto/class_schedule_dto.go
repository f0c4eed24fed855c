// file: internals/features/school/schedules/dto/class_schedule_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/schedules/model"
	svc "sekolahku_backend/internals/features/school/schedules/service"
)

/* =========================================================
   Helpers
   ========================================================= */

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateClassScheduleRequest struct {
	// wajib
	ClassScheduleClassID   uuid.UUID `json:"class_schedule_class_id"   validate:"required"`
	ClassScheduleSubjectID uuid.UUID `json:"class_schedule_subject_id" validate:"required"`
	ClassScheduleTeacherID uuid.UUID `json:"class_schedule_teacher_id" validate:"required"`
	ClassScheduleStartTime string    `json:"class_schedule_start_time" validate:"required"` // "HH:mm" / "HH:mm:ss"
	ClassScheduleEndTime   string    `json:"class_schedule_end_time"   validate:"required"`

	// validity kind — tepat satu (service yang menegakkan, bukan validator)
	ClassScheduleDayOfWeek *int   `json:"class_schedule_day_of_week" validate:"omitempty,min=1,max=7"`
	ClassScheduleDate      string `json:"class_schedule_date"        validate:"omitempty,datetime=2006-01-02"`

	// opsional
	ClassScheduleRoom         *string `json:"class_schedule_room"          validate:"omitempty,max=80"`
	ClassScheduleSemester     *string `json:"class_schedule_semester"      validate:"omitempty,max=40"`
	ClassScheduleAcademicYear *string `json:"class_schedule_academic_year" validate:"omitempty,max=20"`
	ClassScheduleNotes        *string `json:"class_schedule_notes"         validate:"omitempty"`
}

func (r CreateClassScheduleRequest) ToInput() (svc.CreateScheduleInput, error) {
	var in svc.CreateScheduleInput

	start, err := svc.ParseTimeOfDay(r.ClassScheduleStartTime)
	if err != nil {
		return in, err
	}
	end, err := svc.ParseTimeOfDay(r.ClassScheduleEndTime)
	if err != nil {
		return in, err
	}
	date, err := parseDate(r.ClassScheduleDate)
	if err != nil {
		return in, err
	}

	in = svc.CreateScheduleInput{
		ClassID:      r.ClassScheduleClassID,
		SubjectID:    r.ClassScheduleSubjectID,
		TeacherID:    r.ClassScheduleTeacherID,
		DayOfWeek:    r.ClassScheduleDayOfWeek,
		Date:         date,
		StartMin:     start,
		EndMin:       end,
		Room:         r.ClassScheduleRoom,
		Semester:     r.ClassScheduleSemester,
		AcademicYear: r.ClassScheduleAcademicYear,
		Notes:        r.ClassScheduleNotes,
	}
	return in, nil
}

// UpdateClassScheduleRequest — PATCH, semua field pointer ("set if present").
type UpdateClassScheduleRequest struct {
	ClassScheduleClassID   *uuid.UUID `json:"class_schedule_class_id"   validate:"omitempty"`
	ClassScheduleSubjectID *uuid.UUID `json:"class_schedule_subject_id" validate:"omitempty"`
	ClassScheduleTeacherID *uuid.UUID `json:"class_schedule_teacher_id" validate:"omitempty"`

	ClassScheduleDayOfWeek *int    `json:"class_schedule_day_of_week" validate:"omitempty,min=1,max=7"`
	ClassScheduleDate      *string `json:"class_schedule_date"        validate:"omitempty,datetime=2006-01-02"`

	ClassScheduleStartTime *string `json:"class_schedule_start_time" validate:"omitempty"`
	ClassScheduleEndTime   *string `json:"class_schedule_end_time"   validate:"omitempty"`

	ClassScheduleRoom         *string `json:"class_schedule_room"          validate:"omitempty,max=80"`
	ClassScheduleSemester     *string `json:"class_schedule_semester"      validate:"omitempty,max=40"`
	ClassScheduleAcademicYear *string `json:"class_schedule_academic_year" validate:"omitempty,max=20"`
	ClassScheduleNotes        *string `json:"class_schedule_notes"         validate:"omitempty"`
}

func (r UpdateClassScheduleRequest) ToInput() (svc.UpdateScheduleInput, error) {
	var in svc.UpdateScheduleInput

	if r.ClassScheduleStartTime != nil {
		v, err := svc.ParseTimeOfDay(*r.ClassScheduleStartTime)
		if err != nil {
			return in, err
		}
		in.StartMin = &v
	}
	if r.ClassScheduleEndTime != nil {
		v, err := svc.ParseTimeOfDay(*r.ClassScheduleEndTime)
		if err != nil {
			return in, err
		}
		in.EndMin = &v
	}
	if r.ClassScheduleDate != nil {
		d, err := parseDate(*r.ClassScheduleDate)
		if err != nil {
			return in, err
		}
		// "" lolos validator omitempty → perlakukan sebagai field absen,
		// field lain di patch tetap jalan
		if d != nil {
			in.Date = d
		}
	}

	in.ClassID = r.ClassScheduleClassID
	in.SubjectID = r.ClassScheduleSubjectID
	in.TeacherID = r.ClassScheduleTeacherID
	in.DayOfWeek = r.ClassScheduleDayOfWeek
	in.Room = r.ClassScheduleRoom
	in.Semester = r.ClassScheduleSemester
	in.AcademicYear = r.ClassScheduleAcademicYear
	in.Notes = r.ClassScheduleNotes
	return in, nil
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type ClassScheduleResponse struct {
	ClassScheduleID        uuid.UUID `json:"class_schedule_id"`
	ClassScheduleSchoolID  uuid.UUID `json:"class_schedule_school_id"`
	ClassScheduleClassID   uuid.UUID `json:"class_schedule_class_id"`
	ClassScheduleSubjectID uuid.UUID `json:"class_schedule_subject_id"`
	ClassScheduleTeacherID uuid.UUID `json:"class_schedule_teacher_id"`

	ClassScheduleDayOfWeek *int    `json:"class_schedule_day_of_week,omitempty"`
	ClassScheduleDate      *string `json:"class_schedule_date,omitempty"`

	ClassScheduleStartTime string `json:"class_schedule_start_time"` // "HH:mm"
	ClassScheduleEndTime   string `json:"class_schedule_end_time"`

	ClassScheduleRoom         *string `json:"class_schedule_room,omitempty"`
	ClassScheduleSemester     *string `json:"class_schedule_semester,omitempty"`
	ClassScheduleAcademicYear *string `json:"class_schedule_academic_year,omitempty"`
	ClassScheduleNotes        *string `json:"class_schedule_notes,omitempty"`

	ClassScheduleStatus   string         `json:"class_schedule_status"`
	ClassScheduleSnapshot map[string]any `json:"class_schedule_snapshot"`

	ClassScheduleCreatedAt time.Time `json:"class_schedule_created_at"`
	ClassScheduleUpdatedAt time.Time `json:"class_schedule_updated_at"`
}

func FromModel(row *m.ClassScheduleModel) ClassScheduleResponse {
	return ClassScheduleResponse{
		ClassScheduleID:        row.ClassScheduleID,
		ClassScheduleSchoolID:  row.ClassScheduleSchoolID,
		ClassScheduleClassID:   row.ClassScheduleClassID,
		ClassScheduleSubjectID: row.ClassScheduleSubjectID,
		ClassScheduleTeacherID: row.ClassScheduleTeacherID,

		ClassScheduleDayOfWeek: row.ClassScheduleDayOfWeek,
		ClassScheduleDate:      formatDate(row.ClassScheduleDate),

		ClassScheduleStartTime: svc.FormatTimeOfDay(row.ClassScheduleStartMin),
		ClassScheduleEndTime:   svc.FormatTimeOfDay(row.ClassScheduleEndMin),

		ClassScheduleRoom:         row.ClassScheduleRoom,
		ClassScheduleSemester:     row.ClassScheduleSemester,
		ClassScheduleAcademicYear: row.ClassScheduleAcademicYear,
		ClassScheduleNotes:        row.ClassScheduleNotes,

		ClassScheduleStatus:   string(row.ClassScheduleStatus),
		ClassScheduleSnapshot: row.ClassScheduleSnapshot,

		ClassScheduleCreatedAt: row.ClassScheduleCreatedAt,
		ClassScheduleUpdatedAt: row.ClassScheduleUpdatedAt,
	}
}

func FromModels(rows []m.ClassScheduleModel) []ClassScheduleResponse {
	out := make([]ClassScheduleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

/* =========================================================
   3) WEEKLY VIEW
   ========================================================= */

var dayNames = map[int]string{
	1: "monday", 2: "tuesday", 3: "wednesday", 4: "thursday",
	5: "friday", 6: "saturday", 7: "sunday",
}

// WeeklyViewResponse: SELALU 7 bucket, kosong pun tetap ada.
type WeeklyViewResponse map[string][]ClassScheduleResponse

func FromWeeklyView(view svc.WeeklyView) WeeklyViewResponse {
	out := make(WeeklyViewResponse, 7)
	for day := 1; day <= 7; day++ {
		out[dayNames[day]] = FromModels(view[day])
	}
	return out
}

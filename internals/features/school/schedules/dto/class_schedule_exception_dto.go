// file: internals/features/school/schedules/dto/class_schedule_exception_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "sekolahku_backend/internals/features/school/schedules/model"
	svc "sekolahku_backend/internals/features/school/schedules/service"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type RecordScheduleExceptionRequest struct {
	ScheduleExceptionScheduleID uuid.UUID `json:"schedule_exception_schedule_id" validate:"required"`
	ScheduleExceptionDate       string    `json:"schedule_exception_date"        validate:"required,datetime=2006-01-02"`
	ScheduleExceptionType       string    `json:"schedule_exception_type"        validate:"required,oneof=holiday cancelled rescheduled special_event"`

	// hanya untuk type = rescheduled
	ScheduleExceptionNewDate      *string `json:"schedule_exception_new_date"       validate:"omitempty,datetime=2006-01-02"`
	ScheduleExceptionNewStartTime *string `json:"schedule_exception_new_start_time" validate:"omitempty"`
	ScheduleExceptionNewEndTime   *string `json:"schedule_exception_new_end_time"   validate:"omitempty"`

	ScheduleExceptionReason *string `json:"schedule_exception_reason" validate:"omitempty"`
}

func (r RecordScheduleExceptionRequest) ToInput() (svc.RecordExceptionInput, error) {
	var in svc.RecordExceptionInput

	date, err := time.Parse("2006-01-02", r.ScheduleExceptionDate)
	if err != nil {
		return in, err
	}

	var newDate *time.Time
	if r.ScheduleExceptionNewDate != nil {
		if newDate, err = parseDate(*r.ScheduleExceptionNewDate); err != nil {
			return in, err
		}
	}
	var newStart, newEnd *int
	if r.ScheduleExceptionNewStartTime != nil {
		v, err := svc.ParseTimeOfDay(*r.ScheduleExceptionNewStartTime)
		if err != nil {
			return in, err
		}
		newStart = &v
	}
	if r.ScheduleExceptionNewEndTime != nil {
		v, err := svc.ParseTimeOfDay(*r.ScheduleExceptionNewEndTime)
		if err != nil {
			return in, err
		}
		newEnd = &v
	}

	in = svc.RecordExceptionInput{
		ScheduleID:  r.ScheduleExceptionScheduleID,
		Date:        date,
		Type:        m.ScheduleExceptionTypeEnum(r.ScheduleExceptionType),
		NewDate:     newDate,
		NewStartMin: newStart,
		NewEndMin:   newEnd,
		Reason:      r.ScheduleExceptionReason,
	}
	return in, nil
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type ScheduleExceptionResponse struct {
	ScheduleExceptionID         uuid.UUID `json:"schedule_exception_id"`
	ScheduleExceptionScheduleID uuid.UUID `json:"schedule_exception_schedule_id"`
	ScheduleExceptionDate       string    `json:"schedule_exception_date"`
	ScheduleExceptionType       string    `json:"schedule_exception_type"`

	ScheduleExceptionNewDate      *string `json:"schedule_exception_new_date,omitempty"`
	ScheduleExceptionNewStartTime *string `json:"schedule_exception_new_start_time,omitempty"`
	ScheduleExceptionNewEndTime   *string `json:"schedule_exception_new_end_time,omitempty"`

	ScheduleExceptionReason *string `json:"schedule_exception_reason,omitempty"`

	// display dari snapshot entry induk
	ClassName   string `json:"class_name,omitempty"`
	SubjectName string `json:"subject_name,omitempty"`
	TeacherName string `json:"teacher_name,omitempty"`

	ScheduleExceptionCreatedAt time.Time `json:"schedule_exception_created_at"`
}

func formatMinPtr(min *int) *string {
	if min == nil {
		return nil
	}
	s := svc.FormatTimeOfDay(*min)
	return &s
}

func FromExceptionModel(row *m.ClassScheduleExceptionModel) ScheduleExceptionResponse {
	return ScheduleExceptionResponse{
		ScheduleExceptionID:           row.ScheduleExceptionID,
		ScheduleExceptionScheduleID:   row.ScheduleExceptionScheduleID,
		ScheduleExceptionDate:         row.ScheduleExceptionDate.Format("2006-01-02"),
		ScheduleExceptionType:         string(row.ScheduleExceptionType),
		ScheduleExceptionNewDate:      formatDate(row.ScheduleExceptionNewDate),
		ScheduleExceptionNewStartTime: formatMinPtr(row.ScheduleExceptionNewStartMin),
		ScheduleExceptionNewEndTime:   formatMinPtr(row.ScheduleExceptionNewEndMin),
		ScheduleExceptionReason:       row.ScheduleExceptionReason,
		ScheduleExceptionCreatedAt:    row.ScheduleExceptionCreatedAt,
	}
}

func FromExceptionWithParent(row svc.ExceptionWithParent) ScheduleExceptionResponse {
	resp := FromExceptionModel(&row.Exception)
	if snap := row.Parent.ClassScheduleSnapshot; snap != nil {
		if v, ok := snap["class_name"].(string); ok {
			resp.ClassName = v
		}
		if v, ok := snap["subject_name"].(string); ok {
			resp.SubjectName = v
		}
		if v, ok := snap["teacher_name"].(string); ok {
			resp.TeacherName = v
		}
	}
	return resp
}

func FromExceptionsWithParent(rows []svc.ExceptionWithParent) []ScheduleExceptionResponse {
	out := make([]ScheduleExceptionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromExceptionWithParent(rows[i]))
	}
	return out
}

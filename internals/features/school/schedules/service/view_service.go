// file: internals/features/school/schedules/service/view_service.go
package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "sekolahku_backend/internals/features/school/schedules/model"
)

/* =========================
   Query / projection layer
   =========================
   Read-only, tanpa conflict logic, tanpa locking — reader boleh lihat
   state pre/post write, tidak pernah entry setengah jadi.
*/

type ViewFilter struct {
	Semester     *string
	AcademicYear *string
}

// WeeklyView: 7 bucket day-of-week (1=Senin .. 7=Minggu), SELALU lengkap
// walau kosong; isi hanya entry recurring aktif, urut start_time naik.
type WeeklyView map[int][]m.ClassScheduleModel

type ViewService struct {
	DB *gorm.DB
}

func NewViewService(db *gorm.DB) *ViewService { return &ViewService{DB: db} }

func (s *ViewService) WeeklyViewForClass(ctx context.Context, tenant TenantContext, classID uuid.UUID, f ViewFilter) (WeeklyView, error) {
	q := s.DB.WithContext(ctx).Model(&m.ClassScheduleModel{}).
		Where("class_schedule_school_id = ?", tenant.SchoolID).
		Where("class_schedule_class_id = ?", classID).
		Where("class_schedule_status = ?", m.ScheduleStatusActive).
		Where("class_schedule_day_of_week IS NOT NULL") // dated entries tidak masuk weekly view

	q = applyViewFilter(q, f)

	var rows []m.ClassScheduleModel
	if err := q.Order("class_schedule_day_of_week ASC, class_schedule_start_min ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return bucketWeekly(rows), nil
}

// bucketWeekly murni: bagi rows recurring ke 7 bucket, semua bucket selalu ada.
func bucketWeekly(rows []m.ClassScheduleModel) WeeklyView {
	view := make(WeeklyView, 7)
	for day := 1; day <= 7; day++ {
		view[day] = []m.ClassScheduleModel{}
	}
	for _, row := range rows {
		if row.ClassScheduleDayOfWeek == nil {
			continue
		}
		day := *row.ClassScheduleDayOfWeek
		if day < 1 || day > 7 {
			continue
		}
		view[day] = append(view[day], row)
	}
	for day := 1; day <= 7; day++ {
		bucket := view[day]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].ClassScheduleStartMin < bucket[j].ClassScheduleStartMin
		})
	}
	return view
}

// ViewForTeacher: list datar entry aktif si guru — recurring dan dated
// digabung. Recurring duluan urut (day_of_week, start), lalu dated urut
// (date, start).
func (s *ViewService) ViewForTeacher(ctx context.Context, tenant TenantContext, teacherID uuid.UUID, f ViewFilter) ([]m.ClassScheduleModel, error) {
	q := s.DB.WithContext(ctx).Model(&m.ClassScheduleModel{}).
		Where("class_schedule_school_id = ?", tenant.SchoolID).
		Where("class_schedule_teacher_id = ?", teacherID).
		Where("class_schedule_status = ?", m.ScheduleStatusActive)

	q = applyViewFilter(q, f)

	var rows []m.ClassScheduleModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	sortTeacherView(rows)
	return rows, nil
}

// sortTeacherView murni, deterministik (dipakai juga di test).
func sortTeacherView(rows []m.ClassScheduleModel) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := &rows[i], &rows[j]
		aRec, bRec := a.ClassScheduleDayOfWeek != nil, b.ClassScheduleDayOfWeek != nil
		if aRec != bRec {
			return aRec // recurring duluan
		}
		if aRec {
			if *a.ClassScheduleDayOfWeek != *b.ClassScheduleDayOfWeek {
				return *a.ClassScheduleDayOfWeek < *b.ClassScheduleDayOfWeek
			}
		} else {
			if !a.ClassScheduleDate.Equal(*b.ClassScheduleDate) {
				return a.ClassScheduleDate.Before(*b.ClassScheduleDate)
			}
		}
		return a.ClassScheduleStartMin < b.ClassScheduleStartMin
	})
}

func applyViewFilter(q *gorm.DB, f ViewFilter) *gorm.DB {
	if f.Semester != nil {
		q = q.Where("class_schedule_semester = ?", *f.Semester)
	}
	if f.AcademicYear != nil {
		q = q.Where("class_schedule_academic_year = ?", *f.AcademicYear)
	}
	return q
}

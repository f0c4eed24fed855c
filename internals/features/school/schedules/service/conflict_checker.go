// file: internals/features/school/schedules/service/conflict_checker.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "sekolahku_backend/internals/features/school/schedules/model"
)

/* =========================
   Conflict checker
   =========================
   Comparison set: entry AKTIF, tenant sama, discriminant validity-kind sama
   (recurring → day_of_week sama; dated → date sama). Dua kind TIDAK pernah
   dibandingkan satu sama lain (desain sengaja dipertahankan).
   Urutan evaluasi deterministik: class check dulu, baru teacher check.
*/

type ConflictCandidate struct {
	// Nil saat create; saat update diisi supaya entry tidak bentrok dengan dirinya sendiri
	ExcludeScheduleID uuid.UUID

	SchoolID  uuid.UUID
	ClassID   uuid.UUID
	TeacherID uuid.UUID

	// Tepat satu yang terisi (sudah divalidasi pemanggil)
	DayOfWeek *int
	Date      *time.Time

	Window Interval
}

// fetchComparisonSet tarik sekali semua entry yang mungkin bentrok
// (class sama ATAU teacher sama) dalam scope discriminant kandidat.
func fetchComparisonSet(tx *gorm.DB, cand ConflictCandidate) ([]m.ClassScheduleModel, error) {
	q := tx.Model(&m.ClassScheduleModel{}).
		Where("class_schedule_school_id = ?", cand.SchoolID).
		Where("class_schedule_status = ?", m.ScheduleStatusActive).
		Where("(class_schedule_class_id = ? OR class_schedule_teacher_id = ?)", cand.ClassID, cand.TeacherID)

	if cand.DayOfWeek != nil {
		q = q.Where("class_schedule_day_of_week = ?", *cand.DayOfWeek)
	} else {
		q = q.Where("class_schedule_date = ?", cand.Date.Format("2006-01-02"))
	}
	if cand.ExcludeScheduleID != uuid.Nil {
		q = q.Where("class_schedule_id <> ?", cand.ExcludeScheduleID)
	}

	var rows []m.ClassScheduleModel
	if err := q.Order("class_schedule_created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// admitComparisonRow: guard murni yang sama dengan WHERE di fetchComparisonSet,
// diulang di memori supaya findConflict tetap benar walau diberi rows mentah:
// baris harus AKTIF dan discriminant-nya sama persis dengan kandidat
// (recurring vs dated tidak pernah saling dibandingkan).
func admitComparisonRow(cand ConflictCandidate, row *m.ClassScheduleModel) bool {
	if row.ClassScheduleStatus != m.ScheduleStatusActive {
		return false
	}
	if row.ClassScheduleID == cand.ExcludeScheduleID && cand.ExcludeScheduleID != uuid.Nil {
		return false
	}
	if cand.DayOfWeek != nil {
		return row.ClassScheduleDayOfWeek != nil && *row.ClassScheduleDayOfWeek == *cand.DayOfWeek
	}
	return cand.Date != nil && row.ClassScheduleDate != nil && row.ClassScheduleDate.Equal(*cand.Date)
}

// findConflict evaluasi murni di memori (unit-testable tanpa DB).
// Bukti pertama per kategori cukup; class check menang kalau dua-duanya kena.
func findConflict(cand ConflictCandidate, rows []m.ClassScheduleModel) *ConflictError {
	// 1) Class check: kelas yang sama tidak boleh dua komitmen overlap
	for i := range rows {
		row := &rows[i]
		if row.ClassScheduleClassID != cand.ClassID || !admitComparisonRow(cand, row) {
			continue
		}
		if cand.Window.Overlaps(Interval{StartMin: row.ClassScheduleStartMin, EndMin: row.ClassScheduleEndMin}) {
			return &ConflictError{Kind: ClassConflict, ConflictingScheduleID: row.ClassScheduleID}
		}
	}

	// 2) Teacher check: satu guru tidak bisa mengajar dua kelas sekaligus
	for i := range rows {
		row := &rows[i]
		if row.ClassScheduleTeacherID != cand.TeacherID || !admitComparisonRow(cand, row) {
			continue
		}
		if cand.Window.Overlaps(Interval{StartMin: row.ClassScheduleStartMin, EndMin: row.ClassScheduleEndMin}) {
			return &ConflictError{Kind: TeacherConflict, ConflictingScheduleID: row.ClassScheduleID}
		}
	}

	return nil
}

// checkConflicts: fetch + evaluate. Dipanggil di dalam transaksi yang sudah
// pegang advisory lock tenant, jadi hasil bersih tidak bisa disusupi writer lain.
func checkConflicts(tx *gorm.DB, cand ConflictCandidate) error {
	rows, err := fetchComparisonSet(tx, cand)
	if err != nil {
		return err
	}
	if ce := findConflict(cand, rows); ce != nil {
		return ce
	}
	return nil
}

package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "sekolahku_backend/internals/features/school/schedules/model"
)

func intPtr(v int) *int { return &v }

func recurringRow(id, classID, teacherID uuid.UUID, day, startMin, endMin int) m.ClassScheduleModel {
	return m.ClassScheduleModel{
		ClassScheduleID:        id,
		ClassScheduleClassID:   classID,
		ClassScheduleTeacherID: teacherID,
		ClassScheduleDayOfWeek: intPtr(day),
		ClassScheduleStartMin:  startMin,
		ClassScheduleEndMin:    endMin,
		ClassScheduleStatus:    m.ScheduleStatusActive,
	}
}

func TestFindConflict_ClassConflict(t *testing.T) {
	classC := uuid.New()
	teacherA := uuid.New()
	teacherB := uuid.New()
	existingID := uuid.New()

	// Kelas C sudah punya Senin 09:00–10:00; kandidat Senin 09:30–10:30 (guru beda)
	rows := []m.ClassScheduleModel{
		recurringRow(existingID, classC, teacherA, 1, 540, 600),
	}
	cand := ConflictCandidate{
		ClassID:   classC,
		TeacherID: teacherB,
		DayOfWeek: intPtr(1),
		Window:    Interval{StartMin: 570, EndMin: 630},
	}

	ce := findConflict(cand, rows)
	require.NotNil(t, ce)
	assert.Equal(t, ClassConflict, ce.Kind)
	assert.Equal(t, existingID, ce.ConflictingScheduleID)
}

func TestFindConflict_TeacherConflict(t *testing.T) {
	classA := uuid.New()
	classB := uuid.New()
	teacherT := uuid.New()
	existingID := uuid.New()

	// Guru T mengajar kelas A Senin 09:00–10:00; kandidat kelas B, guru T, 09:00–09:30
	rows := []m.ClassScheduleModel{
		recurringRow(existingID, classA, teacherT, 1, 540, 600),
	}
	cand := ConflictCandidate{
		ClassID:   classB,
		TeacherID: teacherT,
		DayOfWeek: intPtr(1),
		Window:    Interval{StartMin: 540, EndMin: 570},
	}

	ce := findConflict(cand, rows)
	require.NotNil(t, ce)
	assert.Equal(t, TeacherConflict, ce.Kind)
	assert.Equal(t, existingID, ce.ConflictingScheduleID)
}

func TestFindConflict_ClassCheckedBeforeTeacher(t *testing.T) {
	classC := uuid.New()
	teacherT := uuid.New()
	existingID := uuid.New()

	// Dua-duanya kena (class sama DAN teacher sama) → class conflict yang dilaporkan
	rows := []m.ClassScheduleModel{
		recurringRow(existingID, classC, teacherT, 1, 540, 600),
	}
	cand := ConflictCandidate{
		ClassID:   classC,
		TeacherID: teacherT,
		DayOfWeek: intPtr(1),
		Window:    Interval{StartMin: 540, EndMin: 600},
	}

	ce := findConflict(cand, rows)
	require.NotNil(t, ce)
	assert.Equal(t, ClassConflict, ce.Kind)
}

func TestFindConflict_BackToBackClean(t *testing.T) {
	classC := uuid.New()
	teacherT := uuid.New()

	// Selesai 10:00, mulai 10:00 — kelas DAN guru sama pun tidak bentrok
	rows := []m.ClassScheduleModel{
		recurringRow(uuid.New(), classC, teacherT, 1, 540, 600),
	}
	cand := ConflictCandidate{
		ClassID:   classC,
		TeacherID: teacherT,
		DayOfWeek: intPtr(1),
		Window:    Interval{StartMin: 600, EndMin: 660},
	}

	assert.Nil(t, findConflict(cand, rows))
}

func TestFindConflict_UnrelatedRowsIgnored(t *testing.T) {
	cand := ConflictCandidate{
		ClassID:   uuid.New(),
		TeacherID: uuid.New(),
		DayOfWeek: intPtr(1),
		Window:    Interval{StartMin: 540, EndMin: 600},
	}

	// Overlap waktu, tapi kelas dan guru beda semua
	rows := []m.ClassScheduleModel{
		recurringRow(uuid.New(), uuid.New(), uuid.New(), 1, 540, 600),
		recurringRow(uuid.New(), uuid.New(), uuid.New(), 1, 500, 700),
	}

	assert.Nil(t, findConflict(cand, rows))
}

func TestFindConflict_InactiveRowFreesSlot(t *testing.T) {
	classC := uuid.New()
	teacherT := uuid.New()

	// Slot bekas entry yang sudah di-soft-delete (inactive) harus bisa
	// dipakai ulang dengan window identik
	old := recurringRow(uuid.New(), classC, teacherT, 1, 540, 600)
	old.ClassScheduleStatus = m.ScheduleStatusInactive

	cand := ConflictCandidate{
		ClassID:   classC,
		TeacherID: teacherT,
		DayOfWeek: intPtr(1),
		Window:    Interval{StartMin: 540, EndMin: 600},
	}

	assert.Nil(t, findConflict(cand, []m.ClassScheduleModel{old}))
}

func TestFindConflict_DatedNeverComparedToRecurring(t *testing.T) {
	classC := uuid.New()
	teacherT := uuid.New()
	monday := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC) // 12 Okt 2026 = Senin

	recurring := recurringRow(uuid.New(), classC, teacherT, 1, 540, 600)

	// Kandidat dated di hari Senin, window identik — discriminant beda kind,
	// tidak pernah dibandingkan
	datedCand := ConflictCandidate{
		ClassID:   classC,
		TeacherID: teacherT,
		Date:      timePtr(monday),
		Window:    Interval{StartMin: 540, EndMin: 600},
	}
	assert.Nil(t, findConflict(datedCand, []m.ClassScheduleModel{recurring}))

	// Arah sebaliknya: kandidat recurring vs row dated
	datedRow := m.ClassScheduleModel{
		ClassScheduleID:        uuid.New(),
		ClassScheduleClassID:   classC,
		ClassScheduleTeacherID: teacherT,
		ClassScheduleDate:      timePtr(monday),
		ClassScheduleStartMin:  540,
		ClassScheduleEndMin:    600,
		ClassScheduleStatus:    m.ScheduleStatusActive,
	}
	recurringCand := ConflictCandidate{
		ClassID:   classC,
		TeacherID: teacherT,
		DayOfWeek: intPtr(1),
		Window:    Interval{StartMin: 540, EndMin: 600},
	}
	assert.Nil(t, findConflict(recurringCand, []m.ClassScheduleModel{datedRow}))
}

func TestFindConflict_EmptyComparisonSet(t *testing.T) {
	cand := ConflictCandidate{
		ClassID:   uuid.New(),
		TeacherID: uuid.New(),
		Date:      timePtr(time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)),
		Window:    Interval{StartMin: 540, EndMin: 600},
	}
	assert.Nil(t, findConflict(cand, nil))
}

func timePtr(t time.Time) *time.Time { return &t }

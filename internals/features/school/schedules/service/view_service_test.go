package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "sekolahku_backend/internals/features/school/schedules/model"
)

func TestBucketWeekly_AllSevenBuckets(t *testing.T) {
	classID := uuid.New()
	teacherID := uuid.New()

	// Tepat satu entry Selasa → 7 bucket, 6 kosong, Selasa isi satu
	entryID := uuid.New()
	view := bucketWeekly([]m.ClassScheduleModel{
		recurringRow(entryID, classID, teacherID, 2, 480, 540),
	})

	require.Len(t, view, 7)
	for day := 1; day <= 7; day++ {
		require.NotNil(t, view[day], "bucket hari %d harus ada walau kosong", day)
		if day == 2 {
			require.Len(t, view[day], 1)
			assert.Equal(t, entryID, view[day][0].ClassScheduleID)
		} else {
			assert.Empty(t, view[day])
		}
	}
}

func TestBucketWeekly_OrderedByStartAsc(t *testing.T) {
	classID := uuid.New()
	teacherID := uuid.New()

	view := bucketWeekly([]m.ClassScheduleModel{
		recurringRow(uuid.New(), classID, teacherID, 1, 600, 660),
		recurringRow(uuid.New(), classID, teacherID, 1, 480, 540),
		recurringRow(uuid.New(), classID, teacherID, 1, 540, 600),
	})

	monday := view[1]
	require.Len(t, monday, 3)
	assert.Equal(t, 480, monday[0].ClassScheduleStartMin)
	assert.Equal(t, 540, monday[1].ClassScheduleStartMin)
	assert.Equal(t, 600, monday[2].ClassScheduleStartMin)
}

func TestBucketWeekly_SkipsDatedRows(t *testing.T) {
	date := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	dated := m.ClassScheduleModel{
		ClassScheduleID:       uuid.New(),
		ClassScheduleDate:     &date,
		ClassScheduleStartMin: 540,
		ClassScheduleEndMin:   600,
	}

	view := bucketWeekly([]m.ClassScheduleModel{dated})
	for day := 1; day <= 7; day++ {
		assert.Empty(t, view[day])
	}
}

func TestSortTeacherView_RecurringFirstThenDated(t *testing.T) {
	teacherID := uuid.New()
	oct12 := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	oct5 := time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)

	datedRow := func(id uuid.UUID, date time.Time, startMin, endMin int) m.ClassScheduleModel {
		return m.ClassScheduleModel{
			ClassScheduleID:        id,
			ClassScheduleTeacherID: teacherID,
			ClassScheduleDate:      &date,
			ClassScheduleStartMin:  startMin,
			ClassScheduleEndMin:    endMin,
			ClassScheduleStatus:    m.ScheduleStatusActive,
		}
	}

	d1 := datedRow(uuid.New(), oct12, 540, 600)
	d2 := datedRow(uuid.New(), oct5, 540, 600)
	r1 := recurringRow(uuid.New(), uuid.New(), teacherID, 3, 540, 600)
	r2 := recurringRow(uuid.New(), uuid.New(), teacherID, 1, 600, 660)
	r3 := recurringRow(uuid.New(), uuid.New(), teacherID, 1, 480, 540)

	rows := []m.ClassScheduleModel{d1, r1, d2, r2, r3}
	sortTeacherView(rows)

	// recurring dulu: Senin 08:00, Senin 10:00, Rabu 09:00 — lalu dated urut tanggal
	assert.Equal(t, r3.ClassScheduleID, rows[0].ClassScheduleID)
	assert.Equal(t, r2.ClassScheduleID, rows[1].ClassScheduleID)
	assert.Equal(t, r1.ClassScheduleID, rows[2].ClassScheduleID)
	assert.Equal(t, d2.ClassScheduleID, rows[3].ClassScheduleID)
	assert.Equal(t, d1.ClassScheduleID, rows[4].ClassScheduleID)
}

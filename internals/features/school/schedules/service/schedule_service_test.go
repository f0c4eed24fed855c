package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "sekolahku_backend/internals/features/school/schedules/model"
)

func TestValidateKindAndWindow(t *testing.T) {
	monday := 1
	date := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)

	// recurring sah
	assert.NoError(t, validateKindAndWindow(&monday, nil, 540, 600))
	// dated sah
	assert.NoError(t, validateKindAndWindow(nil, &date, 540, 600))

	// dua-duanya → ValidationError
	err := validateKindAndWindow(&monday, &date, 540, 600)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	// tidak ada sama sekali → ValidationError
	err = validateKindAndWindow(nil, nil, 540, 600)
	require.ErrorAs(t, err, &ve)

	// start >= end → ValidationError
	err = validateKindAndWindow(&monday, nil, 600, 600)
	require.ErrorAs(t, err, &ve)
	err = validateKindAndWindow(&monday, nil, 700, 600)
	require.ErrorAs(t, err, &ve)

	// day di luar 1..7
	zero := 0
	err = validateKindAndWindow(&zero, nil, 540, 600)
	require.ErrorAs(t, err, &ve)
}

func TestApplyPatch_NotesOnlySkipsConflictCheck(t *testing.T) {
	existing := recurringRow(uuid.New(), uuid.New(), uuid.New(), 2, 540, 600)

	notes := "ganti buku paket"
	needsCheck := applyPatch(&existing, UpdateScheduleInput{Notes: &notes})

	assert.False(t, needsCheck, "patch notes saja tidak boleh memicu conflict check")
	require.NotNil(t, existing.ClassScheduleNotes)
	assert.Equal(t, notes, *existing.ClassScheduleNotes)
}

func TestApplyPatch_TimeWindowTriggersCheck(t *testing.T) {
	existing := recurringRow(uuid.New(), uuid.New(), uuid.New(), 2, 540, 600)

	newStart := 570
	needsCheck := applyPatch(&existing, UpdateScheduleInput{StartMin: &newStart})

	assert.True(t, needsCheck)
	assert.Equal(t, 570, existing.ClassScheduleStartMin)
}

func TestApplyPatch_SetDateClearsDayOfWeek(t *testing.T) {
	existing := recurringRow(uuid.New(), uuid.New(), uuid.New(), 2, 540, 600)

	date := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	needsCheck := applyPatch(&existing, UpdateScheduleInput{Date: &date})

	assert.True(t, needsCheck)
	assert.Nil(t, existing.ClassScheduleDayOfWeek, "mutual exclusivity: set date harus clear day_of_week")
	require.NotNil(t, existing.ClassScheduleDate)
	assert.True(t, existing.ClassScheduleDate.Equal(date))
}

func TestApplyPatch_SetDayOfWeekClearsDate(t *testing.T) {
	date := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	existing := m.ClassScheduleModel{
		ClassScheduleID:        uuid.New(),
		ClassScheduleClassID:   uuid.New(),
		ClassScheduleTeacherID: uuid.New(),
		ClassScheduleDate:      &date,
		ClassScheduleStartMin:  540,
		ClassScheduleEndMin:    600,
		ClassScheduleStatus:    m.ScheduleStatusActive,
	}

	friday := 5
	needsCheck := applyPatch(&existing, UpdateScheduleInput{DayOfWeek: &friday})

	assert.True(t, needsCheck)
	assert.Nil(t, existing.ClassScheduleDate)
	require.NotNil(t, existing.ClassScheduleDayOfWeek)
	assert.Equal(t, 5, *existing.ClassScheduleDayOfWeek)
}

func TestApplyPatch_SameValuesNoCheck(t *testing.T) {
	classID := uuid.New()
	existing := recurringRow(uuid.New(), classID, uuid.New(), 2, 540, 600)

	// class yang sama dan jendela waktu yang sama — tidak ada perubahan efektif
	start, end := 540, 600
	needsCheck := applyPatch(&existing, UpdateScheduleInput{
		ClassID:  &classID,
		StartMin: &start,
		EndMin:   &end,
	})

	assert.False(t, needsCheck)
}

func TestValidateExceptionInput(t *testing.T) {
	// type tak dikenal
	err := validateExceptionInput(RecordExceptionInput{Type: "mogok"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	// new_* pada type non-rescheduled
	start := 540
	err = validateExceptionInput(RecordExceptionInput{
		Type:        m.ExceptionTypeCancelled,
		NewStartMin: &start,
	})
	require.ErrorAs(t, err, &ve)

	// rescheduled dengan jendela terbalik
	end := 500
	err = validateExceptionInput(RecordExceptionInput{
		Type:        m.ExceptionTypeRescheduled,
		NewStartMin: &start,
		NewEndMin:   &end,
	})
	require.ErrorAs(t, err, &ve)

	// rescheduled sah
	okEnd := 600
	assert.NoError(t, validateExceptionInput(RecordExceptionInput{
		Type:        m.ExceptionTypeRescheduled,
		NewStartMin: &start,
		NewEndMin:   &okEnd,
	}))

	// holiday polos sah
	assert.NoError(t, validateExceptionInput(RecordExceptionInput{
		Type: m.ExceptionTypeHoliday,
	}))
}

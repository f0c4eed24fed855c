package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "sekolahku_backend/internals/features/school/schedules/model"
)

func TestCreateRequest_ToInput_Recurring(t *testing.T) {
	day := 1
	req := CreateClassScheduleRequest{
		ClassScheduleClassID:   uuid.New(),
		ClassScheduleSubjectID: uuid.New(),
		ClassScheduleTeacherID: uuid.New(),
		ClassScheduleDayOfWeek: &day,
		ClassScheduleStartTime: "09:00",
		ClassScheduleEndTime:   "10:30",
	}

	in, err := req.ToInput()
	require.NoError(t, err)
	assert.Equal(t, 540, in.StartMin)
	assert.Equal(t, 630, in.EndMin)
	require.NotNil(t, in.DayOfWeek)
	assert.Equal(t, 1, *in.DayOfWeek)
	assert.Nil(t, in.Date)
}

func TestCreateRequest_ToInput_Dated(t *testing.T) {
	req := CreateClassScheduleRequest{
		ClassScheduleClassID:   uuid.New(),
		ClassScheduleSubjectID: uuid.New(),
		ClassScheduleTeacherID: uuid.New(),
		ClassScheduleDate:      "2026-10-12",
		ClassScheduleStartTime: "13:00",
		ClassScheduleEndTime:   "14:00",
	}

	in, err := req.ToInput()
	require.NoError(t, err)
	assert.Nil(t, in.DayOfWeek)
	require.NotNil(t, in.Date)
	assert.Equal(t, "2026-10-12", in.Date.Format("2006-01-02"))
}

func TestCreateRequest_ToInput_BadTime(t *testing.T) {
	req := CreateClassScheduleRequest{
		ClassScheduleStartTime: "jam sembilan",
		ClassScheduleEndTime:   "10:00",
	}
	_, err := req.ToInput()
	assert.Error(t, err)
}

func TestUpdateRequest_ToInput_OnlySetFields(t *testing.T) {
	start := "08:15"
	req := UpdateClassScheduleRequest{
		ClassScheduleStartTime: &start,
	}

	in, err := req.ToInput()
	require.NoError(t, err)
	require.NotNil(t, in.StartMin)
	assert.Equal(t, 495, *in.StartMin)
	assert.Nil(t, in.EndMin)
	assert.Nil(t, in.ClassID)
	assert.Nil(t, in.DayOfWeek)
	assert.Nil(t, in.Date)
	assert.Nil(t, in.Notes)
}

func TestUpdateRequest_ToInput_EmptyDateKeepsOtherFields(t *testing.T) {
	classID := uuid.New()
	emptyDate := ""
	notes := "pindah ruang"
	req := UpdateClassScheduleRequest{
		ClassScheduleDate:    &emptyDate,
		ClassScheduleClassID: &classID,
		ClassScheduleNotes:   &notes,
	}

	in, err := req.ToInput()
	require.NoError(t, err)
	assert.Nil(t, in.Date, "date kosong = field absen")
	require.NotNil(t, in.ClassID)
	assert.Equal(t, classID, *in.ClassID)
	require.NotNil(t, in.Notes)
	assert.Equal(t, notes, *in.Notes)
}

func TestFromModel_FormatsTimes(t *testing.T) {
	day := 2
	row := m.ClassScheduleModel{
		ClassScheduleID:        uuid.New(),
		ClassScheduleDayOfWeek: &day,
		ClassScheduleStartMin:  480,
		ClassScheduleEndMin:    555,
		ClassScheduleStatus:    m.ScheduleStatusActive,
	}

	resp := FromModel(&row)
	assert.Equal(t, "08:00", resp.ClassScheduleStartTime)
	assert.Equal(t, "09:15", resp.ClassScheduleEndTime)
	assert.Equal(t, "active", resp.ClassScheduleStatus)
	assert.Nil(t, resp.ClassScheduleDate)
}

func TestFromWeeklyView_AllDayNames(t *testing.T) {
	view := map[int][]m.ClassScheduleModel{}
	for d := 1; d <= 7; d++ {
		view[d] = []m.ClassScheduleModel{}
	}

	resp := FromWeeklyView(view)
	require.Len(t, resp, 7)
	for _, name := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		bucket, ok := resp[name]
		require.True(t, ok, "bucket %s harus ada", name)
		assert.Empty(t, bucket)
	}
}

package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/AgendaPro-Service/internal/domain"
	"github.com/m04kA/AgendaPro-Service/pkg/types"
)

func TestGenerateAvailableSlots_FullDay(t *testing.T) {
	tpl := &domain.ScheduleTemplate{
		Weekday:         domain.WeekdayMonday,
		StartTime:       types.TimeString("09:00"),
		EndTime:         types.TimeString("18:00"),
		IntervalMinutes: 30,
		Active:          true,
	}

	slots := generateAvailableSlots(tpl, nil)

	assert.Len(t, slots, 18)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("17:30"), slots[len(slots)-1])
}

func TestGenerateAvailableSlots_ExcludesBooked(t *testing.T) {
	tpl := &domain.ScheduleTemplate{
		Weekday:         domain.WeekdayMonday,
		StartTime:       types.TimeString("09:00"),
		EndTime:         types.TimeString("18:00"),
		IntervalMinutes: 30,
		Active:          true,
	}
	booked := []types.TimeString{"09:00", "09:30"}

	slots := generateAvailableSlots(tpl, booked)

	assert.Len(t, slots, 16)
	assert.Equal(t, types.TimeString("10:00"), slots[0])
	assert.Equal(t, types.TimeString("17:30"), slots[len(slots)-1])
	assert.NotContains(t, slots, types.TimeString("09:00"))
	assert.NotContains(t, slots, types.TimeString("09:30"))
}

func TestGenerateAvailableSlots_EndTimeExclusive(t *testing.T) {
	tpl := &domain.ScheduleTemplate{
		StartTime:       types.TimeString("10:00"),
		EndTime:         types.TimeString("11:00"),
		IntervalMinutes: 30,
	}

	slots := generateAvailableSlots(tpl, nil)

	// Слот на 11:00 не выдаётся: начало совпадает с концом окна
	assert.Equal(t, []types.TimeString{"10:00", "10:30"}, slots)
}

func TestGenerateAvailableSlots_IntervalDoesNotDivideWindow(t *testing.T) {
	tpl := &domain.ScheduleTemplate{
		StartTime:       types.TimeString("09:00"),
		EndTime:         types.TimeString("10:10"),
		IntervalMinutes: 45,
	}

	slots := generateAvailableSlots(tpl, nil)

	// 09:00 и 09:45 попадают в окно, 10:30 уже нет
	assert.Equal(t, []types.TimeString{"09:00", "09:45"}, slots)
}

func TestGenerateAvailableSlots_AllBooked(t *testing.T) {
	tpl := &domain.ScheduleTemplate{
		StartTime:       types.TimeString("10:00"),
		EndTime:         types.TimeString("11:00"),
		IntervalMinutes: 30,
	}
	booked := []types.TimeString{"10:00", "10:30"}

	slots := generateAvailableSlots(tpl, booked)

	assert.Empty(t, slots)
	assert.NotNil(t, slots)
}

func TestGenerateAvailableSlots_StartEqualsEnd(t *testing.T) {
	tpl := &domain.ScheduleTemplate{
		StartTime:       types.TimeString("09:00"),
		EndTime:         types.TimeString("09:00"),
		IntervalMinutes: 30,
	}

	slots := generateAvailableSlots(tpl, nil)

	assert.Empty(t, slots)
}

func TestGenerateAvailableSlots_WindowUpToMidnight(t *testing.T) {
	tpl := &domain.ScheduleTemplate{
		StartTime:       types.TimeString("23:00"),
		EndTime:         types.TimeString("23:59"),
		IntervalMinutes: 30,
	}

	slots := generateAvailableSlots(tpl, nil)

	// Шаг за пределы суток завершает генерацию без ошибки
	assert.Equal(t, []types.TimeString{"23:00", "23:30"}, slots)
}

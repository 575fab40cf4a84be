package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AgendaPro-Service/internal/domain"
	scheduleRepo "github.com/m04kA/AgendaPro-Service/internal/infra/storage/schedule"
	"github.com/m04kA/AgendaPro-Service/pkg/types"
)

type fakeAppointmentRepo struct {
	booked []types.TimeString
	err    error
}

func (f *fakeAppointmentRepo) GetBookedTimes(_ context.Context, _ time.Time) ([]types.TimeString, error) {
	return f.booked, f.err
}

type fakeScheduleRepo struct {
	tpl *domain.ScheduleTemplate
	err error
}

func (f *fakeScheduleRepo) GetByWeekday(_ context.Context, _ int) (*domain.ScheduleTemplate, error) {
	return f.tpl, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return d
}

func TestExecute_ActiveDayWithBookings(t *testing.T) {
	// 2026-03-02 — понедельник
	date := mustDate(t, "2026-03-02")
	appointments := &fakeAppointmentRepo{booked: []types.TimeString{"09:00", "09:30"}}
	schedule := &fakeScheduleRepo{tpl: &domain.ScheduleTemplate{
		Weekday:         domain.WeekdayMonday,
		StartTime:       types.TimeString("09:00"),
		EndTime:         types.TimeString("18:00"),
		IntervalMinutes: 30,
		Active:          true,
	}}

	uc := NewUseCase(appointments, schedule, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Equal(t, date, resp.Date)
	assert.Len(t, resp.Slots, 16)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0])
}

func TestExecute_InactiveDay(t *testing.T) {
	date := mustDate(t, "2026-03-07")
	appointments := &fakeAppointmentRepo{booked: []types.TimeString{"10:00"}}
	schedule := &fakeScheduleRepo{tpl: &domain.ScheduleTemplate{
		Weekday:         6,
		StartTime:       types.TimeString("10:00"),
		EndTime:         types.TimeString("14:00"),
		IntervalMinutes: 30,
		Active:          false,
	}}

	uc := NewUseCase(appointments, schedule, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
}

func TestExecute_TemplateNotFound(t *testing.T) {
	date := mustDate(t, "2026-03-02")
	schedule := &fakeScheduleRepo{err: scheduleRepo.ErrTemplateNotFound}

	uc := NewUseCase(&fakeAppointmentRepo{}, schedule, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_NonPositiveInterval(t *testing.T) {
	date := mustDate(t, "2026-03-02")
	schedule := &fakeScheduleRepo{tpl: &domain.ScheduleTemplate{
		Weekday:         domain.WeekdayMonday,
		StartTime:       types.TimeString("09:00"),
		EndTime:         types.TimeString("18:00"),
		IntervalMinutes: 0,
		Active:          true,
	}}

	uc := NewUseCase(&fakeAppointmentRepo{}, schedule, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ZeroDate(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeScheduleRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ScheduleRepoFailure(t *testing.T) {
	date := mustDate(t, "2026-03-02")
	schedule := &fakeScheduleRepo{err: errors.New("connection refused")}

	uc := NewUseCase(&fakeAppointmentRepo{}, schedule, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{Date: date})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_AppointmentRepoFailure(t *testing.T) {
	date := mustDate(t, "2026-03-02")
	appointments := &fakeAppointmentRepo{err: errors.New("connection refused")}
	schedule := &fakeScheduleRepo{tpl: &domain.ScheduleTemplate{
		Weekday:         domain.WeekdayMonday,
		StartTime:       types.TimeString("09:00"),
		EndTime:         types.TimeString("18:00"),
		IntervalMinutes: 30,
		Active:          true,
	}}

	uc := NewUseCase(appointments, schedule, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{Date: date})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

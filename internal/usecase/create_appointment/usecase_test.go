package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AgendaPro-Service/internal/domain"
	appointmentRepo "github.com/m04kA/AgendaPro-Service/internal/infra/storage/appointment"
	"github.com/m04kA/AgendaPro-Service/pkg/ptr"
	"github.com/m04kA/AgendaPro-Service/pkg/types"
)

type fakeAppointmentRepo struct {
	hasActive bool
	hasErr    error
	createErr error
	created   *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *appointment
	created.ID = 42
	created.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.created = &created
	return &created, nil
}

func (f *fakeAppointmentRepo) HasActiveAt(_ context.Context, _ time.Time, _ types.TimeString) (bool, error) {
	return f.hasActive, f.hasErr
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeAppointmentRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		Name:  "Ana García",
		Email: "ana@example.com",
		Phone: ptr.Ptr("+54 11 5555-0001"),
		Date:  time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Time:  types.TimeString("10:00"),
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	now := time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC)
	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
	assert.Equal(t, types.TimeString("10:00"), repo.created.Time)
}

func TestExecute_SameDayAllowed(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	// Запись на сегодня допустима даже на уже прошедшее время
	now := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, now)

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
}

func TestExecute_PastDate(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	now := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, now)

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_SlotTaken(t *testing.T) {
	repo := &fakeAppointmentRepo{hasActive: true}
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, now)

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, repo.created)
}

func TestExecute_ConcurrentInsertMapsToSlotTaken(t *testing.T) {
	repo := &fakeAppointmentRepo{createErr: appointmentRepo.ErrSlotTaken}
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, now)

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_CreateFailure(t *testing.T) {
	repo := &fakeAppointmentRepo{createErr: errors.New("connection refused")}
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, now)

	_, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"empty name", func(req *Request) { req.Name = "  " }},
		{"empty email", func(req *Request) { req.Email = "" }},
		{"zero date", func(req *Request) { req.Date = time.Time{} }},
		{"empty time", func(req *Request) { req.Time = "" }},
		{"malformed time", func(req *Request) { req.Time = "25:99" }},
	}

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&fakeAppointmentRepo{}, now)
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

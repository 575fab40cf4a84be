package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AgendaPro-Service/internal/domain"
	"github.com/m04kA/AgendaPro-Service/internal/service/schedule/models"
	"github.com/m04kA/AgendaPro-Service/pkg/ptr"
	"github.com/m04kA/AgendaPro-Service/pkg/types"
)

type fakeScheduleRepo struct {
	templates []*domain.ScheduleTemplate
	listErr   error

	upserted  *domain.ScheduleTemplate
	upsertErr error
}

func (f *fakeScheduleRepo) ListAll(_ context.Context) ([]*domain.ScheduleTemplate, error) {
	return f.templates, f.listErr
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, tpl *domain.ScheduleTemplate) error {
	f.upserted = tpl
	return f.upsertErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestListTemplates(t *testing.T) {
	repo := &fakeScheduleRepo{templates: []*domain.ScheduleTemplate{
		{Weekday: 1, StartTime: "09:00", EndTime: "18:00", IntervalMinutes: 30, Active: true},
		{Weekday: 6, StartTime: "10:00", EndTime: "14:00", IntervalMinutes: 30, Active: false},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ListTemplates(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Templates, 2)
	assert.Equal(t, 1, resp.Templates[0].Weekday)
	assert.Equal(t, "09:00", resp.Templates[0].StartTime)
	assert.False(t, resp.Templates[1].Active)
}

func TestListTemplates_RepositoryError(t *testing.T) {
	repo := &fakeScheduleRepo{listErr: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.ListTemplates(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpsertTemplate(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, nopLogger{})

	req := &models.UpsertTemplateRequest{
		StartTime:       ptr.Ptr("10:00"),
		EndTime:         ptr.Ptr("16:00"),
		IntervalMinutes: ptr.Ptr(20),
		Active:          ptr.Ptr(true),
	}

	err := svc.UpsertTemplate(context.Background(), 3, req)

	require.NoError(t, err)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, 3, repo.upserted.Weekday)
	assert.Equal(t, types.TimeString("10:00"), repo.upserted.StartTime)
	assert.Equal(t, types.TimeString("16:00"), repo.upserted.EndTime)
	assert.Equal(t, 20, repo.upserted.IntervalMinutes)
	assert.True(t, repo.upserted.Active)
}

func TestUpsertTemplate_Defaults(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, nopLogger{})

	// Пустое тело запроса — все поля получают значения по умолчанию
	err := svc.UpsertTemplate(context.Background(), 2, &models.UpsertTemplateRequest{})

	require.NoError(t, err)
	require.NotNil(t, repo.upserted)
	assert.Equal(t, types.TimeString("09:00"), repo.upserted.StartTime)
	assert.Equal(t, types.TimeString("18:00"), repo.upserted.EndTime)
	assert.Equal(t, 30, repo.upserted.IntervalMinutes)
	assert.False(t, repo.upserted.Active)
}

func TestUpsertTemplate_InvalidWeekday(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, nopLogger{})

	for _, weekday := range []int{0, 8, -1} {
		err := svc.UpsertTemplate(context.Background(), weekday, &models.UpsertTemplateRequest{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestUpsertTemplate_Guardrails(t *testing.T) {
	tests := []struct {
		name string
		req  *models.UpsertTemplateRequest
	}{
		{
			"start after end when active",
			&models.UpsertTemplateRequest{
				StartTime: ptr.Ptr("18:00"),
				EndTime:   ptr.Ptr("09:00"),
				Active:    ptr.Ptr(true),
			},
		},
		{
			"start equals end when active",
			&models.UpsertTemplateRequest{
				StartTime: ptr.Ptr("09:00"),
				EndTime:   ptr.Ptr("09:00"),
				Active:    ptr.Ptr(true),
			},
		},
		{
			"non-positive interval when active",
			&models.UpsertTemplateRequest{
				IntervalMinutes: ptr.Ptr(0),
				Active:          ptr.Ptr(true),
			},
		},
		{
			"malformed start time",
			&models.UpsertTemplateRequest{StartTime: ptr.Ptr("9am")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeScheduleRepo{}
			svc := NewService(repo, nopLogger{})

			err := svc.UpsertTemplate(context.Background(), 1, tt.req)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.upserted)
		})
	}
}

func TestUpsertTemplate_InactiveSkipsWindowChecks(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, nopLogger{})

	// Для неактивного дня перевёрнутое окно допустимо: слоты не генерируются
	req := &models.UpsertTemplateRequest{
		StartTime: ptr.Ptr("18:00"),
		EndTime:   ptr.Ptr("09:00"),
		Active:    ptr.Ptr(false),
	}

	err := svc.UpsertTemplate(context.Background(), 7, req)

	require.NoError(t, err)
	require.NotNil(t, repo.upserted)
}

func TestUpsertTemplate_RepositoryError(t *testing.T) {
	repo := &fakeScheduleRepo{upsertErr: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	err := svc.UpsertTemplate(context.Background(), 1, &models.UpsertTemplateRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

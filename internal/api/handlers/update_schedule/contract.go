package update_schedule

import (
	"context"

	"github.com/m04kA/AgendaPro-Service/internal/service/schedule/models"
)

type ScheduleService interface {
	UpsertTemplate(ctx context.Context, weekday int, req *models.UpsertTemplateRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

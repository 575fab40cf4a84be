package get_schedule

import (
	"context"

	"github.com/m04kA/AgendaPro-Service/internal/service/schedule/models"
)

type ScheduleService interface {
	ListTemplates(ctx context.Context) (*models.TemplateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

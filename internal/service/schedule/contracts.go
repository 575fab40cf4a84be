package schedule

import (
	"context"

	"github.com/m04kA/AgendaPro-Service/internal/domain"
)

// ScheduleRepository интерфейс репозитория шаблонов расписания
type ScheduleRepository interface {
	ListAll(ctx context.Context) ([]*domain.ScheduleTemplate, error)
	Upsert(ctx context.Context, tpl *domain.ScheduleTemplate) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

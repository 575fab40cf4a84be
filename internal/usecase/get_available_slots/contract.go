package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/AgendaPro-Service/internal/domain"
	"github.com/m04kA/AgendaPro-Service/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetBookedTimes получает занятые времена неотменённых записей на дату
	GetBookedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// ScheduleRepository интерфейс репозитория шаблонов расписания
type ScheduleRepository interface {
	GetByWeekday(ctx context.Context, weekday int) (*domain.ScheduleTemplate, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

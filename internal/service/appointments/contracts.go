package appointments

import (
	"context"
	"time"

	"github.com/m04kA/AgendaPro-Service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListAll(ctx context.Context) ([]*domain.Appointment, error)
	CancelByID(ctx context.Context, id int64) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.AppointmentStatus) (int64, error)
	CountActiveOnDate(ctx context.Context, date time.Time) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
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

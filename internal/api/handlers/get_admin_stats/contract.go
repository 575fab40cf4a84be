package get_admin_stats

import (
	"context"

	"github.com/m04kA/AgendaPro-Service/internal/service/appointments/models"
)

type AppointmentsService interface {
	Stats(ctx context.Context) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

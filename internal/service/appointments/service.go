package appointments

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/AgendaPro-Service/internal/domain"
	"github.com/m04kA/AgendaPro-Service/internal/service/appointments/models"
)

// Service сервис для административных операций над записями
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// List получает все записи, сначала новые
func (s *Service) List(ctx context.Context) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching all appointments")

	appointments, err := s.appointmentRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Stats собирает сводную статистику по записям
// Счётчики читаются в read-only транзакции, чтобы все четыре значения
// относились к одному снимку данных
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	s.logger.Info("Stats: collecting appointment statistics")

	today := dateOnly(s.timeProvider.Now())

	var stats models.StatsResponse

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		if stats.Total, err = s.appointmentRepo.CountAll(txCtx); err != nil {
			return fmt.Errorf("%w: Stats - count all: %v", ErrInternal, err)
		}

		if stats.Pending, err = s.appointmentRepo.CountByStatus(txCtx, domain.StatusPending); err != nil {
			return fmt.Errorf("%w: Stats - count pending: %v", ErrInternal, err)
		}

		if stats.Today, err = s.appointmentRepo.CountActiveOnDate(txCtx, today); err != nil {
			return fmt.Errorf("%w: Stats - count today: %v", ErrInternal, err)
		}

		if stats.Cancelled, err = s.appointmentRepo.CountByStatus(txCtx, domain.StatusCancelled); err != nil {
			return fmt.Errorf("%w: Stats - count cancelled: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		s.logger.Error("Stats: failed to collect statistics: %v", err)
		return nil, err
	}

	s.logger.Info("Stats: total=%d, pending=%d, today=%d, cancelled=%d",
		stats.Total, stats.Pending, stats.Today, stats.Cancelled)
	return &stats, nil
}

// Cancel отменяет запись по ID
// Операция идемпотентна: повторная отмена или отмена несуществующей записи
// завершается успешно
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	if id <= 0 {
		s.logger.Warn("Cancel: invalid appointment id=%d", id)
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := s.appointmentRepo.CancelByID(ctx, id); err != nil {
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return nil
}

// dateOnly обнуляет время, оставляя только дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/AgendaPro-Service/internal/domain"
	scheduleRepo "github.com/m04kA/AgendaPro-Service/internal/infra/storage/schedule"
	"github.com/m04kA/AgendaPro-Service/pkg/types"
)

// UseCase use case для получения свободных слотов на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов
// Чтение без побочных эффектов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем день недели (понедельник = 1)
	weekday := domain.WeekdayOf(req.Date)

	// 3. Получаем шаблон расписания на этот день недели
	// Отсутствующий шаблон — не ошибка, а пустой список слотов
	tpl, err := uc.scheduleRepo.GetByWeekday(ctx, weekday)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrTemplateNotFound) {
			uc.logger.Info("GetAvailableSlots: no template for weekday=%d", weekday)
			return emptyResponse(req.Date), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get template for weekday=%d: %v", weekday, err)
		return nil, fmt.Errorf("%w: failed to get template: %v", ErrInternal, err)
	}

	// 4. Неактивный день — пустой список независимо от существующих записей
	if !tpl.Active {
		uc.logger.Info("GetAvailableSlots: weekday=%d is inactive", weekday)
		return emptyResponse(req.Date), nil
	}

	// Некорректный интервал в БД трактуем как неактивный день,
	// иначе генерация слотов не завершится
	if tpl.IntervalMinutes <= 0 {
		uc.logger.Warn("GetAvailableSlots: weekday=%d has non-positive interval %d, treating as inactive",
			weekday, tpl.IntervalMinutes)
		return emptyResponse(req.Date), nil
	}

	// 5. Получаем занятые времена на эту дату
	booked, err := uc.appointmentRepo.GetBookedTimes(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked times: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked times: %v", ErrInternal, err)
	}

	// 6. Генерируем свободные слоты
	slots := generateAvailableSlots(tpl, booked)

	uc.logger.Info("GetAvailableSlots: %d slots available for date=%s (weekday=%d, booked=%d)",
		len(slots), req.Date.Format(domain.DateFormat), weekday, len(booked))

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}

// emptyResponse возвращает ответ с пустым списком слотов
func emptyResponse(date time.Time) *Response {
	return &Response{
		Date:  date,
		Slots: []types.TimeString{},
	}
}

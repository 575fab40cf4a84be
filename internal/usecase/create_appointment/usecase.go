package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/AgendaPro-Service/internal/domain"
	appointmentRepo "github.com/m04kA/AgendaPro-Service/internal/infra/storage/appointment"
)

// UseCase use case для создания записи на приём
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка занятости и вставка выполняются атомарно, а частичный уникальный
// индекс по активным записям служит последним рубежом при конкурентной вставке
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: name=%s, date=%s, time=%s",
		req.Name, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что дата не в прошлом (сравнение только по дате)
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateAppointment: past date %s", req.Date.Format(domain.DateFormat))
		return nil, ErrPastDate
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Проверяем занятость слота с блокировкой (FOR UPDATE)
		taken, err := uc.appointmentRepo.HasActiveAt(txCtx, req.Date, req.Time)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check slot availability: %v", err)
			return fmt.Errorf("%w: failed to check slot availability: %v", ErrInternal, err)
		}

		if taken {
			uc.logger.Warn("CreateAppointment: slot %s %s is already taken",
				req.Date.Format(domain.DateFormat), req.Time)
			return ErrSlotTaken
		}

		// 4.2. Создаем запись со статусом pending
		appointment := &domain.Appointment{
			Name:   req.Name,
			Email:  req.Email,
			Phone:  req.Phone,
			Date:   req.Date,
			Time:   req.Time,
			Reason: req.Reason,
			Status: domain.StatusPending,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			// Нарушение уникального индекса — конкурент успел занять слот
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: concurrent insert for slot %s %s",
					req.Date.Format(domain.DateFormat), req.Time)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		CreatedAt: result.CreatedAt,
	}, nil
}

package schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/AgendaPro-Service/internal/domain"
	"github.com/m04kA/AgendaPro-Service/internal/service/schedule/models"
)

// Service сервис для управления шаблонами расписания
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// ListTemplates получает шаблоны всех дней недели, упорядоченные по дню
func (s *Service) ListTemplates(ctx context.Context) (*models.TemplateListResponse, error) {
	s.logger.Info("ListTemplates: fetching schedule templates")

	templates, err := s.scheduleRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListTemplates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTemplates - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListTemplates: successfully fetched %d templates", len(templates))
	return models.FromDomainTemplateList(templates), nil
}

// UpsertTemplate вставляет или полностью заменяет шаблон дня недели
func (s *Service) UpsertTemplate(ctx context.Context, weekday int, req *models.UpsertTemplateRequest) error {
	s.logger.Info("UpsertTemplate: updating template for weekday=%d", weekday)

	if !domain.IsValidWeekday(weekday) {
		s.logger.Warn("UpsertTemplate: invalid weekday=%d", weekday)
		return fmt.Errorf("%w: weekday must be between 1 and 7", ErrInvalidInput)
	}

	tpl := req.ToDomainTemplate(weekday)

	if err := validateTemplate(tpl); err != nil {
		s.logger.Warn("UpsertTemplate: validation failed for weekday=%d: %v", weekday, err)
		return err
	}

	if err := s.scheduleRepo.Upsert(ctx, tpl); err != nil {
		s.logger.Error("UpsertTemplate: repository error for weekday=%d: %v", weekday, err)
		return fmt.Errorf("%w: UpsertTemplate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertTemplate: successfully updated weekday=%d (%s-%s, interval=%d, active=%t)",
		weekday, tpl.StartTime, tpl.EndTime, tpl.IntervalMinutes, tpl.Active)
	return nil
}

// validateTemplate проверяет согласованность полей шаблона
// Для активного дня рабочее окно должно быть непустым, а интервал положительным,
// иначе генерация слотов вырождается
func validateTemplate(tpl *domain.ScheduleTemplate) error {
	if err := tpl.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if err := tpl.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if tpl.Active {
		if !tpl.StartTime.IsBefore(tpl.EndTime) {
			return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
		}

		if tpl.IntervalMinutes <= 0 {
			return fmt.Errorf("%w: intervalMinutes must be positive", ErrInvalidInput)
		}
	}

	return nil
}

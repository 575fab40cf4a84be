package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/AgendaPro-Service/internal/domain"
	"github.com/m04kA/AgendaPro-Service/pkg/dbmetrics"
	"github.com/m04kA/AgendaPro-Service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с шаблонами расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByWeekday получает шаблон расписания для дня недели (1..7)
func (r *Repository) GetByWeekday(ctx context.Context, weekday int) (*domain.ScheduleTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"start_time",
		"end_time",
		"interval_minutes",
		"active",
	).
		From("schedule_templates").
		Where(squirrel.Eq{"weekday": weekday}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var tpl domain.ScheduleTemplate
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tpl.Weekday,
		&tpl.StartTime,
		&tpl.EndTime,
		&tpl.IntervalMinutes,
		&tpl.Active,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - scan template: %v", ErrScanRow, err)
	}

	return &tpl, nil
}

// ListAll получает все шаблоны расписания, упорядоченные по дню недели
func (r *Repository) ListAll(ctx context.Context) ([]*domain.ScheduleTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekday",
		"start_time",
		"end_time",
		"interval_minutes",
		"active",
	).
		From("schedule_templates").
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	templates := make([]*domain.ScheduleTemplate, 0)
	for rows.Next() {
		var tpl domain.ScheduleTemplate
		err := rows.Scan(
			&tpl.Weekday,
			&tpl.StartTime,
			&tpl.EndTime,
			&tpl.IntervalMinutes,
			&tpl.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}
		templates = append(templates, &tpl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return templates, nil
}

// Upsert вставляет или полностью заменяет шаблон дня недели
// Все четыре изменяемых поля обновляются атомарно одним запросом
func (r *Repository) Upsert(ctx context.Context, tpl *domain.ScheduleTemplate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_templates").
		Columns(
			"weekday",
			"start_time",
			"end_time",
			"interval_minutes",
			"active",
		).
		Values(
			tpl.Weekday,
			tpl.StartTime,
			tpl.EndTime,
			tpl.IntervalMinutes,
			tpl.Active,
		).
		Suffix(`ON CONFLICT (weekday) DO UPDATE SET
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			interval_minutes = EXCLUDED.interval_minutes,
			active = EXCLUDED.active`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

package migrations

import (
	"context"
	"fmt"

	"github.com/m04kA/AgendaPro-Service/internal/domain"
	"github.com/m04kA/AgendaPro-Service/pkg/dbmetrics"
	"github.com/m04kA/AgendaPro-Service/pkg/psqlbuilder"
)

// DDL выполняется при каждом старте; все операции идемпотентны
const (
	createAppointmentsTable = `
		CREATE TABLE IF NOT EXISTS appointments (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			date DATE NOT NULL,
			time TIME NOT NULL,
			reason TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`

	// Частичный уникальный индекс — финальная защита от двойного бронирования:
	// не более одной неотменённой записи на пару (date, time)
	createActiveSlotIndex = `
		CREATE UNIQUE INDEX IF NOT EXISTS appointments_active_slot_idx
		ON appointments (date, time)
		WHERE status <> 'cancelled'`

	createScheduleTemplatesTable = `
		CREATE TABLE IF NOT EXISTS schedule_templates (
			weekday INTEGER PRIMARY KEY,
			start_time TIME NOT NULL DEFAULT '09:00',
			end_time TIME NOT NULL DEFAULT '18:00',
			interval_minutes INTEGER NOT NULL DEFAULT 30,
			active BOOLEAN NOT NULL DEFAULT TRUE
		)`
)

// Run создает таблицы и заполняет шаблоны расписания дефолтами
func Run(ctx context.Context, db dbmetrics.DBExecutor) error {
	for _, ddl := range []string{
		createAppointmentsTable,
		createActiveSlotIndex,
		createScheduleTemplatesTable,
	} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("migrations: execute ddl: %w", err)
		}
	}

	return seedScheduleTemplates(ctx, db)
}

// seedScheduleTemplates заполняет 7 шаблонов расписания при первом запуске
// Будни 09:00-18:00 (активны), выходные 10:00-14:00 (неактивны);
// существующие строки не перезаписываются
func seedScheduleTemplates(ctx context.Context, db dbmetrics.DBExecutor) error {
	for weekday := domain.WeekdayMonday; weekday <= domain.WeekdaySunday; weekday++ {
		tpl := defaultTemplate(weekday)

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
			Suffix("ON CONFLICT (weekday) DO NOTHING").
			ToSql()

		if err != nil {
			return fmt.Errorf("migrations: build seed query: %w", err)
		}

		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("migrations: seed weekday %d: %w", weekday, err)
		}
	}

	return nil
}

// defaultTemplate возвращает дефолтный шаблон для дня недели
func defaultTemplate(weekday int) *domain.ScheduleTemplate {
	isWorkday := weekday <= 5 // понедельник..пятница

	tpl := &domain.ScheduleTemplate{
		Weekday:         weekday,
		StartTime:       domain.DefaultStartTime,
		EndTime:         domain.DefaultEndTime,
		IntervalMinutes: domain.DefaultIntervalMinutes,
		Active:          isWorkday,
	}

	if !isWorkday {
		tpl.StartTime = domain.DefaultWeekendStart
		tpl.EndTime = domain.DefaultWeekendEnd
	}

	return tpl
}

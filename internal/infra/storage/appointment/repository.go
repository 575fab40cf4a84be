package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/AgendaPro-Service/internal/domain"
	"github.com/m04kA/AgendaPro-Service/pkg/dbmetrics"
	"github.com/m04kA/AgendaPro-Service/pkg/psqlbuilder"
	"github.com/m04kA/AgendaPro-Service/pkg/types"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с записями на приём
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись на приём
// Если в контексте передана активная транзакция, использует её.
// Частичный уникальный индекс по (date, time) для неотменённых записей
// является финальной защитой от двойного бронирования: нарушение
// индекса возвращается как ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"name",
			"email",
			"phone",
			"date",
			"time",
			"reason",
			"status",
		).
		Values(
			appt.Name,
			appt.Email,
			appt.Phone,
			appt.Date,
			appt.Time,
			appt.Reason,
			appt.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time

	return appt, nil
}

// GetBookedTimes получает занятые времена на указанную дату
// Учитываются только неотменённые записи; времена возвращаются без дублей,
// по возрастанию
func (r *Repository) GetBookedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT time").
		From("appointments").
		Where(squirrel.Eq{"date": date}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	booked := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: GetBookedTimes - scan time: %v", ErrScanRow, err)
		}
		booked = append(booked, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - rows error: %v", ErrScanRow, err)
	}

	return booked, nil
}

// HasActiveAt проверяет, есть ли неотменённая запись на точную пару (дата, время)
// Внутри транзакции блокирует найденную строку (FOR UPDATE) — используется
// в usecase создания записи
func (r *Repository) HasActiveAt(ctx context.Context, date time.Time, t types.TimeString) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("1").
		From("appointments").
		Where(squirrel.Eq{"date": date}).
		Where(squirrel.Eq{"time": t}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveAt - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveAt - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// ListAll получает все записи, сначала новые
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"email",
		"phone",
		"date",
		"time",
		"reason",
		"status",
		"created_at",
	).
		From("appointments").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// CancelByID помечает запись отменённой
// Операция идемпотентна: отмена уже отменённой или несуществующей записи
// не является ошибкой (ноль обновлённых строк — допустимый результат)
func (r *Repository) CancelByID(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CancelByID - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CancelByID - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// CountAll возвращает общее количество записей
func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	return r.count(ctx, psqlbuilder.Select("COUNT(*)").From("appointments"), "CountAll")
}

// CountByStatus возвращает количество записей с указанным статусом
func (r *Repository) CountByStatus(ctx context.Context, status domain.AppointmentStatus) (int64, error) {
	return r.count(ctx, psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"status": status}), "CountByStatus")
}

// CountActiveOnDate возвращает количество неотменённых записей на указанную дату
func (r *Repository) CountActiveOnDate(ctx context.Context, date time.Time) (int64, error) {
	return r.count(ctx, psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"date": date}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}), "CountActiveOnDate")
}

// count выполняет COUNT-запрос
func (r *Repository) count(ctx context.Context, builder squirrel.SelectBuilder, method string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: %s - scan count: %v", ErrScanRow, method, err)
	}

	return total, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.Name,
			&appt.Email,
			&appt.Phone,
			&appt.Date,
			&appt.Time,
			&appt.Reason,
			&appt.Status,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

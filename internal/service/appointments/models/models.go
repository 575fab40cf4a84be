package models

import (
	"time"

	"github.com/m04kA/AgendaPro-Service/internal/domain"
)

// Response модели

// AppointmentResponse ответ с данными записи на приём
type AppointmentResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  *string `json:"phone,omitempty"`
	Date   string  `json:"date"` // "2026-03-02"
	Time   string  `json:"time"` // "10:00"
	Reason *string `json:"reason,omitempty"`
	Status string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// StatsResponse сводная статистика по записям
type StatsResponse struct {
	Total     int64 `json:"total"`     // Всего записей за всё время
	Pending   int64 `json:"pending"`   // Ожидают приёма
	Today     int64 `json:"today"`     // Активные записи на сегодня
	Cancelled int64 `json:"cancelled"` // Отменённые
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		Date:      a.Date.Format(domain.DateFormat),
		Time:      a.Time.String(),
		Reason:    a.Reason,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	list := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		list = append(list, *FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: list}
}

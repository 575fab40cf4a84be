package domain

import (
	"time"

	"github.com/m04kA/AgendaPro-Service/pkg/types"
)

// AppointmentStatus статус записи на приём
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment запись на приём
type Appointment struct {
	ID     int64
	Name   string
	Email  string
	Phone  *string
	Date   time.Time        // дата приёма (без времени)
	Time   types.TimeString // время начала слота
	Reason *string
	Status AppointmentStatus

	CreatedAt time.Time
}

// IsActive возвращает true, если запись не отменена
// Активные записи занимают слот в расписании
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

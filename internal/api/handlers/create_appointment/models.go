package create_appointment

import (
	"time"

	"github.com/m04kA/AgendaPro-Service/internal/domain"
	createAppointment "github.com/m04kA/AgendaPro-Service/internal/usecase/create_appointment"
	"github.com/m04kA/AgendaPro-Service/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  *string `json:"phone,omitempty"`
	Date   string  `json:"date"` // "2026-03-02"
	Time   string  `json:"time"` // "10:00"
	Reason *string `json:"reason,omitempty"`
}

// CreateAppointmentResponse HTTP response model
// Бизнес-отказы возвращаются как success=false с пояснением
type CreateAppointmentResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	t, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Date:   date,
		Time:   t,
		Reason: r.Reason,
	}, nil
}

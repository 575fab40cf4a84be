package get_available_slots

import (
	"time"

	"github.com/m04kA/AgendaPro-Service/internal/domain"
	getAvailableSlots "github.com/m04kA/AgendaPro-Service/internal/usecase/get_available_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Slots []string `json:"slots"` // ["09:00", "09:30", ...]
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}
	return &SlotsResponse{Slots: slots}
}

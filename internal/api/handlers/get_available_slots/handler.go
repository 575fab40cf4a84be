package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/AgendaPro-Service/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/AgendaPro-Service/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate = "Fecha inválida"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/slots/{date}
// date в формате YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(vars["date"])
	if err != nil {
		h.logger.Warn("GET /slots/{date} - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots/{date} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /slots/{date} - Failed to get slots: date=%s, error=%v", vars["date"], err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/{date} - Slots retrieved successfully: date=%s, slots_count=%d",
		vars["date"], len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

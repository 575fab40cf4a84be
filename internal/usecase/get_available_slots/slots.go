package get_available_slots

import (
	"github.com/m04kA/AgendaPro-Service/internal/domain"
	"github.com/m04kA/AgendaPro-Service/pkg/types"
)

// generateAvailableSlots генерирует свободные слоты по шаблону дня
// Кандидаты идут от начала рабочего окна с фиксированным шагом интервала,
// строго до времени окончания: слот, начинающийся в момент окончания или позже,
// не выдаётся (неполный хвост окна отбрасывается).
// Кандидат исключается, если его время есть в списке занятых.
func generateAvailableSlots(tpl *domain.ScheduleTemplate, booked []types.TimeString) []types.TimeString {
	occupied := make(map[types.TimeString]struct{}, len(booked))
	for _, t := range booked {
		occupied[t] = struct{}{}
	}

	slots := make([]types.TimeString, 0)
	current := tpl.StartTime

	for current.IsBefore(tpl.EndTime) {
		if _, taken := occupied[current]; !taken {
			slots = append(slots, current)
		}

		next, err := current.AddMinutes(tpl.IntervalMinutes)
		if err != nil {
			// Следующий шаг вышел за пределы суток
			break
		}
		current = next
	}

	return slots
}

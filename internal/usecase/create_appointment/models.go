package create_appointment

import (
	"time"

	"github.com/m04kA/AgendaPro-Service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Name   string           // Имя клиента
	Email  string           // Email клиента
	Phone  *string          // Телефон (опционально)
	Date   time.Time        // Дата записи (без времени)
	Time   types.TimeString // Время слота (например, "10:00")
	Reason *string          // Причина обращения (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID        int64     // ID созданной записи
	CreatedAt time.Time // Время создания
}

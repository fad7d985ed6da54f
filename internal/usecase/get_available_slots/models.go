package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-DonationService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	FacilityID int64     // ID учреждения
	Date       time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date         time.Time // Дата, на которую запрашивались слоты
	FacilityID   int64     // ID учреждения
	OperatingDay bool      // false = учреждение не работает в этот день, слотов нет
	Fallback     bool      // true = часы работы не заданы или не распознаны
	Slots        []Slot    // Список слотов
}

// Slot модель временного слота
type Slot struct {
	Label     string           // "9:00 AM"
	StartTime types.TimeString // "09:00"
	Available bool             // Всегда true: вместимость не учитывается
}

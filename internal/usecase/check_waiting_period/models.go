package check_waiting_period

import "time"

// Request модель запроса на проверку интервала между донациями
type Request struct {
	DonorID int64
}

// Response результат проверки
type Response struct {
	CanStartBooking  bool
	LastDonationDate *time.Time // Последняя учитываемая запись (Scheduled/Completed)
	NextEligibleDate *time.Time // Первая дата, на которую можно записаться
	Degraded         bool       // История недоступна, ограничение не применялось
}

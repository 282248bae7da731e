package apply_date_range

// Request модель запроса на подтверждение диапазона дат
type Request struct {
	SessionID string // ID сессии расчёта
	UserID    int64  // ID пользователя-владельца
}

// Response модель ответа с характеристиками подтверждённого проживания
type Response struct {
	Nights        int    // Количество ночей
	Days          int    // Количество дней (ночи + 1)
	WeekdayNights int    // Будние ночи
	WeekendNights int    // Выходные ночи (сб, вс)
	RangeText     string // Диапазон с длительностью: "2025.05.01 ~ 2025.05.03 (2/3)"
}

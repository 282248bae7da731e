package select_date

// Request модель запроса на выбор даты в календаре
type Request struct {
	SessionID string // ID сессии расчёта
	UserID    int64  // ID пользователя-владельца
	Year      int    // Год выбранной даты
	Month     int    // Месяц выбранной даты (1..12)
	Day       int    // День выбранной даты
}

// Response модель ответа с новым состоянием селектора дат
type Response struct {
	CheckIn       *string // Дата заезда (YYYY-MM-DD), nil если не выбрана
	CheckOut      *string // Дата выезда (YYYY-MM-DD), nil если не выбрана
	SelectionMode string  // Режим следующего клика
	Changed       bool    // false, если клик был проигнорирован защитным правилом
}

package calculate_estimate

// Request модель запроса на расчёт стоимости
type Request struct {
	SessionID string // ID сессии расчёта
	UserID    int64  // ID пользователя-владельца
}

// HallLine строка расчёта по залу
type HallLine struct {
	Name        string // Имя зала
	PricePerDay int64  // Цена за день
	Days        int    // Запрошено дней
	Subtotal    int64  // Вклад в итог
}

// RoomLine строка расчёта по типу номера
type RoomLine struct {
	Name          string // Имя типа номера
	WeekdayPrice  int64  // Будничный тариф за ночь
	WeekendPrice  int64  // Тариф выходного дня за ночь
	Nights        int    // Запрошено ночей
	Count         int    // Запрошено номеров
	WeekdayNights int    // Будние ночи после пропорционального разбиения
	WeekendNights int    // Выходные ночи после пропорционального разбиения
	Subtotal      int64  // Вклад в итог
}

// Response модель ответа с расчётом стоимости
//
// RangeText и счётчики ночей заполняются только при подтверждённом
// диапазоне; без него расчёт деградирует до нулевых вкладов номеров
type Response struct {
	HallTotal    int64      // Итог по залам
	RoomTotal    int64      // Итог по номерам
	GrandTotal   int64      // Общий итог
	HasSelection bool       // Есть ли в сессии что-либо, способное дать стоимость
	Nights       int        // Ночей в подтверждённом диапазоне (0 если не подтверждён)
	Days         int        // Дней в подтверждённом диапазоне (0 если не подтверждён)
	RangeText    string     // "2025.05.01 ~ 2025.05.03 (2/3)", пусто без диапазона
	Halls        []HallLine // Построчный расчёт по залам
	Rooms        []RoomLine // Построчный расчёт по типам номеров
}

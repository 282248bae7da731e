package get_month_grid

// Request модель запроса сетки календаря
type Request struct {
	Year  int // Год основного месяца
	Month int // Месяц (1..12)
}

// MonthGrid сетка одного месяца для отрисовки календаря
type MonthGrid struct {
	Year     int   // Год месяца
	Month    int   // Номер месяца (1..12)
	Leading  []int // Хвост предыдущего месяца до первой ячейки
	Current  []int // Дни самого месяца
	Trailing []int // Начало следующего месяца до конца сетки
}

// Response модель ответа: основной месяц и следующий за ним,
// UI показывает два календаря рядом
type Response struct {
	Primary   MonthGrid // Сетка запрошенного месяца
	Secondary MonthGrid // Сетка следующего месяца
}

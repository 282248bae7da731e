package contentservice

// Hall модель зала из CMS
type Hall struct {
	Name        string   `json:"name"`
	PricePerDay int64    `json:"price_per_day"`
	Capacity    int      `json:"capacity"`
	AreaSqm     float64  `json:"area_sqm"`
	Images      []string `json:"images"`
}

// Room модель типа номера из CMS
type Room struct {
	Name           string   `json:"name"`
	RoomTypeLabel  string   `json:"room_type_label"`
	BedDescription string   `json:"bed_description"`
	AreaSqm        float64  `json:"area_sqm"`
	WeekdayPrice   int64    `json:"weekday_price"`
	WeekendPrice   int64    `json:"weekend_price"`
	Amenities      []string `json:"amenities"`
	Images         []string `json:"images"`
}

// ErrorResponse модель ошибки от CMS
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

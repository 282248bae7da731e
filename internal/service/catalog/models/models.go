package models

import "github.com/m04kA/HRS-EstimateService/internal/domain"

// HallResponse данные зала для выдачи наружу
type HallResponse struct {
	Name        string   `json:"name"`
	PricePerDay int64    `json:"pricePerDay"`
	Capacity    int      `json:"capacity"`
	AreaSqm     float64  `json:"areaSqm"`
	Images      []string `json:"images"`
}

// RoomResponse данные типа номера для выдачи наружу
type RoomResponse struct {
	Name           string   `json:"name"`
	RoomTypeLabel  string   `json:"roomTypeLabel"`
	BedDescription string   `json:"bedDescription"`
	AreaSqm        float64  `json:"areaSqm"`
	WeekdayPrice   int64    `json:"weekdayPrice"`
	WeekendPrice   int64    `json:"weekendPrice"`
	Amenities      []string `json:"amenities"`
	Images         []string `json:"images"`
}

// CatalogResponse полный каталог залов и типов номеров
type CatalogResponse struct {
	Halls []HallResponse `json:"halls"`
	Rooms []RoomResponse `json:"rooms"`
}

// SyncResult результат синхронизации каталога из CMS
type SyncResult struct {
	HallsSynced int `json:"hallsSynced"`
	RoomsSynced int `json:"roomsSynced"`
}

// FromDomainHall конвертирует доменный зал в response-модель
func FromDomainHall(h domain.Hall) HallResponse {
	return HallResponse{
		Name:        h.Name,
		PricePerDay: h.PricePerDay,
		Capacity:    h.Capacity,
		AreaSqm:     h.AreaSqm,
		Images:      h.Images,
	}
}

// FromDomainRoom конвертирует доменный тип номера в response-модель
func FromDomainRoom(r domain.Room) RoomResponse {
	return RoomResponse{
		Name:           r.Name,
		RoomTypeLabel:  r.RoomTypeLabel,
		BedDescription: r.BedDescription,
		AreaSqm:        r.AreaSqm,
		WeekdayPrice:   r.WeekdayPrice,
		WeekendPrice:   r.WeekendPrice,
		Amenities:      r.Amenities,
		Images:         r.Images,
	}
}

// FromDomainCatalog конвертирует каталог целиком
func FromDomainCatalog(halls []domain.Hall, rooms []domain.Room) *CatalogResponse {
	resp := &CatalogResponse{
		Halls: make([]HallResponse, len(halls)),
		Rooms: make([]RoomResponse, len(rooms)),
	}
	for i, h := range halls {
		resp.Halls[i] = FromDomainHall(h)
	}
	for i, r := range rooms {
		resp.Rooms[i] = FromDomainRoom(r)
	}
	return resp
}

package models

import (
	"time"

	"github.com/m04kA/HRS-EstimateService/internal/domain"
	"github.com/m04kA/HRS-EstimateService/pkg/ptr"
)

// SessionResponse состояние сессии расчёта для выдачи наружу
type SessionResponse struct {
	ID            string         `json:"id"`
	CheckIn       *string        `json:"checkIn,omitempty"`
	CheckOut      *string        `json:"checkOut,omitempty"`
	SelectionMode string         `json:"selectionMode"`
	HallDays      map[string]int `json:"hallDays"`
	RoomNights    map[string]int `json:"roomNights"`
	RoomCounts    map[string]int `json:"roomCounts"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// FromDomainSession конвертирует доменную сессию в response-модель
func FromDomainSession(sess *domain.EstimateSession) *SessionResponse {
	return &SessionResponse{
		ID:            sess.ID,
		CheckIn:       formatDate(sess.Selection.Range.CheckIn),
		CheckOut:      formatDate(sess.Selection.Range.CheckOut),
		SelectionMode: string(sess.Selection.Mode),
		HallDays:      sess.Ledger.HallDays,
		RoomNights:    sess.Ledger.RoomNights,
		RoomCounts:    sess.Ledger.RoomCounts,
		CreatedAt:     sess.CreatedAt,
		UpdatedAt:     sess.UpdatedAt,
	}
}

func formatDate(d *domain.CalendarDate) *string {
	if d == nil {
		return nil
	}
	return ptr.Ptr(d.Time().Format(domain.DateFormat))
}

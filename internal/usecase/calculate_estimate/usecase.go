package calculate_estimate

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HRS-EstimateService/internal/domain"
	sessionRepo "github.com/m04kA/HRS-EstimateService/internal/infra/storage/session"
)

// UseCase use case расчёта стоимости по текущему состоянию сессии
//
// Расчёт — чистая производная: use case ничего не пишет, не держит
// состояния и повторяется на каждый запрос. Неполные данные деградируют
// до нулевых вкладов, а не ошибок
type UseCase struct {
	sessionRepo SessionRepository
	catalogRepo CatalogRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo: sessionRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Execute выполняет use case расчёта стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculateEstimate: session=%s, user=%d", req.SessionID, req.UserID)

	// 1. Валидация входных данных
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	// 2. Загружаем сессию и проверяем владельца
	sess, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			uc.logger.Warn("CalculateEstimate: session=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("CalculateEstimate: failed to get session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}
	if sess.UserID != req.UserID {
		uc.logger.Warn("CalculateEstimate: access denied for user=%d to session=%s", req.UserID, req.SessionID)
		return nil, ErrAccessDenied
	}

	// 3. Загружаем каталог
	halls, err := uc.catalogRepo.ListHalls(ctx)
	if err != nil {
		uc.logger.Error("CalculateEstimate: failed to list halls: %v", err)
		return nil, fmt.Errorf("%w: failed to list halls: %v", ErrInternal, err)
	}
	rooms, err := uc.catalogRepo.ListRooms(ctx)
	if err != nil {
		uc.logger.Error("CalculateEstimate: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 4. Классифицируем ночи подтверждённого диапазона
	// nil-split (диапазон не подтверждён) даёт нулевые вклады номеров
	split := domain.ComputeNightsDays(sess.Selection.Range)

	// 5. Считаем итоги
	total := domain.ComputeEstimate(halls, rooms, sess.Ledger, split)

	resp := &Response{
		HallTotal:    total.HallTotal,
		RoomTotal:    total.RoomTotal,
		GrandTotal:   total.GrandTotal,
		HasSelection: total.HasSelection,
		Halls:        buildHallLines(halls, sess.Ledger),
		Rooms:        buildRoomLines(rooms, sess.Ledger, split),
	}
	if split != nil {
		resp.Nights = split.Nights
		resp.Days = split.Days
		resp.RangeText = domain.StaySummary(sess.Selection.Range, *split)
	}

	uc.logger.Info("CalculateEstimate: session=%s, hallTotal=%d, roomTotal=%d, grandTotal=%d",
		req.SessionID, resp.HallTotal, resp.RoomTotal, resp.GrandTotal)
	return resp, nil
}

// buildHallLines формирует построчный расчёт по залам
func buildHallLines(halls []domain.Hall, ledger domain.QuantityLedger) []HallLine {
	lines := make([]HallLine, len(halls))
	for i, h := range halls {
		days := ledger.HallDays[h.Name]
		lines[i] = HallLine{
			Name:        h.Name,
			PricePerDay: h.PricePerDay,
			Days:        days,
			Subtotal:    h.PricePerDay * int64(days),
		}
	}
	return lines
}

// buildRoomLines формирует построчный расчёт по типам номеров
func buildRoomLines(rooms []domain.Room, ledger domain.QuantityLedger, split *domain.NightDaySplit) []RoomLine {
	var weekdayNights, weekendNights int
	if split != nil {
		weekdayNights = split.WeekdayNights
		weekendNights = split.WeekendNights
	}

	lines := make([]RoomLine, len(rooms))
	for i, r := range rooms {
		nights := ledger.RoomNights[r.Name]
		count := ledger.RoomCounts[r.Name]

		line := RoomLine{
			Name:         r.Name,
			WeekdayPrice: r.WeekdayPrice,
			WeekendPrice: r.WeekendPrice,
			Nights:       nights,
			Count:        count,
		}

		if nights > 0 && count > 0 {
			weekday, weekend := domain.SplitRoomNights(nights, weekdayNights, weekendNights)
			line.WeekdayNights = weekday
			line.WeekendNights = weekend
			line.Subtotal = (r.WeekdayPrice*int64(weekday) + r.WeekendPrice*int64(weekend)) * int64(count)
		}

		lines[i] = line
	}
	return lines
}

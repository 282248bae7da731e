package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HRS-EstimateService/internal/domain"
	"github.com/m04kA/HRS-EstimateService/internal/integrations/contentservice"
	"github.com/m04kA/HRS-EstimateService/internal/service/catalog/models"
)

// Service сервис каталога залов и типов номеров
type Service struct {
	catalogRepo   CatalogRepository
	contentClient ContentServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	catalogRepo CatalogRepository,
	contentClient ContentServiceClient,
	logger Logger,
) *Service {
	return &Service{
		catalogRepo:   catalogRepo,
		contentClient: contentClient,
		logger:        logger,
	}
}

// List возвращает полный каталог из БД
func (s *Service) List(ctx context.Context) (*models.CatalogResponse, error) {
	halls, err := s.catalogRepo.ListHalls(ctx)
	if err != nil {
		s.logger.Error("List: failed to list halls: %v", err)
		return nil, fmt.Errorf("%w: List - halls: %v", ErrInternal, err)
	}

	rooms, err := s.catalogRepo.ListRooms(ctx)
	if err != nil {
		s.logger.Error("List: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: List - rooms: %v", ErrInternal, err)
	}

	s.logger.Info("List: catalog fetched, halls=%d, rooms=%d", len(halls), len(rooms))
	return models.FromDomainCatalog(halls, rooms), nil
}

// SyncFromContent подтягивает мастер-данные каталога из CMS и
// сохраняет их в БД через upsert по имени
//
// Синхронизация идемпотентна: повторный вызов с теми же данными CMS
// не меняет состояние каталога
func (s *Service) SyncFromContent(ctx context.Context) (*models.SyncResult, error) {
	halls, rooms, err := s.contentClient.GetCatalogWithGracefulDegradation(ctx)
	if err != nil {
		if errors.Is(err, contentservice.ErrServiceDegraded) {
			s.logger.Warn("SyncFromContent: content service degraded, keeping existing catalog")
			return nil, ErrContentUnavailable
		}
		s.logger.Error("SyncFromContent: failed to fetch catalog: %v", err)
		return nil, fmt.Errorf("%w: SyncFromContent: %v", ErrInternal, err)
	}

	result := &models.SyncResult{}

	for _, h := range halls {
		hall := &domain.Hall{
			Name:        h.Name,
			PricePerDay: h.PricePerDay,
			Capacity:    h.Capacity,
			AreaSqm:     h.AreaSqm,
			Images:      h.Images,
		}
		if _, err := s.catalogRepo.UpsertHall(ctx, hall); err != nil {
			s.logger.Error("SyncFromContent: failed to upsert hall %q: %v", h.Name, err)
			return nil, fmt.Errorf("%w: SyncFromContent - hall %q: %v", ErrInternal, h.Name, err)
		}
		result.HallsSynced++
	}

	for _, r := range rooms {
		room := &domain.Room{
			Name:           r.Name,
			RoomTypeLabel:  r.RoomTypeLabel,
			BedDescription: r.BedDescription,
			AreaSqm:        r.AreaSqm,
			WeekdayPrice:   r.WeekdayPrice,
			WeekendPrice:   r.WeekendPrice,
			Amenities:      r.Amenities,
			Images:         r.Images,
		}
		if _, err := s.catalogRepo.UpsertRoom(ctx, room); err != nil {
			s.logger.Error("SyncFromContent: failed to upsert room %q: %v", r.Name, err)
			return nil, fmt.Errorf("%w: SyncFromContent - room %q: %v", ErrInternal, r.Name, err)
		}
		result.RoomsSynced++
	}

	s.logger.Info("SyncFromContent: catalog synced, halls=%d, rooms=%d",
		result.HallsSynced, result.RoomsSynced)
	return result, nil
}

package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/HRS-EstimateService/internal/domain"
	sessionRepo "github.com/m04kA/HRS-EstimateService/internal/infra/storage/session"
	"github.com/m04kA/HRS-EstimateService/internal/service/sessions/models"
)

// Service сервис жизненного цикла сессий расчёта
type Service struct {
	sessionRepo SessionRepository
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	sessionRepo SessionRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Create создает новую сессию расчёта для пользователя
// Счётчики инициализируются нулями по текущему каталогу,
// селектор дат — в режиме выбора заезда
func (s *Service) Create(ctx context.Context, userID int64) (*models.SessionResponse, error) {
	halls, err := s.catalogRepo.ListHalls(ctx)
	if err != nil {
		s.logger.Error("Create: failed to list halls: %v", err)
		return nil, fmt.Errorf("%w: Create - halls: %v", ErrInternal, err)
	}

	rooms, err := s.catalogRepo.ListRooms(ctx)
	if err != nil {
		s.logger.Error("Create: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: Create - rooms: %v", ErrInternal, err)
	}

	sess := &domain.EstimateSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Selection: domain.NewSelection(),
		Ledger:    domain.NewQuantityLedger(halls, rooms),
	}

	created, err := s.sessionRepo.Create(ctx, sess)
	if err != nil {
		s.logger.Error("Create: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: session id=%s created for user=%d (halls=%d, rooms=%d)",
		created.ID, userID, len(halls), len(rooms))
	return models.FromDomainSession(created), nil
}

// GetByID получает сессию по идентификатору
// Пользователь видит только свои сессии
func (s *Service) GetByID(ctx context.Context, id string, userID int64) (*models.SessionResponse, error) {
	sess, err := s.load(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSession(sess), nil
}

// ResetDates сбрасывает выбор дат сессии: оба конца диапазона очищаются,
// селектор возвращается в режим выбора заезда. Счётчики не затрагиваются
func (s *Service) ResetDates(ctx context.Context, id string, userID int64) (*models.SessionResponse, error) {
	sess, err := s.load(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	sess.Selection = sess.Selection.Reset()

	if err := s.sessionRepo.Update(ctx, sess); err != nil {
		s.logger.Error("ResetDates: failed to update session id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: ResetDates - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ResetDates: session id=%s dates cleared", id)
	return models.FromDomainSession(sess), nil
}

// Delete удаляет сессию пользователя
func (s *Service) Delete(ctx context.Context, id string, userID int64) error {
	if _, err := s.load(ctx, id, userID); err != nil {
		return err
	}

	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("Delete: repository error for session id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: session id=%s deleted", id)
	return nil
}

// load достает сессию и проверяет права доступа
func (s *Service) load(ctx context.Context, id string, userID int64) (*domain.EstimateSession, error) {
	sess, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("load: session id=%s not found", id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("load: repository error for session id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: load - repository error: %v", ErrInternal, err)
	}

	if sess.UserID != userID {
		s.logger.Warn("load: access denied for user=%d to session id=%s", userID, id)
		return nil, ErrAccessDenied
	}

	return sess, nil
}

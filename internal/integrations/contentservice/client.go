package contentservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с CMS, владеющей мастер-данными каталога
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CMS
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetHalls получает список залов из CMS
func (c *Client) GetHalls(ctx context.Context) ([]Hall, error) {
	var halls []Hall
	if err := c.getJSON(ctx, "/internal/catalog/halls", &halls); err != nil {
		return nil, err
	}
	return halls, nil
}

// GetRooms получает список типов номеров из CMS
func (c *Client) GetRooms(ctx context.Context) ([]Room, error) {
	var rooms []Room
	if err := c.getJSON(ctx, "/internal/catalog/rooms", &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetCatalogWithGracefulDegradation получает каталог целиком с graceful degradation
// При недоступности CMS возвращает ErrServiceDegraded, что позволяет сервису
// продолжить работу с каталогом, ранее сохранённым в БД
func (c *Client) GetCatalogWithGracefulDegradation(ctx context.Context) ([]Hall, []Room, error) {
	c.log.Info("Fetching catalog from content service")

	halls, err := c.GetHalls(ctx)
	if err != nil {
		c.log.Error("Content service unavailable, applying graceful degradation: %v", err)
		return nil, nil, fmt.Errorf("%w: halls: %v", ErrServiceDegraded, err)
	}

	rooms, err := c.GetRooms(ctx)
	if err != nil {
		c.log.Error("Content service unavailable, applying graceful degradation: %v", err)
		return nil, nil, fmt.Errorf("%w: rooms: %v", ErrServiceDegraded, err)
	}

	c.log.Info("Successfully fetched catalog: halls=%d, rooms=%d", len(halls), len(rooms))
	return halls, rooms, nil
}

func (c *Client) getJSON(ctx context.Context, path string, dst interface{}) error {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

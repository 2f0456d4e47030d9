package profileservice

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

// Client клиент для работы с ProfileService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ProfileService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetClient получает профиль клиента по ID
func (c *Client) GetClient(ctx context.Context, clientID string) (*ClientProfile, error) {
	var profile ClientProfile
	url := fmt.Sprintf("%s/internal/clients/%s", c.baseURL, clientID)
	if err := c.get(ctx, url, ErrClientNotFound, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetPhotographer получает профиль фотографа по ID
func (c *Client) GetPhotographer(ctx context.Context, photographerID string) (*PhotographerProfile, error) {
	var profile PhotographerProfile
	url := fmt.Sprintf("%s/internal/photographers/%s", c.baseURL, photographerID)
	if err := c.get(ctx, url, ErrPhotographerNotFound, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetPhotographerWithGracefulDegradation получает профиль фотографа с graceful degradation.
// Бизнес-ошибка "не найден" пробрасывается как есть; любая инфраструктурная
// ошибка (недоступность, timeout, битый ответ) превращается в ErrServiceDegraded,
// чтобы вызывающая сторона могла продолжить работу без профильных данных.
func (c *Client) GetPhotographerWithGracefulDegradation(ctx context.Context, photographerID string) (*PhotographerProfile, error) {
	profile, err := c.GetPhotographer(ctx, photographerID)
	if err != nil {
		if err == ErrPhotographerNotFound {
			c.log.Info("No photographer profile found for id=%s", photographerID)
			return nil, err
		}

		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("ProfileService unavailable, applying graceful degradation for photographer id=%s: %v", photographerID, err)
		return nil, fmt.Errorf("%w: photographer_id=%s, error=%v", ErrServiceDegraded, photographerID, err)
	}

	return profile, nil
}

// GetClientWithGracefulDegradation получает профиль клиента с graceful degradation
func (c *Client) GetClientWithGracefulDegradation(ctx context.Context, clientID string) (*ClientProfile, error) {
	profile, err := c.GetClient(ctx, clientID)
	if err != nil {
		if err == ErrClientNotFound {
			c.log.Info("No client profile found for id=%s", clientID)
			return nil, err
		}

		c.log.Error("ProfileService unavailable, applying graceful degradation for client id=%s: %v", clientID, err)
		return nil, fmt.Errorf("%w: client_id=%s, error=%v", ErrServiceDegraded, clientID, err)
	}

	return profile, nil
}

// get выполняет GET запрос и декодирует JSON ответ
func (c *Client) get(ctx context.Context, url string, notFound error, out interface{}) error {
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

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

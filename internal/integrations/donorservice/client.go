package donorservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-DonationService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с DonorService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента DonorService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetDonor получает профиль донора (имя и пол)
func (c *Client) GetDonor(ctx context.Context, donorID int64) (*domain.Donor, error) {
	url := fmt.Sprintf("%s/internal/donors/%d", c.baseURL, donorID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("DonorService request failed for donor_id=%d: %v", donorID, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid donor ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrDonorNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	}

	var dto Donor
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	donor, err := dto.toDomain()
	if err != nil {
		return nil, err
	}

	c.log.Info("Fetched donor_id=%d, gender=%s", donor.ID, donor.Gender)
	return donor, nil
}

// FindDonor как GetDonor, но отсутствующий донор возвращается как nil без ошибки
func (c *Client) FindDonor(ctx context.Context, donorID int64) (*domain.Donor, error) {
	donor, err := c.GetDonor(ctx, donorID)
	if errors.Is(err, ErrDonorNotFound) {
		return nil, nil
	}
	return donor, err
}

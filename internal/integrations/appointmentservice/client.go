package appointmentservice

import (
	"context"
	"encoding/json"
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

// Metrics счётчик деградаций
type Metrics interface {
	IncHistoryDegraded()
}

// Client клиент для работы с AppointmentService (история записей донора)
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента AppointmentService
func NewClient(baseURL string, timeout time.Duration, metrics Metrics, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
	}
}

// GetAppointments получает все записи донора
func (c *Client) GetAppointments(ctx context.Context, donorID int64) ([]domain.Appointment, error) {
	url := fmt.Sprintf("%s/internal/donors/%d/appointments", c.baseURL, donorID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		// У донора нет истории
		return []domain.Appointment{}, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var dtos []Appointment
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	appointments := make([]domain.Appointment, 0, len(dtos))
	for _, dto := range dtos {
		appt, err := dto.toDomain(donorID)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, appt)
	}

	return appointments, nil
}

// GetAppointmentsWithGracefulDegradation получает историю записей с graceful degradation.
// При недоступности сервиса возвращает пустую историю и degraded=true: донор считается без прошлых записей.
func (c *Client) GetAppointmentsWithGracefulDegradation(ctx context.Context, donorID int64) ([]domain.Appointment, bool) {
	c.log.Info("Fetching appointment history for donor_id=%d", donorID)

	appointments, err := c.GetAppointments(ctx, donorID)
	if err != nil {
		c.log.Error("AppointmentService unavailable, applying graceful degradation for donor_id=%d: %v", donorID, err)
		c.metrics.IncHistoryDegraded()
		return []domain.Appointment{}, true
	}

	c.log.Info("Fetched %d appointments for donor_id=%d", len(appointments), donorID)
	return appointments, false
}

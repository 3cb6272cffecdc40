package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/zanaya/ZNY-BookingService/internal/domain"
)

// Client клиент для работы с бэкендом бронирований (email-доставка).
// Таймаут HTTP-клиента ограничивает отправку; истечение трактуется
// как сетевая ошибка, отмена после отправки не поддерживается.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SubmitBooking отправляет черновик на POST /api/submit-booking.
// Возвращает сообщение сервера при успехе.
func (c *Client) SubmitBooking(ctx context.Context, draft *domain.BookingDraft) (string, error) {
	body, err := json.Marshal(FromDraft(draft))
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := c.baseURL + "/api/submit-booking"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("SubmitBooking: request failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	var envelope SubmitBookingResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&envelope)

	// Non-2xx: берём сообщение сервера, при нечитаемом теле — generic
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := fmt.Sprintf("Server error (%d)", resp.StatusCode)
		if decodeErr == nil && envelope.Message != "" {
			message = envelope.Message
		}
		c.log.Warn("SubmitBooking: rejected with status=%d: %s", resp.StatusCode, message)
		return "", &RejectedError{StatusCode: resp.StatusCode, Message: message}
	}

	if decodeErr != nil {
		c.log.Error("SubmitBooking: failed to decode response: %v", decodeErr)
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, decodeErr)
	}

	if !envelope.Success {
		c.log.Warn("SubmitBooking: server reported failure: %s", envelope.Message)
		return "", &RejectedError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	c.log.Info("SubmitBooking: accepted, customer=%s", draft.PersonalInfo.Name)
	return envelope.Message, nil
}

// Deliver реализует стратегию доставки мастера поверх SubmitBooking
func (c *Client) Deliver(ctx context.Context, draft *domain.BookingDraft) error {
	_, err := c.SubmitBooking(ctx, draft)
	return err
}

package wizard

import (
	"context"

	"github.com/zanaya/ZNY-BookingService/internal/domain"
)

// DeliveryAdapter интерфейс стратегии доставки готового бронирования.
// Реализации: email-бэкенд (через HTTP API) и messaging deep link.
// Выбирается один раз при сборке, стратегии не совмещаются.
type DeliveryAdapter interface {
	Deliver(ctx context.Context, draft *domain.BookingDraft) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

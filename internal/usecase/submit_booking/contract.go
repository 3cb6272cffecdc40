package submit_booking

import (
	"context"

	"github.com/zanaya/ZNY-BookingService/internal/domain"
)

// Notifier интерфейс канала уведомлений о принятом бронировании
type Notifier interface {
	Notify(ctx context.Context, draft *domain.BookingDraft) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package submit_booking

import (
	"context"

	"github.com/zanaya/ZNY-BookingService/internal/domain"
	submitBooking "github.com/zanaya/ZNY-BookingService/internal/usecase/submit_booking"
)

// SubmitBookingUseCase интерфейс use case приема бронирования
type SubmitBookingUseCase interface {
	Execute(ctx context.Context, draft *domain.BookingDraft) (*submitBooking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

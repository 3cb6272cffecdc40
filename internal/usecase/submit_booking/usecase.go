package submit_booking

import (
	"context"
	"time"

	"github.com/zanaya/ZNY-BookingService/internal/domain"
	"github.com/zanaya/ZNY-BookingService/internal/service/pricing"
	"github.com/zanaya/ZNY-BookingService/internal/service/validation"
)

// UseCase серверная обработка отправленного бронирования.
// Клиентская проверка не заслуживает доверия: валидация выполняется
// здесь повторно и её результат авторитетен.
type UseCase struct {
	notifier Notifier
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		notifier: notifier,
		logger:   logger,
	}
}

// Execute выполняет прием бронирования
func (uc *UseCase) Execute(ctx context.Context, draft *domain.BookingDraft) (*Response, error) {
	// 1. Авторитетная валидация (email обязателен на этом пути)
	if err := validation.ValidateDraft(draft, validation.Options{RequireEmail: true}); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Пересчитываем суммы на сервере
	quote := pricing.Calculate(draft)

	// 3. Best-effort уведомление: отказ почтового канала логируется,
	// но бронирование считается принятым в любом случае
	if err := uc.notifier.Notify(ctx, draft); err != nil {
		uc.logger.Error("SubmitBooking: notification delivery failed (booking still accepted): %v", err)
	}

	// 4. Фиксируем принятое бронирование в логе
	uc.logger.Info("New booking received: timestamp=%s, customer=%s, religion=%s, total=%d",
		time.Now().UTC().Format(time.RFC3339), draft.PersonalInfo.Name, draft.Religion.Name, quote.GrandTotal)

	return &Response{
		Customer: draft.PersonalInfo.Name,
		Religion: draft.Religion.Name,
		Quote:    quote,
	}, nil
}

package email

import "errors"

var (
	// ErrRenderFailed возвращается при ошибке рендера письма
	ErrRenderFailed = errors.New("email: failed to render notification")

	// ErrSendFailed возвращается, когда SMTP-доставка не удалась.
	// Вызывающий код логирует эту ошибку и НЕ проваливает бронирование.
	ErrSendFailed = errors.New("email: failed to send notification")
)

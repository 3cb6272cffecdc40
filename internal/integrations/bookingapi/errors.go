package bookingapi

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork возвращается, когда запрос не дошел до сервера
	ErrNetwork = errors.New("bookingapi client: request did not reach the server")

	// ErrMalformedResponse возвращается, когда тело ответа не разбирается
	ErrMalformedResponse = errors.New("bookingapi client: malformed response body")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingapi client: internal error")
)

// RejectedError возвращается, когда сервер отклонил бронирование
// (non-2xx либо success=false). Message пригоден для показа пользователю.
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("bookingapi client: booking rejected (status %d): %s", e.StatusCode, e.Message)
}

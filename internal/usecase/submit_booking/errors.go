package submit_booking

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках usecase.
	// Ошибки валидации пробрасываются как есть из пакета validation.
	ErrInternal = errors.New("submit_booking: internal error")
)

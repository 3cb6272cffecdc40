package wizard

import "errors"

var (
	// ErrReligionNotFound возвращается, когда религия отсутствует в каталоге
	ErrReligionNotFound = errors.New("wizard: religion not found")

	// ErrNoReligionSelected возвращается при операциях с набором до выбора религии
	ErrNoReligionSelected = errors.New("wizard: no religion selected")

	// ErrKitItemNotFound возвращается, когда предмет не входит в набор текущей религии
	ErrKitItemNotFound = errors.New("wizard: kit item not found in current kit")

	// ErrServiceNotFound возвращается, когда услуга отсутствует в каталоге
	ErrServiceNotFound = errors.New("wizard: service not found")

	// ErrNotAtReviewStep возвращается при попытке отправить бронирование не с шага Review
	ErrNotAtReviewStep = errors.New("wizard: submission is only allowed at the review step")

	// ErrSubmitInFlight возвращается при повторной отправке, пока предыдущая не завершилась
	ErrSubmitInFlight = errors.New("wizard: submission already in progress")
)

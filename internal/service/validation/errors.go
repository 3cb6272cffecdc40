package validation

import "errors"

var (
	// ErrNameRequired возвращается, когда имя пустое после trim
	ErrNameRequired = errors.New("validation: name is required")

	// ErrEmailRequired возвращается, когда email пустой (только для email-доставки)
	ErrEmailRequired = errors.New("validation: email is required")

	// ErrEmailInvalid возвращается, когда email не проходит проверку формата
	ErrEmailInvalid = errors.New("validation: email address is invalid")

	// ErrAddressRequired возвращается, когда адрес пустой после trim
	ErrAddressRequired = errors.New("validation: address is required")

	// ErrPhoneRequired возвращается, когда телефон пустой после trim
	ErrPhoneRequired = errors.New("validation: phone number is required")

	// ErrReligionRequired возвращается, когда религия не выбрана
	ErrReligionRequired = errors.New("validation: religion selection is required")
)

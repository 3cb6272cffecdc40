package validation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/zanaya/ZNY-BookingService/internal/domain"
)

// emailPattern: непробельный сегмент без @, затем @, затем сегмент,
// затем точка и ещё один сегмент. Намеренно простая проверка,
// "foo@bar" без доменной точки не проходит.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Options режим проверки черновика.
// Email-доставка требует email, messaging-link доставка — нет.
type Options struct {
	RequireEmail bool
}

// ValidateDraft проверяет черновик перед отправкой.
// Правила применяются строго по порядку, останавливаясь на первом
// нарушении. Черновик не изменяется.
func ValidateDraft(draft *domain.BookingDraft, opts Options) error {
	if strings.TrimSpace(draft.PersonalInfo.Name) == "" {
		return ErrNameRequired
	}

	if opts.RequireEmail {
		email := strings.TrimSpace(draft.PersonalInfo.Email)
		if email == "" {
			return ErrEmailRequired
		}
		if !emailPattern.MatchString(email) {
			return ErrEmailInvalid
		}
	}

	if strings.TrimSpace(draft.PersonalInfo.Address) == "" {
		return ErrAddressRequired
	}

	if strings.TrimSpace(draft.PersonalInfo.Phone) == "" {
		return ErrPhoneRequired
	}

	if draft.Religion == nil {
		return ErrReligionRequired
	}

	return nil
}

// Message возвращает текст ошибки валидации для пользователя.
// Тексты совпадают с ответами сервера, клиентская проверка показывает
// то же самое, что вернул бы бэкенд.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrNameRequired):
		return "Name is required"
	case errors.Is(err, ErrEmailRequired):
		return "Email is required"
	case errors.Is(err, ErrEmailInvalid):
		return "Please enter a valid email address"
	case errors.Is(err, ErrAddressRequired):
		return "Address is required"
	case errors.Is(err, ErrPhoneRequired):
		return "Phone number is required"
	case errors.Is(err, ErrReligionRequired):
		return "Religion selection is required"
	default:
		return err.Error()
	}
}

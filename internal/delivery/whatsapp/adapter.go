package whatsapp

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/browser"

	"github.com/zanaya/ZNY-BookingService/internal/domain"
	"github.com/zanaya/ZNY-BookingService/internal/service/pricing"
)

// baseURL сервис deep link'ов WhatsApp
const baseURL = "https://wa.me/"

// Adapter собирает итемизированное текстовое сообщение из черновика,
// строит deep link на фиксированный номер оператора и открывает его.
// Сетевых вызовов нет; у стратегии нет собственного режима отказа —
// открылось ли внешнее приложение, определить невозможно, поэтому
// Deliver всегда сообщает успех.
type Adapter struct {
	operatorNumber string
	opener         LinkOpener
	logger         Logger
}

// NewAdapter создает адаптер с открытием через системный браузер
func NewAdapter(operatorNumber string, logger Logger) *Adapter {
	return &Adapter{
		operatorNumber: operatorNumber,
		opener:         browserOpener{},
		logger:         logger,
	}
}

// NewAdapterWithOpener создает адаптер с заданным LinkOpener (для тестов)
func NewAdapterWithOpener(operatorNumber string, opener LinkOpener, logger Logger) *Adapter {
	return &Adapter{
		operatorNumber: operatorNumber,
		opener:         opener,
		logger:         logger,
	}
}

// Deliver открывает pre-filled сообщение оператору. Всегда nil.
func (a *Adapter) Deliver(ctx context.Context, draft *domain.BookingDraft) error {
	link := a.Link(draft)

	if err := a.opener.Open(link); err != nil {
		// Не проваливаем отправку: ссылку можно открыть вручную
		a.logger.Warn("Deliver: failed to open messaging link: %v", err)
	}

	a.logger.Info("Deliver: messaging link opened for customer=%s", draft.PersonalInfo.Name)
	return nil
}

// Link строит deep link с percent-encoded сообщением
func (a *Adapter) Link(draft *domain.BookingDraft) string {
	return baseURL + a.operatorNumber + "?text=" + encodeText(BuildMessage(draft))
}

// BuildMessage собирает компактное маркированное сообщение:
// та же итемизация, что в email-уведомлении
func BuildMessage(draft *domain.BookingDraft) string {
	quote := pricing.Calculate(draft)
	cur := domain.CurrencySymbol

	var b strings.Builder
	b.WriteString("*New ZANAYA Booking*\n\n")

	b.WriteString("*Contact*\n")
	fmt.Fprintf(&b, "Name: %s\n", draft.PersonalInfo.Name)
	fmt.Fprintf(&b, "Phone: %s\n", draft.PersonalInfo.Phone)
	fmt.Fprintf(&b, "Address: %s\n", draft.PersonalInfo.Address)
	if draft.PersonalInfo.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", draft.PersonalInfo.Email)
	}

	if draft.Religion != nil {
		fmt.Fprintf(&b, "\n*Religion*: %s\n", draft.Religion.Name)
	}

	if len(draft.SelectedKitItems) > 0 {
		b.WriteString("\n*Kit Items*\n")
		for _, item := range draft.SelectedKitItems {
			fmt.Fprintf(&b, "- %s - %s%d", item.Name, cur, item.Price)
			if item.Required {
				b.WriteString(" (Required)")
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Kit Subtotal: %s%d\n", cur, quote.KitSubtotal)
	}

	if len(draft.SelectedServices) > 0 {
		b.WriteString("\n*Services*\n")
		for _, svc := range draft.SelectedServices {
			fmt.Fprintf(&b, "- %s - %s%d", svc.Name, cur, svc.Price)
			if svc.Duration != "" {
				fmt.Fprintf(&b, " (%s)", svc.Duration)
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Services Subtotal: %s%d\n", cur, quote.ServicesSubtotal)
	}

	fmt.Fprintf(&b, "\n*Grand Total: %s%d*", cur, quote.GrandTotal)
	return b.String()
}

// encodeText percent-encoding текста для query-параметра:
// пробелы как %20, не как "+"
func encodeText(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// browserOpener открывает ссылку в браузере по умолчанию
type browserOpener struct{}

func (browserOpener) Open(rawURL string) error {
	return browser.OpenURL(rawURL)
}

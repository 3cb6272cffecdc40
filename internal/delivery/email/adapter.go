package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/zanaya/ZNY-BookingService/internal/domain"
)

// Config настройки исходящей почты. Учетные данные приходят из
// окружения; пустые User/Password отключают доставку целиком.
type Config struct {
	Host       string
	Port       int
	User       string
	Password   string
	AdminEmail string // получатель уведомлений, по умолчанию сам аккаунт
}

// Adapter отправляет уведомление о бронировании администратору.
// Доставка best-effort: отказ SMTP не проваливает бронирование.
type Adapter struct {
	cfg    Config
	sender Sender
	logger Logger
}

// NewAdapter создает адаптер. Если учетные данные не заданы,
// адаптер остается в выключенном состоянии и Notify ничего не шлёт.
func NewAdapter(cfg Config, logger Logger) *Adapter {
	a := &Adapter{cfg: cfg, logger: logger}

	if !a.Configured() {
		logger.Warn("Email configuration not found. Email functionality will be disabled.")
		return a
	}

	a.sender = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	return a
}

// NewAdapterWithSender создает адаптер с готовым Sender (для тестов)
func NewAdapterWithSender(cfg Config, sender Sender, logger Logger) *Adapter {
	return &Adapter{cfg: cfg, sender: sender, logger: logger}
}

// Configured возвращает true, если почтовый канал настроен
func (a *Adapter) Configured() bool {
	return a.cfg.User != "" && a.cfg.Password != ""
}

// recipient адресат уведомления
func (a *Adapter) recipient() string {
	if a.cfg.AdminEmail != "" {
		return a.cfg.AdminEmail
	}
	return a.cfg.User
}

// Notify рендерит и отправляет письмо о новом бронировании.
// Без настроенного канала доставка пропускается с nil-результатом.
func (a *Adapter) Notify(ctx context.Context, draft *domain.BookingDraft) error {
	if !a.Configured() || a.sender == nil {
		a.logger.Info("Email not configured - booking accepted without email notification")
		return nil
	}

	body, err := renderNotification(draft)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", a.cfg.User)
	m.SetHeader("To", a.recipient())
	m.SetHeader("Subject", fmt.Sprintf("New ZANAYA Booking - %s", draft.PersonalInfo.Name))
	m.SetBody("text/html", body)

	if err := a.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	a.logger.Info("Notify: email sent to %s for customer=%s", a.recipient(), draft.PersonalInfo.Name)
	return nil
}

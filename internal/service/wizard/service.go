package wizard

import (
	"context"
	"strings"

	"github.com/zanaya/ZNY-BookingService/internal/domain"
	"github.com/zanaya/ZNY-BookingService/internal/service/validation"
)

// Service владеет единственным черновиком бронирования и проводит его
// по шагам мастера. Все мутации синхронные и атомарные: сервис
// рассчитан на один поток событий, один черновик, одного пользователя.
type Service struct {
	catalog       *domain.Catalog
	delivery      DeliveryAdapter
	validationOpt validation.Options
	logger        Logger

	draft *domain.BookingDraft
	// submitting защищает от повторной отправки, пока доставка не
	// завершилась ровно одним исходом. Не мьютекс: вызовы приходят
	// из одного событийного цикла.
	submitting bool
}

// NewService создает мастер с пустым черновиком на нулевом шаге
func NewService(catalog *domain.Catalog, delivery DeliveryAdapter, opts validation.Options, logger Logger) *Service {
	return &Service{
		catalog:       catalog,
		delivery:      delivery,
		validationOpt: opts,
		logger:        logger,
		draft:         domain.NewBookingDraft(),
	}
}

// Draft возвращает текущий черновик
func (s *Service) Draft() *domain.BookingDraft {
	return s.draft
}

// Reset сбрасывает мастер к пустому черновику (после подтверждения
// клиент может начать новое бронирование)
func (s *Service) Reset() {
	s.draft = domain.NewBookingDraft()
}

// SetReligion выбирает религию и синхронно пересобирает набор:
// прежние выборы отбрасываются, остаются ровно обязательные предметы
// набора новой религии. Единственная автоматическая мутация в системе.
// Выбранные услуги намеренно не трогаем: они остаются в черновике
// даже после смены религии.
func (s *Service) SetReligion(religionID string) error {
	religion, ok := s.catalog.ReligionByID(religionID)
	if !ok {
		s.logger.Warn("SetReligion: religion id=%s not found", religionID)
		return ErrReligionNotFound
	}

	s.draft.Religion = religion
	s.draft.SelectedKitItems = nil

	if kit, ok := s.catalog.KitFor(religionID); ok {
		s.draft.SelectedKitItems = kit.RequiredItems()
	}

	s.logger.Info("SetReligion: religion=%s, auto-selected %d required items",
		religionID, len(s.draft.SelectedKitItems))
	return nil
}

// ToggleKitItem переключает членство предмета в выборе.
// Обязательные предметы не переключаются: вызов — no-op.
func (s *Service) ToggleKitItem(itemID string) error {
	if s.draft.Religion == nil {
		return ErrNoReligionSelected
	}

	kit, ok := s.catalog.KitFor(s.draft.Religion.ID)
	if !ok {
		return ErrKitItemNotFound
	}
	item, ok := kit.ItemByID(itemID)
	if !ok {
		return ErrKitItemNotFound
	}

	if item.Required {
		return nil
	}

	if s.draft.HasKitItem(itemID) {
		s.draft.RemoveKitItem(itemID)
	} else {
		s.draft.SelectedKitItems = append(s.draft.SelectedKitItems, item)
	}
	return nil
}

// ToggleService переключает членство услуги в выборе, безусловно
func (s *Service) ToggleService(serviceID string) error {
	svc, ok := s.catalog.ServiceByID(serviceID)
	if !ok {
		return ErrServiceNotFound
	}

	if s.draft.HasService(serviceID) {
		s.draft.RemoveService(serviceID)
	} else {
		s.draft.SelectedServices = append(s.draft.SelectedServices, *svc)
	}
	return nil
}

// SetPersonalInfo заменяет контактные данные целиком
func (s *Service) SetPersonalInfo(info domain.PersonalInfo) {
	s.draft.PersonalInfo = info
}

// CanAdvance проверяет, пройден ли текущий шаг
func (s *Service) CanAdvance() bool {
	return canAdvance(s.draft.CurrentStep, s.draft)
}

// Advance переходит на следующий шаг, если текущий пройден.
// Иначе тихий no-op: это подсказка интерфейсу, не жёсткая граница.
// Шаг Confirmation достижим только через Submit.
func (s *Service) Advance() {
	if !canAdvance(s.draft.CurrentStep, s.draft) {
		return
	}
	if s.draft.CurrentStep < StepBeforeTerminal() {
		s.draft.CurrentStep++
	}
}

// Retreat возвращается на шаг назад, данные не теряются.
// Разрешён всегда, кроме нулевого шага.
func (s *Service) Retreat() {
	if s.draft.CurrentStep > domain.StepReligion {
		s.draft.CurrentStep--
	}
}

// Submit отправляет бронирование через стратегию доставки.
// Шаг Confirmation устанавливается только после успеха доставки;
// при ошибке черновик и шаг остаются нетронутыми, повтор разрешён.
func (s *Service) Submit(ctx context.Context) error {
	if s.draft.CurrentStep != domain.StepReview {
		return ErrNotAtReviewStep
	}
	if s.submitting {
		return ErrSubmitInFlight
	}

	// Предварительная клиентская проверка. Сервер email-пути проверит
	// ещё раз, его решение авторитетно.
	if err := validation.ValidateDraft(s.draft, s.validationOpt); err != nil {
		s.logger.Warn("Submit: validation failed: %v", err)
		return err
	}

	s.submitting = true
	defer func() { s.submitting = false }()

	if err := s.delivery.Deliver(ctx, s.draft); err != nil {
		s.logger.Error("Submit: delivery failed: %v", err)
		return err
	}

	s.draft.CurrentStep = domain.StepConfirmation
	s.logger.Info("Submit: booking delivered, customer=%s, religion=%s",
		s.draft.PersonalInfo.Name, s.draft.Religion.Name)
	return nil
}

// StepBeforeTerminal последний шаг, достижимый через Advance
func StepBeforeTerminal() domain.Step {
	return domain.StepReview
}

// canAdvance таблица условий прохождения шагов
func canAdvance(step domain.Step, draft *domain.BookingDraft) bool {
	switch step {
	case domain.StepReligion:
		return draft.Religion != nil
	case domain.StepKitItems:
		return len(draft.SelectedKitItems) > 0
	case domain.StepServices:
		return true // услуги опциональны
	case domain.StepPersonalInfo:
		return strings.TrimSpace(draft.PersonalInfo.Name) != "" &&
			strings.TrimSpace(draft.PersonalInfo.Address) != "" &&
			strings.TrimSpace(draft.PersonalInfo.Phone) != ""
	case domain.StepReview:
		return true // дальше только через Submit
	default:
		return false
	}
}

package submit_booking

import "github.com/zanaya/ZNY-BookingService/internal/domain"

// ReligionRequest wire-модель религии
type ReligionRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// KitItemRequest wire-модель предмета набора
type KitItemRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Required    bool   `json:"required"`
}

// ServiceRequest wire-модель услуги
type ServiceRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Duration    string   `json:"duration,omitempty"`
	Religions   []string `json:"religions"`
}

// PersonalInfoRequest wire-модель контактных данных
type PersonalInfoRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// SubmitBookingRequest HTTP request model: форма BookingDraft
type SubmitBookingRequest struct {
	Religion         *ReligionRequest     `json:"religion"`
	SelectedKitItems []KitItemRequest     `json:"selectedKitItems"`
	SelectedServices []ServiceRequest     `json:"selectedServices"`
	PersonalInfo     PersonalInfoRequest  `json:"personalInfo"`
}

// ToDraft конвертирует HTTP запрос в доменный черновик
func (r *SubmitBookingRequest) ToDraft() *domain.BookingDraft {
	draft := domain.NewBookingDraft()

	if r.Religion != nil {
		draft.Religion = &domain.Religion{
			ID:          r.Religion.ID,
			Name:        r.Religion.Name,
			Description: r.Religion.Description,
			Icon:        r.Religion.Icon,
		}
	}

	for _, item := range r.SelectedKitItems {
		draft.SelectedKitItems = append(draft.SelectedKitItems, domain.KitItem{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Required:    item.Required,
		})
	}

	for _, svc := range r.SelectedServices {
		draft.SelectedServices = append(draft.SelectedServices, domain.Service{
			ID:          svc.ID,
			Name:        svc.Name,
			Description: svc.Description,
			Price:       svc.Price,
			Duration:    svc.Duration,
			Religions:   svc.Religions,
		})
	}

	draft.PersonalInfo = domain.PersonalInfo{
		Name:    r.PersonalInfo.Name,
		Address: r.PersonalInfo.Address,
		Phone:   r.PersonalInfo.Phone,
		Email:   r.PersonalInfo.Email,
	}

	return draft
}

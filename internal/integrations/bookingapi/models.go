package bookingapi

import "github.com/zanaya/ZNY-BookingService/internal/domain"

// Religion wire-модель религии
type Religion struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// KitItem wire-модель предмета набора
type KitItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Required    bool   `json:"required"`
}

// Service wire-модель услуги
type Service struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Duration    string   `json:"duration,omitempty"`
	Religions   []string `json:"religions"`
}

// PersonalInfo wire-модель контактных данных
type PersonalInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// SubmitBookingRequest тело POST /api/submit-booking
type SubmitBookingRequest struct {
	Religion         *Religion    `json:"religion"`
	SelectedKitItems []KitItem    `json:"selectedKitItems"`
	SelectedServices []Service    `json:"selectedServices"`
	PersonalInfo     PersonalInfo `json:"personalInfo"`
}

// SubmitBookingResponse конверт ответа бэкенда
type SubmitBookingResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FromDraft конвертирует доменный черновик в wire-модель запроса
func FromDraft(draft *domain.BookingDraft) *SubmitBookingRequest {
	req := &SubmitBookingRequest{
		SelectedKitItems: make([]KitItem, 0, len(draft.SelectedKitItems)),
		SelectedServices: make([]Service, 0, len(draft.SelectedServices)),
		PersonalInfo: PersonalInfo{
			Name:    draft.PersonalInfo.Name,
			Address: draft.PersonalInfo.Address,
			Phone:   draft.PersonalInfo.Phone,
			Email:   draft.PersonalInfo.Email,
		},
	}

	if draft.Religion != nil {
		req.Religion = &Religion{
			ID:          draft.Religion.ID,
			Name:        draft.Religion.Name,
			Description: draft.Religion.Description,
			Icon:        draft.Religion.Icon,
		}
	}

	for _, item := range draft.SelectedKitItems {
		req.SelectedKitItems = append(req.SelectedKitItems, KitItem{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Required:    item.Required,
		})
	}

	for _, svc := range draft.SelectedServices {
		req.SelectedServices = append(req.SelectedServices, Service{
			ID:          svc.ID,
			Name:        svc.Name,
			Description: svc.Description,
			Price:       svc.Price,
			Duration:    svc.Duration,
			Religions:   svc.Religions,
		})
	}

	return req
}

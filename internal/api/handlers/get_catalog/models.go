package get_catalog

import "github.com/zanaya/ZNY-BookingService/internal/domain"

// ReligionResponse wire-модель религии
type ReligionResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// KitItemResponse wire-модель предмета набора
type KitItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Required    bool   `json:"required"`
}

// KitResponse wire-модель набора религии
type KitResponse struct {
	ReligionID string            `json:"religionId"`
	Items      []KitItemResponse `json:"items"`
}

// ServiceResponse wire-модель услуги
type ServiceResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Duration    string   `json:"duration,omitempty"`
	Religions   []string `json:"religions"`
}

// FromDomainReligions конвертирует религии каталога в ответ
func FromDomainReligions(religions []domain.Religion) []ReligionResponse {
	out := make([]ReligionResponse, 0, len(religions))
	for _, r := range religions {
		out = append(out, ReligionResponse{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Icon:        r.Icon,
		})
	}
	return out
}

// FromDomainKit конвертирует набор в ответ
func FromDomainKit(kit *domain.Kit) KitResponse {
	resp := KitResponse{
		ReligionID: kit.ReligionID,
		Items:      make([]KitItemResponse, 0, len(kit.Items)),
	}
	for _, item := range kit.Items {
		resp.Items = append(resp.Items, KitItemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			Required:    item.Required,
		})
	}
	return resp
}

// FromDomainServices конвертирует услуги в ответ
func FromDomainServices(services []domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, svc := range services {
		out = append(out, ServiceResponse{
			ID:          svc.ID,
			Name:        svc.Name,
			Description: svc.Description,
			Price:       svc.Price,
			Duration:    svc.Duration,
			Religions:   svc.Religions,
		})
	}
	return out
}

package get_catalog

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/zanaya/ZNY-BookingService/internal/api/handlers"
	"github.com/zanaya/ZNY-BookingService/internal/domain"
)

const (
	msgReligionNotFound = "Religion not found"
	msgKitNotFound      = "Kit not found for this religion"
)

// Handler отдаёт справочный каталог: религии, наборы, услуги.
// Каталог read-only и загружен при старте, поэтому хендлеру достаточно
// самого datasets без сервисного слоя.
type Handler struct {
	catalog *domain.Catalog
	logger  Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

func NewHandler(catalog *domain.Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// HandleReligions GET /api/religions
func (h *Handler) HandleReligions(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, FromDomainReligions(h.catalog.Religions))
}

// HandleKit GET /api/religions/{religionId}/kit
func (h *Handler) HandleKit(w http.ResponseWriter, r *http.Request) {
	religionID := mux.Vars(r)["religionId"]

	if _, ok := h.catalog.ReligionByID(religionID); !ok {
		h.logger.Warn("GET /religions/{id}/kit - Religion not found: id=%s", religionID)
		handlers.RespondNotFound(w, msgReligionNotFound)
		return
	}

	kit, ok := h.catalog.KitFor(religionID)
	if !ok {
		h.logger.Warn("GET /religions/{id}/kit - Kit not found: religion=%s", religionID)
		handlers.RespondNotFound(w, msgKitNotFound)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainKit(kit))
}

// HandleServices GET /api/services?religionId=
func (h *Handler) HandleServices(w http.ResponseWriter, r *http.Request) {
	religionID := r.URL.Query().Get("religionId")

	services := h.catalog.Services
	if religionID != "" {
		services = h.catalog.ServicesFor(religionID)
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainServices(services))
}

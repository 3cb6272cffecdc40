package submit_booking

import (
	"errors"
	"net/http"

	"github.com/zanaya/ZNY-BookingService/internal/api/handlers"
	"github.com/zanaya/ZNY-BookingService/internal/service/validation"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgNameRequired       = "Name is required"
	msgEmailRequired      = "Email is required"
	msgEmailInvalid       = "Please enter a valid email address"
	msgAddressRequired    = "Address is required"
	msgPhoneRequired      = "Phone number is required"
	msgReligionRequired   = "Religion selection is required"
	msgSuccess            = "Booking submitted successfully. You will be contacted shortly."
	msgInternal           = "Failed to process booking. Please try again."
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/submit-booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /submit-booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft := req.ToDraft()

	result, err := h.useCase.Execute(r.Context(), draft)
	if err != nil {
		// Каждый отказ валидатора отдаётся как 400 со своим сообщением
		switch {
		case errors.Is(err, validation.ErrNameRequired):
			h.logger.Warn("POST /submit-booking - Name missing")
			handlers.RespondBadRequest(w, msgNameRequired)

		case errors.Is(err, validation.ErrEmailRequired):
			h.logger.Warn("POST /submit-booking - Email missing: customer=%s", req.PersonalInfo.Name)
			handlers.RespondBadRequest(w, msgEmailRequired)

		case errors.Is(err, validation.ErrEmailInvalid):
			h.logger.Warn("POST /submit-booking - Email invalid: customer=%s", req.PersonalInfo.Name)
			handlers.RespondBadRequest(w, msgEmailInvalid)

		case errors.Is(err, validation.ErrAddressRequired):
			h.logger.Warn("POST /submit-booking - Address missing: customer=%s", req.PersonalInfo.Name)
			handlers.RespondBadRequest(w, msgAddressRequired)

		case errors.Is(err, validation.ErrPhoneRequired):
			h.logger.Warn("POST /submit-booking - Phone missing: customer=%s", req.PersonalInfo.Name)
			handlers.RespondBadRequest(w, msgPhoneRequired)

		case errors.Is(err, validation.ErrReligionRequired):
			h.logger.Warn("POST /submit-booking - Religion missing: customer=%s", req.PersonalInfo.Name)
			handlers.RespondBadRequest(w, msgReligionRequired)

		default:
			h.logger.Error("POST /submit-booking - Failed to process booking: customer=%s, error=%v",
				req.PersonalInfo.Name, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	h.logger.Info("POST /submit-booking - Booking accepted: customer=%s, religion=%s, total=%d",
		result.Customer, result.Religion, result.Quote.GrandTotal)
	handlers.RespondSuccess(w, msgSuccess)
}

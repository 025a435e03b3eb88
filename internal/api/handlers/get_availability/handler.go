package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/parisstyle/PS-SalonService/internal/api/handlers"
	getAvailability "github.com/parisstyle/PS-SalonService/internal/usecase/get_availability"
)

const (
	msgInvalidStylistID = "identificador de estilista inválido"
	msgMissingDate      = "el parámetro date es obligatorio, formato YYYY-MM-DD"
	msgInvalidParams    = "parámetros de consulta inválidos"
	msgStylistNotFound  = "estilista no encontrado"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stylists/{stylistId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stylistID, err := strconv.ParseInt(vars["stylistId"], 10, 64)
	if err != nil || stylistID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		StylistID: stylistID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrStylistNotFound):
			h.logger.Warn("GET /stylists/%d/availability - Stylist not found", stylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /stylists/%d/availability - Invalid params: date=%q", stylistID, date)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /stylists/%d/availability - Failed to get availability: %v", stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

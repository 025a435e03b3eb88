package list_appointments

import (
	"net/http"

	"github.com/parisstyle/PS-SalonService/internal/api/handlers"
	"github.com/parisstyle/PS-SalonService/internal/api/middleware"
)

const msgUnauthorized = "se requiere autenticación"

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.List(r.Context(), principal)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: user_id=%d, error=%v",
			principal.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

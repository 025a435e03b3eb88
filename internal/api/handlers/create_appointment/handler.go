package create_appointment

import (
	"errors"
	"net/http"

	"github.com/parisstyle/PS-SalonService/internal/api/handlers"
	"github.com/parisstyle/PS-SalonService/internal/api/middleware"
	createAppointment "github.com/parisstyle/PS-SalonService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgUnauthorized       = "se requiere autenticación"
	msgInvalidData        = "datos de la cita inválidos"
	msgServiceNotFound    = "servicio no encontrado"
	msgStylistNotFound    = "estilista no encontrado"
	msgSlotTaken          = "el estilista ya tiene una cita a esa hora"
	msgNoStylistAvailable = "no hay estilistas disponibles a esa hora"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(principal.UserID))
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: user_id=%d, scheduled_at=%s",
				principal.UserID, req.ScheduledAt)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrNoStylistAvailable):
			h.logger.Warn("POST /appointments - No stylist available: user_id=%d, scheduled_at=%s",
				principal.UserID, req.ScheduledAt)
			handlers.RespondError(w, http.StatusConflict, msgNoStylistAvailable)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrStylistNotFound):
			h.logger.Warn("POST /appointments - Stylist not found: user_id=%d", principal.UserID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: user_id=%d, error=%v", principal.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, error=%v",
				principal.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, user_id=%d, stylist_id=%d",
		result.ID, principal.UserID, result.StylistID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

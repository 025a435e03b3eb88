package register

import (
	"errors"
	"net/http"
	"strings"

	"github.com/parisstyle/PS-SalonService/internal/api/handlers"
	"github.com/parisstyle/PS-SalonService/internal/service/users"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgMissingFields      = "nombre, email y contraseña son obligatorios"
	msgPasswordTooShort   = "la contraseña debe tener al menos 6 caracteres"
	msgEmailTaken         = "el email ya está registrado"
)

const minPasswordLength = 6

type Handler struct {
	service UsersService
	logger  Logger
}

func NewHandler(service UsersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}
	if len(req.Password) < minPasswordLength {
		handlers.RespondBadRequest(w, msgPasswordTooShort)
		return
	}

	result, err := h.service.Register(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, users.ErrEmailTaken):
			h.logger.Warn("POST /auth/register - Email already registered: %s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgEmailTaken)
		default:
			h.logger.Error("POST /auth/register - Failed to register: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - User registered: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

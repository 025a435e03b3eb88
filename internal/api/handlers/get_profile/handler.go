package get_profile

import (
	"errors"
	"net/http"

	"github.com/parisstyle/PS-SalonService/internal/api/handlers"
	"github.com/parisstyle/PS-SalonService/internal/api/middleware"
	"github.com/parisstyle/PS-SalonService/internal/service/users"
)

const (
	msgUnauthorized = "se requiere autenticación"
	msgUserNotFound = "usuario no encontrado"
)

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

// Handle GET /api/v1/auth/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.Profile(r.Context(), principal)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("GET /auth/me - User not found: user_id=%d", principal.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)
		default:
			h.logger.Error("GET /auth/me - Failed to get profile: user_id=%d, error=%v", principal.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

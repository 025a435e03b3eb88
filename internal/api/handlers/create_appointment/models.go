package create_appointment

import (
	"time"

	createAppointment "github.com/parisstyle/PS-SalonService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model. The authenticated client
// books for themselves; stylistId is optional and triggers
// auto-assignment when absent.
type CreateAppointmentRequest struct {
	ServiceID   int64   `json:"serviceId"`
	StylistID   *int64  `json:"stylistId,omitempty"`
	ScheduledAt string  `json:"scheduledAt"` // "2025-06-21T14:00"
	Notes       *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          int64   `json:"id"`
	ClientID    int64   `json:"clientId"`
	StylistID   int64   `json:"stylistId"`
	StylistName string  `json:"stylistName"`
	ServiceID   int64   `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	ScheduledAt string  `json:"scheduledAt"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	TotalPrice  int64   `json:"totalPrice"`
	CreatedAt   string  `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateAppointmentRequest) ToUseCaseRequest(clientID int64) *createAppointment.Request {
	return &createAppointment.Request{
		ClientID:    clientID,
		ServiceID:   r.ServiceID,
		StylistID:   r.StylistID,
		ScheduledAt: r.ScheduledAt,
		Notes:       r.Notes,
	}
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.ID,
		ClientID:    resp.ClientID,
		StylistID:   resp.StylistID,
		StylistName: resp.StylistName,
		ServiceID:   resp.ServiceID,
		ServiceName: resp.ServiceName,
		ScheduledAt: resp.ScheduledAt.Format(time.RFC3339),
		Status:      resp.Status,
		Notes:       resp.Notes,
		TotalPrice:  resp.TotalPrice,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}

package models

import (
	"time"

	"github.com/parisstyle/PS-SalonService/internal/domain"
)

// UpdateStatusRequest asks to move an appointment into a new status
type UpdateStatusRequest struct {
	Principal domain.Principal
	Status    string
}

// AppointmentResponse is an appointment with display data and the actions
// the requesting principal may still perform on it
type AppointmentResponse struct {
	ID          int64   `json:"id"`
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	ClientPhone string  `json:"clientPhone"`
	StylistName *string `json:"stylistName,omitempty"`
	ServiceName string  `json:"serviceName"`
	ScheduledAt string  `json:"scheduledAt"` // ISO 8601
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	TotalPrice  int64   `json:"totalPrice"`
	CreatedAt   string  `json:"createdAt"`

	CanConfirm  bool `json:"canConfirm"`
	CanCancel   bool `json:"canCancel"`
	CanComplete bool `json:"canComplete"`
}

// AppointmentListResponse is a list of appointments
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// StatusResponse reports the outcome of a status transition
type StatusResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// FromDetail converts a domain detail row into a response, computing the
// capability flags against the lifecycle transition table for the
// requesting principal
func FromDetail(d *domain.AppointmentDetail, p domain.Principal) AppointmentResponse {
	return AppointmentResponse{
		ID:          d.ID,
		ClientName:  d.ClientName,
		ClientEmail: d.ClientEmail,
		ClientPhone: d.ClientPhone,
		StylistName: d.StylistName,
		ServiceName: d.ServiceName,
		ScheduledAt: d.ScheduledAt.Format(time.RFC3339),
		Status:      string(d.Status),
		Notes:       d.Notes,
		TotalPrice:  d.TotalPrice,
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
		CanConfirm:  domain.CheckTransition(&d.Appointment, domain.StatusConfirmed, p) == nil,
		CanCancel:   domain.CheckTransition(&d.Appointment, domain.StatusCancelled, p) == nil,
		CanComplete: domain.CheckTransition(&d.Appointment, domain.StatusCompleted, p) == nil,
	}
}

// FromDetailList converts a list of detail rows
func FromDetailList(details []*domain.AppointmentDetail, p domain.Principal) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(details)),
	}
	for i, d := range details {
		resp.Appointments[i] = FromDetail(d, p)
	}
	return resp
}

// ToDomainStatus validates and converts a status string
func ToDomainStatus(status string) (domain.AppointmentStatus, bool) {
	s := domain.AppointmentStatus(status)
	return s, domain.IsValidStatus(s)
}

package models

import "github.com/parisstyle/PS-SalonService/internal/domain"

// ServiceResponse is a bookable salon service
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	Price           int64   `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	Category        *string `json:"category,omitempty"`
}

// ServiceListResponse is the active service catalog
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// StylistResponse is an active stylist
type StylistResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Specialties *string `json:"specialties,omitempty"`
}

// StylistListResponse is the active stylist roster
type StylistListResponse struct {
	Stylists []StylistResponse `json:"stylists"`
}

// FromServiceList converts domain services
func FromServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, len(services))}
	for i, s := range services {
		resp.Services[i] = ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
			Category:        s.Category,
		}
	}
	return resp
}

// FromStylistList converts domain stylists
func FromStylistList(stylists []*domain.Stylist) *StylistListResponse {
	resp := &StylistListResponse{Stylists: make([]StylistResponse, len(stylists))}
	for i, s := range stylists {
		resp.Stylists[i] = StylistResponse{
			ID:          s.ID,
			Name:        s.Name,
			Specialties: s.Specialties,
		}
	}
	return resp
}

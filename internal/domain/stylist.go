package domain

// Stylist represents a salon stylist (estilista)
type Stylist struct {
	ID          int64
	Name        string
	Specialties *string // free text, e.g. "Cortes, Coloración"
	Active      bool
}

// Service represents a salon service (servicio) offered to clients
type Service struct {
	ID              int64
	Name            string
	Description     *string
	Price           int64 // smallest currency unit
	DurationMinutes int
	Category        *string
	Active          bool
}

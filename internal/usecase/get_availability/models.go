package get_availability

// Request asks for the occupied slots of a stylist on a date.
// Date uses the YYYY-MM-DD format.
type Request struct {
	StylistID int64
	Date      string
}

// Response lists the occupied times of the stylist on the date,
// as HH:MM strings in ascending order
type Response struct {
	StylistID     int64    `json:"stylistId"`
	Date          string   `json:"date"`
	OccupiedTimes []string `json:"occupiedTimes"`
}

package domain

import "time"

// Role of an authenticated principal
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStylist Role = "stylist"
	RoleClient  Role = "client"
)

// User represents a registered account (cliente, estilista or admin)
type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	IsAdmin      bool
	IsStylist    bool
	StylistID    *int64 // set when the account belongs to a stylist
	RegisteredAt time.Time
}

// Role returns the principal role of the user.
// Admin wins over stylist when both flags are set.
func (u *User) Role() Role {
	switch {
	case u.IsAdmin:
		return RoleAdmin
	case u.IsStylist:
		return RoleStylist
	default:
		return RoleClient
	}
}

// Principal is the pre-resolved identity performing an action.
// The core never authenticates; it only authorizes against this value.
type Principal struct {
	UserID    int64
	Role      Role
	StylistID *int64 // set when Role == RoleStylist
}

// Principal builds the acting principal for the user
func (u *User) Principal() Principal {
	return Principal{
		UserID:    u.ID,
		Role:      u.Role(),
		StylistID: u.StylistID,
	}
}

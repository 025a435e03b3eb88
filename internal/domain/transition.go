package domain

import "errors"

var (
	// ErrUnknownStatus is returned when the requested status is not a valid one
	ErrUnknownStatus = errors.New("domain: unknown appointment status")

	// ErrTransitionForbidden is returned when the principal may not perform
	// the requested transition on this appointment
	ErrTransitionForbidden = errors.New("domain: principal may not perform this transition")

	// ErrTransitionNotAllowed is returned when the current status does not
	// permit the requested transition
	ErrTransitionNotAllowed = errors.New("domain: transition not allowed from current status")
)

// transitionRule describes who may move an appointment into a target status
// and from which statuses. Admins may trigger every listed transition.
type transitionRule struct {
	from            []AppointmentStatus
	assignedStylist bool // the assigned stylist may trigger
	owningClient    bool // the client who owns the appointment may trigger
}

// transitionRules is the whole lifecycle in one table:
//
//	pending   -> confirmed  admin, assigned stylist
//	pending   -> cancelled  admin, assigned stylist, owning client
//	confirmed -> cancelled  admin, assigned stylist, owning client
//	confirmed -> completed  admin, assigned stylist
//
// completed and cancelled are terminal.
var transitionRules = map[AppointmentStatus]transitionRule{
	StatusConfirmed: {
		from:            []AppointmentStatus{StatusPending},
		assignedStylist: true,
	},
	StatusCancelled: {
		from:            []AppointmentStatus{StatusPending, StatusConfirmed},
		assignedStylist: true,
		owningClient:    true,
	},
	StatusCompleted: {
		from:            []AppointmentStatus{StatusConfirmed},
		assignedStylist: true,
	},
}

// CheckTransition validates that principal p may move appointment a into
// target. Permission is checked before state so that an unrelated principal
// learns nothing about the appointment's current status.
func CheckTransition(a *Appointment, target AppointmentStatus, p Principal) error {
	rule, ok := transitionRules[target]
	if !ok {
		return ErrUnknownStatus
	}

	if !principalAllowed(rule, a, p) {
		return ErrTransitionForbidden
	}

	for _, from := range rule.from {
		if a.Status == from {
			return nil
		}
	}
	return ErrTransitionNotAllowed
}

func principalAllowed(rule transitionRule, a *Appointment, p Principal) bool {
	switch p.Role {
	case RoleAdmin:
		return true
	case RoleStylist:
		return rule.assignedStylist && p.StylistID != nil && a.IsAssignedTo(*p.StylistID)
	case RoleClient:
		return rule.owningClient && a.ClientID == p.UserID
	default:
		return false
	}
}

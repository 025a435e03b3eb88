package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parisstyle/PS-SalonService/pkg/ptr"
)

func appointmentWith(status AppointmentStatus) *Appointment {
	return &Appointment{
		ID:        1,
		ClientID:  10,
		StylistID: ptr.Ptr(int64(2)),
		ServiceID: 3,
		Status:    status,
	}
}

var (
	admin           = Principal{UserID: 99, Role: RoleAdmin}
	assignedStylist = Principal{UserID: 20, Role: RoleStylist, StylistID: ptr.Ptr(int64(2))}
	otherStylist    = Principal{UserID: 21, Role: RoleStylist, StylistID: ptr.Ptr(int64(7))}
	owningClient    = Principal{UserID: 10, Role: RoleClient}
	otherClient     = Principal{UserID: 11, Role: RoleClient}
)

func TestCheckTransition(t *testing.T) {
	tests := []struct {
		name      string
		current   AppointmentStatus
		target    AppointmentStatus
		principal Principal
		wantErr   error
	}{
		{"admin confirms pending", StatusPending, StatusConfirmed, admin, nil},
		{"assigned stylist confirms pending", StatusPending, StatusConfirmed, assignedStylist, nil},
		{"other stylist cannot confirm", StatusPending, StatusConfirmed, otherStylist, ErrTransitionForbidden},
		{"client cannot confirm own appointment", StatusPending, StatusConfirmed, owningClient, ErrTransitionForbidden},
		{"unrelated client cannot confirm", StatusPending, StatusConfirmed, otherClient, ErrTransitionForbidden},

		{"owning client cancels pending", StatusPending, StatusCancelled, owningClient, nil},
		{"owning client cancels confirmed", StatusConfirmed, StatusCancelled, owningClient, nil},
		{"assigned stylist cancels confirmed", StatusConfirmed, StatusCancelled, assignedStylist, nil},
		{"admin cancels confirmed", StatusConfirmed, StatusCancelled, admin, nil},
		{"unrelated client cannot cancel", StatusPending, StatusCancelled, otherClient, ErrTransitionForbidden},

		{"assigned stylist completes confirmed", StatusConfirmed, StatusCompleted, assignedStylist, nil},
		{"admin completes confirmed", StatusConfirmed, StatusCompleted, admin, nil},
		{"client cannot complete", StatusConfirmed, StatusCompleted, owningClient, ErrTransitionForbidden},
		{"cannot complete pending", StatusPending, StatusCompleted, admin, ErrTransitionNotAllowed},

		{"admin cannot cancel completed", StatusCompleted, StatusCancelled, admin, ErrTransitionNotAllowed},
		{"owning client cannot cancel completed", StatusCompleted, StatusCancelled, owningClient, ErrTransitionNotAllowed},
		{"assigned stylist cannot cancel completed", StatusCompleted, StatusCancelled, assignedStylist, ErrTransitionNotAllowed},
		{"cancelled is terminal", StatusCancelled, StatusConfirmed, admin, ErrTransitionNotAllowed},
		{"cannot re-confirm confirmed", StatusConfirmed, StatusConfirmed, admin, ErrTransitionNotAllowed},

		{"unknown target status", StatusPending, AppointmentStatus("archived"), admin, ErrUnknownStatus},
		{"pending is not a transition target", StatusConfirmed, StatusPending, admin, ErrUnknownStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := appointmentWith(tt.current)
			err := CheckTransition(appt, tt.target, tt.principal)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			// the check never mutates the appointment
			assert.Equal(t, tt.current, appt.Status)
		})
	}
}

func TestCheckTransitionStylistWithoutAssignment(t *testing.T) {
	appt := appointmentWith(StatusPending)
	appt.StylistID = nil

	err := CheckTransition(appt, StatusConfirmed, assignedStylist)
	assert.ErrorIs(t, err, ErrTransitionForbidden)
}

func TestAppointmentIsActive(t *testing.T) {
	assert.True(t, appointmentWith(StatusPending).IsActive())
	assert.True(t, appointmentWith(StatusConfirmed).IsActive())
	assert.False(t, appointmentWith(StatusCompleted).IsActive())
	assert.False(t, appointmentWith(StatusCancelled).IsActive())
}

package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parisstyle/PS-SalonService/internal/domain"
	"github.com/parisstyle/PS-SalonService/pkg/ptr"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) FindActiveAt(_ context.Context, stylistID int64, at time.Time) ([]*domain.Appointment, error) {
	found := make([]*domain.Appointment, 0)
	for _, a := range f.appointments {
		if a.IsAssignedTo(stylistID) && a.ScheduledAt.Equal(at) && a.IsActive() {
			found = append(found, a)
		}
	}
	return found, nil
}

func (f *fakeAppointmentRepo) book(stylistID int64, at time.Time, status domain.AppointmentStatus) *domain.Appointment {
	appt := &domain.Appointment{
		ID:          int64(len(f.appointments) + 1),
		ClientID:    100,
		StylistID:   ptr.Ptr(stylistID),
		ServiceID:   1,
		ScheduledAt: at,
		Status:      status,
	}
	f.appointments = append(f.appointments, appt)
	return appt
}

type fakeStylistRepo struct {
	stylists []*domain.Stylist
}

func (f *fakeStylistRepo) ListActive(_ context.Context) ([]*domain.Stylist, error) {
	active := make([]*domain.Stylist, 0)
	for _, s := range f.stylists {
		if s.Active {
			active = append(active, s)
		}
	}
	return active, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeAppointmentRepo, *fakeStylistRepo) {
	appointments := &fakeAppointmentRepo{}
	stylists := &fakeStylistRepo{
		stylists: []*domain.Stylist{
			{ID: 1, Name: "Carolina", Active: true},
			{ID: 2, Name: "Valentina", Active: true},
		},
	}
	return NewService(appointments, stylists, nopLogger{}), appointments, stylists
}

var slot = time.Date(2025, 6, 21, 14, 0, 0, 0, time.Local)

func TestHasConflict(t *testing.T) {
	svc, appointments, _ := newTestService()
	ctx := context.Background()

	conflict, err := svc.HasConflict(ctx, 1, slot)
	require.NoError(t, err)
	assert.False(t, conflict)

	appointments.book(1, slot, domain.StatusPending)

	conflict, err = svc.HasConflict(ctx, 1, slot)
	require.NoError(t, err)
	assert.True(t, conflict)

	// other stylist is unaffected
	conflict, err = svc.HasConflict(ctx, 2, slot)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasConflictExactTimestampOnly(t *testing.T) {
	svc, appointments, _ := newTestService()
	ctx := context.Background()

	appointments.book(1, slot, domain.StatusConfirmed)

	// one minute later is a different slot, even though service durations
	// would overlap in real time
	conflict, err := svc.HasConflict(ctx, 1, slot.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasConflictIgnoresTerminalStatuses(t *testing.T) {
	svc, appointments, _ := newTestService()
	ctx := context.Background()

	appointments.book(1, slot, domain.StatusCancelled)
	appointments.book(1, slot, domain.StatusCompleted)

	conflict, err := svc.HasConflict(ctx, 1, slot)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestAssignStylistFirstFit(t *testing.T) {
	svc, appointments, _ := newTestService()
	ctx := context.Background()

	// both free: lowest id wins
	assigned, err := svc.AssignStylist(ctx, 10, slot)
	require.NoError(t, err)
	assert.Equal(t, int64(1), assigned.ID)

	// booking stylist 1 moves the assignment to stylist 2
	appointments.book(1, slot, domain.StatusPending)

	assigned, err = svc.AssignStylist(ctx, 10, slot)
	require.NoError(t, err)
	assert.Equal(t, int64(2), assigned.ID)

	// both booked: nobody is available
	appointments.book(2, slot, domain.StatusConfirmed)

	_, err = svc.AssignStylist(ctx, 10, slot)
	assert.ErrorIs(t, err, ErrNoStylistAvailable)
}

func TestAssignStylistDeterministic(t *testing.T) {
	svc, appointments, _ := newTestService()
	ctx := context.Background()

	appointments.book(1, slot, domain.StatusConfirmed)

	// identical inputs always pick the same stylist
	for i := 0; i < 5; i++ {
		assigned, err := svc.AssignStylist(ctx, 10, slot)
		require.NoError(t, err)
		assert.Equal(t, int64(2), assigned.ID)
	}
}

func TestAssignStylistFreedSlot(t *testing.T) {
	svc, appointments, _ := newTestService()
	ctx := context.Background()

	first := appointments.book(1, slot, domain.StatusPending)
	appointments.book(2, slot, domain.StatusConfirmed)

	_, err := svc.AssignStylist(ctx, 10, slot)
	require.ErrorIs(t, err, ErrNoStylistAvailable)

	// cancelling frees the slot for new assignments
	first.Status = domain.StatusCancelled

	assigned, err := svc.AssignStylist(ctx, 10, slot)
	require.NoError(t, err)
	assert.Equal(t, int64(1), assigned.ID)
}

func TestAssignStylistSkipsInactive(t *testing.T) {
	svc, _, stylists := newTestService()
	ctx := context.Background()

	stylists.stylists[0].Active = false

	assigned, err := svc.AssignStylist(ctx, 10, slot)
	require.NoError(t, err)
	assert.Equal(t, int64(2), assigned.ID)
}

func TestAssignStylistIgnoresServiceType(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	// the service id does not filter candidates by specialty
	a, err := svc.AssignStylist(ctx, 10, slot)
	require.NoError(t, err)
	b, err := svc.AssignStylist(ctx, 99, slot)
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)
}

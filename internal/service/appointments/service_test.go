package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parisstyle/PS-SalonService/internal/domain"
	appointmentRepo "github.com/parisstyle/PS-SalonService/internal/infra/storage/appointment"
	"github.com/parisstyle/PS-SalonService/internal/service/appointments/models"
	"github.com/parisstyle/PS-SalonService/pkg/ptr"
)

type fakeRepo struct {
	appointments map[int64]*domain.Appointment
	details      []*domain.AppointmentDetail
	lastFilter   domain.AppointmentListFilter
	listCalls    int

	// runs between the service's read and its guarded update,
	// standing in for a concurrent transition
	beforeUpdate func()
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{appointments: make(map[int64]*domain.Appointment)}
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeRepo) ListDetails(_ context.Context, filter domain.AppointmentListFilter) ([]*domain.AppointmentDetail, error) {
	f.listCalls++
	f.lastFilter = filter
	return f.details, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, from, to domain.AppointmentStatus) error {
	if f.beforeUpdate != nil {
		f.beforeUpdate()
	}
	appt, ok := f.appointments[id]
	if !ok || appt.Status != from {
		return appointmentRepo.ErrStatusConflict
	}
	appt.Status = to
	appt.UpdatedAt = time.Now()
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	admin           = domain.Principal{UserID: 1, Role: domain.RoleAdmin}
	assignedStylist = domain.Principal{UserID: 2, Role: domain.RoleStylist, StylistID: ptr.Ptr(int64(5))}
	owningClient    = domain.Principal{UserID: 10, Role: domain.RoleClient}
	otherClient     = domain.Principal{UserID: 11, Role: domain.RoleClient}
)

func seedAppointment(repo *fakeRepo, status domain.AppointmentStatus) *domain.Appointment {
	appt := &domain.Appointment{
		ID:          1,
		ClientID:    10,
		StylistID:   ptr.Ptr(int64(5)),
		ServiceID:   3,
		ScheduledAt: time.Date(2025, 6, 21, 14, 0, 0, 0, time.Local),
		Status:      status,
	}
	repo.appointments[appt.ID] = appt
	return appt
}

func TestUpdateStatusConfirmByAssignedStylist(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, domain.StatusPending)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		Principal: assignedStylist,
		Status:    "confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.appointments[1].Status)
}

func TestUpdateStatusConfirmByUnrelatedClientForbidden(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, domain.StatusPending)
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		Principal: otherClient,
		Status:    "confirmed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusPending, repo.appointments[1].Status)
}

func TestUpdateStatusCancelCompletedInvalidTransition(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, domain.StatusCompleted)
	svc := NewService(repo, nopLogger{})

	// terminal regardless of who asks
	for _, p := range []domain.Principal{admin, assignedStylist, owningClient} {
		_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
			Principal: p,
			Status:    "cancelled",
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, domain.StatusCompleted, repo.appointments[1].Status)
	}
}

func TestUpdateStatusClientCancelsOwn(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, domain.StatusConfirmed)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		Principal: owningClient,
		Status:    "cancelled",
	})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, domain.StatusPending)
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		Principal: admin,
		Status:    "archived",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 99, &models.UpdateStatusRequest{
		Principal: admin,
		Status:    "confirmed",
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatusLostRaceToConcurrentTransition(t *testing.T) {
	repo := newFakeRepo()
	seedAppointment(repo, domain.StatusConfirmed)
	svc := NewService(repo, nopLogger{})

	// the client cancels between the read and the guarded update
	repo.beforeUpdate = func() {
		repo.appointments[1].Status = domain.StatusCancelled
	}

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		Principal: admin,
		Status:    "completed",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, domain.StatusCancelled, repo.appointments[1].Status)
}

func TestListScopesByRole(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	_, err := svc.List(ctx, admin)
	require.NoError(t, err)
	assert.Nil(t, repo.lastFilter.ClientID)
	assert.Nil(t, repo.lastFilter.StylistID)

	_, err = svc.List(ctx, assignedStylist)
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.StylistID)
	assert.Equal(t, int64(5), *repo.lastFilter.StylistID)

	_, err = svc.List(ctx, owningClient)
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.ClientID)
	assert.Equal(t, int64(10), *repo.lastFilter.ClientID)
}

func TestListStylistWithoutStylistIDSeesNothing(t *testing.T) {
	repo := newFakeRepo()
	repo.details = []*domain.AppointmentDetail{
		{Appointment: domain.Appointment{ID: 1, ClientID: 10}},
	}
	svc := NewService(repo, nopLogger{})

	// an estilista role without a linked stylist row must not fall
	// through to the unfiltered admin view
	unlinked := domain.Principal{UserID: 3, Role: domain.RoleStylist}
	resp, err := svc.List(context.Background(), unlinked)
	require.NoError(t, err)
	assert.Empty(t, resp.Appointments)
	assert.Zero(t, repo.listCalls)
}

func TestListCapabilityFlags(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopLogger{})

	repo.details = []*domain.AppointmentDetail{
		{
			Appointment: domain.Appointment{
				ID:        1,
				ClientID:  10,
				StylistID: ptr.Ptr(int64(5)),
				Status:    domain.StatusPending,
			},
			ClientName:  "María García",
			ServiceName: "Corte de Cabello",
		},
	}

	resp, err := svc.List(context.Background(), assignedStylist)
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)

	row := resp.Appointments[0]
	assert.True(t, row.CanConfirm)
	assert.True(t, row.CanCancel)
	assert.False(t, row.CanComplete)

	// the owning client can only cancel
	resp, err = svc.List(context.Background(), owningClient)
	require.NoError(t, err)
	row = resp.Appointments[0]
	assert.False(t, row.CanConfirm)
	assert.True(t, row.CanCancel)
	assert.False(t, row.CanComplete)
}

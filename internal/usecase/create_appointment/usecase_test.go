package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parisstyle/PS-SalonService/internal/domain"
	appointmentRepo "github.com/parisstyle/PS-SalonService/internal/infra/storage/appointment"
	catalogRepo "github.com/parisstyle/PS-SalonService/internal/infra/storage/catalog"
	stylistRepo "github.com/parisstyle/PS-SalonService/internal/infra/storage/stylist"
	"github.com/parisstyle/PS-SalonService/internal/service/scheduling"
	"github.com/parisstyle/PS-SalonService/pkg/ptr"
)

type fakeAppointmentRepo struct {
	nextID    int64
	created   []*domain.Appointment
	createErr error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	appt.ID = f.nextID
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	f.created = append(f.created, appt)
	return appt, nil
}

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeServiceRepo) GetServiceByID(_ context.Context, id int64) (*domain.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return s, nil
}

type fakeStylistRepo struct {
	stylists map[int64]*domain.Stylist
}

func (f *fakeStylistRepo) GetByID(_ context.Context, id int64) (*domain.Stylist, error) {
	s, ok := f.stylists[id]
	if !ok {
		return nil, stylistRepo.ErrStylistNotFound
	}
	return s, nil
}

type fakeScheduler struct {
	conflicts map[int64]bool
	assigned  *domain.Stylist
	assignErr error
}

func (f *fakeScheduler) HasConflict(_ context.Context, stylistID int64, _ time.Time) (bool, error) {
	return f.conflicts[stylistID], nil
}

func (f *fakeScheduler) AssignStylist(_ context.Context, _ int64, _ time.Time) (*domain.Stylist, error) {
	if f.assignErr != nil {
		return nil, f.assignErr
	}
	return f.assigned, nil
}

// passthroughTxManager runs the callback without a real transaction
type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc        *UseCase
	appts     *fakeAppointmentRepo
	scheduler *fakeScheduler
	txManager *passthroughTxManager
}

func newFixture() *fixture {
	appts := &fakeAppointmentRepo{}
	services := &fakeServiceRepo{services: map[int64]*domain.Service{
		3: {ID: 3, Name: "Corte de Cabello", Price: 2500, DurationMinutes: 45, Active: true},
		4: {ID: 4, Name: "Permanente", Price: 8000, DurationMinutes: 120, Active: false},
	}}
	stylists := &fakeStylistRepo{stylists: map[int64]*domain.Stylist{
		1: {ID: 1, Name: "Sophie Laurent", Active: true},
		2: {ID: 2, Name: "Carmen Ruiz", Active: true},
		9: {ID: 9, Name: "Ana Retirada", Active: false},
	}}
	scheduler := &fakeScheduler{
		conflicts: map[int64]bool{},
		assigned:  stylists.stylists[1],
	}
	txManager := &passthroughTxManager{}

	uc := NewUseCase(appts, services, stylists, scheduler, txManager, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 6, 20, 12, 0, 0, 0, time.Local)}

	return &fixture{uc: uc, appts: appts, scheduler: scheduler, txManager: txManager}
}

func TestExecuteAutoAssign(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		ClientID:    10,
		ServiceID:   3,
		ScheduledAt: "2025-06-21T14:00",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.StylistID)
	assert.Equal(t, "Sophie Laurent", resp.StylistName)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, int64(2500), resp.TotalPrice)
	assert.Equal(t, 1, f.txManager.calls)

	require.Len(t, f.appts.created, 1)
	created := f.appts.created[0]
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.True(t, created.ScheduledAt.Equal(time.Date(2025, 6, 21, 14, 0, 0, 0, time.Local)))
}

func TestExecuteRequestedStylist(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		ClientID:    10,
		ServiceID:   3,
		StylistID:   ptr.Ptr(int64(2)),
		ScheduledAt: "2025-06-21T14:00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.StylistID)
	assert.Equal(t, "Carmen Ruiz", resp.StylistName)
}

func TestExecuteRequestedStylistBusy(t *testing.T) {
	f := newFixture()
	f.scheduler.conflicts[2] = true

	_, err := f.uc.Execute(context.Background(), &Request{
		ClientID:    10,
		ServiceID:   3,
		StylistID:   ptr.Ptr(int64(2)),
		ScheduledAt: "2025-06-21T14:00",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, f.appts.created)
}

func TestExecuteStylistMissingOrInactive(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{
		ClientID:    10,
		ServiceID:   3,
		StylistID:   ptr.Ptr(int64(77)),
		ScheduledAt: "2025-06-21T14:00",
	})
	assert.ErrorIs(t, err, ErrStylistNotFound)

	_, err = f.uc.Execute(context.Background(), &Request{
		ClientID:    10,
		ServiceID:   3,
		StylistID:   ptr.Ptr(int64(9)),
		ScheduledAt: "2025-06-21T14:00",
	})
	assert.ErrorIs(t, err, ErrStylistNotFound)
}

func TestExecuteNoStylistAvailable(t *testing.T) {
	f := newFixture()
	f.scheduler.assignErr = scheduling.ErrNoStylistAvailable

	_, err := f.uc.Execute(context.Background(), &Request{
		ClientID:    10,
		ServiceID:   3,
		ScheduledAt: "2025-06-21T14:00",
	})
	assert.ErrorIs(t, err, ErrNoStylistAvailable)
}

func TestExecuteServiceMissingOrInactive(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{
		ClientID:    10,
		ServiceID:   77,
		ScheduledAt: "2025-06-21T14:00",
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	// inactive services are not bookable
	_, err = f.uc.Execute(context.Background(), &Request{
		ClientID:    10,
		ServiceID:   4,
		ScheduledAt: "2025-06-21T14:00",
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecutePastTimestamp(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{
		ClientID:    10,
		ServiceID:   3,
		ScheduledAt: "2025-06-19T14:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteConcurrentSlotLoss(t *testing.T) {
	// the insert hits the partial unique index after the check passed
	f := newFixture()
	f.appts.createErr = appointmentRepo.ErrDuplicateSlot

	_, err := f.uc.Execute(context.Background(), &Request{
		ClientID:    10,
		ServiceID:   3,
		StylistID:   ptr.Ptr(int64(2)),
		ScheduledAt: "2025-06-21T14:00",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

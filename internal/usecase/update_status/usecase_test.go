package update_status

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	apptRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/appointment"
	"github.com/velumi/NailStudio-Backend/pkg/ptr"
	"github.com/velumi/NailStudio-Backend/pkg/types"
)

type fakeSlotTimes struct {
	times *domain.SlotTimes
	err   error
}

func (f *fakeSlotTimes) Load(context.Context, int64) (*domain.SlotTimes, error) {
	return f.times, f.err
}

type fakeApptRepo struct {
	appt *domain.Appointment

	closedID     int64
	closedAmount float64
	newStatus    domain.AppointmentStatus
	getErr       error
}

func (f *fakeApptRepo) GetByIDForUpdate(context.Context, int64) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	out := *f.appt
	return &out, nil
}

func (f *fakeApptRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	f.newStatus = status
	f.appt.Status = status
	return nil
}

func (f *fakeApptRepo) Close(_ context.Context, id int64, paidAmount float64) error {
	f.closedID = id
	f.closedAmount = paidAmount
	f.appt.Status = domain.StatusClosed
	f.appt.PaidAmount = &paidAmount
	return nil
}

type fakeWorkday struct {
	clearedCol domain.SlotColumn
	cleared    bool
}

func (f *fakeWorkday) ClearSlot(_ context.Context, _ time.Time, col domain.SlotColumn) error {
	f.cleared = true
	f.clearedCol = col
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func configuredTimes() *domain.SlotTimes {
	return &domain.SlotTimes{
		ID: domain.DefaultSlotTimesID,
		Times: [domain.SlotsPerDay]types.TimeString{
			"09:00", "11:00", "13:00", "15:00", "17:00",
		},
	}
}

func openAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:       42,
		UserID:   7,
		WorkDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Slot:     "11:00",
		Status:   domain.StatusOpen,
	}
}

func newTestUseCase(st *fakeSlotTimes, ar *fakeApptRepo, wd *fakeWorkday) *UseCase {
	return NewUseCase(st, ar, wd, fakeTxManager{}, nopLogger{})
}

func TestExecuteClose(t *testing.T) {
	t.Run("closes with valid amount", func(t *testing.T) {
		ar := &fakeApptRepo{appt: openAppointment()}
		uc := newTestUseCase(&fakeSlotTimes{times: configuredTimes()}, ar, &fakeWorkday{})

		resp, err := uc.Execute(context.Background(), Request{
			AppointmentID: 42,
			Status:        "closed",
			PaidAmount:    ptr.Ptr(2500.0),
		})
		require.NoError(t, err)
		assert.Equal(t, "closed", resp.Status)
		assert.Equal(t, int64(42), ar.closedID)
		assert.Equal(t, 2500.0, ar.closedAmount)
	})

	t.Run("requires amount", func(t *testing.T) {
		ar := &fakeApptRepo{appt: openAppointment()}
		uc := newTestUseCase(&fakeSlotTimes{times: configuredTimes()}, ar, &fakeWorkday{})

		_, err := uc.Execute(context.Background(), Request{AppointmentID: 42, Status: "closed"})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("rejects negative and non-finite amounts", func(t *testing.T) {
		for _, amount := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
			ar := &fakeApptRepo{appt: openAppointment()}
			uc := newTestUseCase(&fakeSlotTimes{times: configuredTimes()}, ar, &fakeWorkday{})

			_, err := uc.Execute(context.Background(), Request{
				AppointmentID: 42,
				Status:        "closed",
				PaidAmount:    ptr.Ptr(amount),
			})
			assert.ErrorIs(t, err, ErrInvalidAmount, "amount %v", amount)
		}
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		ar := &fakeApptRepo{appt: openAppointment()}
		uc := newTestUseCase(&fakeSlotTimes{times: configuredTimes()}, ar, &fakeWorkday{})

		_, err := uc.Execute(context.Background(), Request{
			AppointmentID: 42,
			Status:        "closed",
			PaidAmount:    ptr.Ptr(0.0),
		})
		assert.NoError(t, err)
	})
}

func TestExecuteCancel(t *testing.T) {
	t.Run("clears registry cell", func(t *testing.T) {
		ar := &fakeApptRepo{appt: openAppointment()}
		wd := &fakeWorkday{}
		uc := newTestUseCase(&fakeSlotTimes{times: configuredTimes()}, ar, wd)

		resp, err := uc.Execute(context.Background(), Request{AppointmentID: 42, Status: "canceled"})
		require.NoError(t, err)
		assert.Equal(t, "canceled", resp.Status)
		assert.True(t, wd.cleared)
		assert.Equal(t, domain.SlotSecond, wd.clearedCol)
	})

	t.Run("skips cell when time is no longer configured", func(t *testing.T) {
		appt := openAppointment()
		appt.Slot = "23:00"
		ar := &fakeApptRepo{appt: appt}
		wd := &fakeWorkday{}
		uc := newTestUseCase(&fakeSlotTimes{times: configuredTimes()}, ar, wd)

		_, err := uc.Execute(context.Background(), Request{AppointmentID: 42, Status: "canceled"})
		require.NoError(t, err)
		assert.False(t, wd.cleared)
		assert.Equal(t, domain.StatusCanceled, ar.newStatus)
	})

	t.Run("closed appointment cannot be canceled", func(t *testing.T) {
		appt := openAppointment()
		appt.Status = domain.StatusClosed
		ar := &fakeApptRepo{appt: appt}
		wd := &fakeWorkday{}
		uc := newTestUseCase(&fakeSlotTimes{times: configuredTimes()}, ar, wd)

		_, err := uc.Execute(context.Background(), Request{AppointmentID: 42, Status: "canceled"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.False(t, wd.cleared)
	})
}

func TestExecuteReopen(t *testing.T) {
	appt := openAppointment()
	appt.Status = domain.StatusCanceled
	ar := &fakeApptRepo{appt: appt}
	uc := newTestUseCase(&fakeSlotTimes{times: configuredTimes()}, ar, &fakeWorkday{})

	resp, err := uc.Execute(context.Background(), Request{AppointmentID: 42, Status: "open"})
	require.NoError(t, err)
	assert.Equal(t, "open", resp.Status)
}

func TestExecuteErrors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ar := &fakeApptRepo{getErr: apptRepo.ErrAppointmentNotFound}
		uc := newTestUseCase(&fakeSlotTimes{times: configuredTimes()}, ar, &fakeWorkday{})

		_, err := uc.Execute(context.Background(), Request{AppointmentID: 42, Status: "canceled"})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := newTestUseCase(&fakeSlotTimes{times: configuredTimes()},
			&fakeApptRepo{appt: openAppointment()}, &fakeWorkday{})

		_, err := uc.Execute(context.Background(), Request{AppointmentID: 0, Status: "open"})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = uc.Execute(context.Background(), Request{AppointmentID: 42, Status: "done"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

package set_day_flags

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	workdayRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/workday"
	"github.com/velumi/NailStudio-Backend/pkg/types"
)

type fakeSlotTimes struct {
	times *domain.SlotTimes
	err   error
}

func (f *fakeSlotTimes) Load(context.Context, int64) (*domain.SlotTimes, error) {
	return f.times, f.err
}

type fakeOverrides struct {
	current  *domain.DayOverride
	upserted *domain.DayOverride
}

func (f *fakeOverrides) EnsureDefaults(_ context.Context, date time.Time) (*domain.DayOverride, error) {
	if f.current == nil {
		f.current = domain.NewDefaultDayOverride(date)
	}
	return f.current, nil
}

func (f *fakeOverrides) Upsert(_ context.Context, override *domain.DayOverride) error {
	f.upserted = override
	return nil
}

type fakeWorkday struct {
	claimErr  error
	claims    []domain.SlotColumn
	clears    []domain.SlotColumn
	occupants []string
	mismatch  bool
}

func (f *fakeWorkday) EnsureDay(context.Context, time.Time) error { return nil }

func (f *fakeWorkday) ClaimSlot(_ context.Context, _ time.Time, col domain.SlotColumn, occupant string) error {
	if f.claimErr != nil {
		return f.claimErr
	}
	f.claims = append(f.claims, col)
	f.occupants = append(f.occupants, occupant)
	return nil
}

func (f *fakeWorkday) ClearSlotIfOccupant(_ context.Context, _ time.Time, col domain.SlotColumn, occupant string) (bool, error) {
	if f.mismatch {
		return false, nil
	}
	f.clears = append(f.clears, col)
	return true, nil
}

type fakeApptRepo struct {
	holds      []*domain.Appointment
	created    []*domain.Appointment
	canceled   []int64
	createErr  error
}

func (f *fakeApptRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *appt
	out.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &out)
	return &out, nil
}

func (f *fakeApptRepo) GetOpenAdminHolds(context.Context, time.Time, types.TimeString) ([]*domain.Appointment, error) {
	return f.holds, nil
}

func (f *fakeApptRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	f.canceled = append(f.canceled, id)
	return nil
}

type fakeUsers struct {
	role domain.UserRole
}

func (f *fakeUsers) GetDisplayName(_ context.Context, userID int64) string {
	if userID == 1 {
		return "manager"
	}
	return domain.FormatUserID(userID)
}

func (f *fakeUsers) GetRole(context.Context, int64) (domain.UserRole, error) {
	return f.role, nil
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

func testDate() time.Time {
	return time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
}

func managerRequest() Request {
	return Request{ManagerID: 1, Date: testDate()}
}

func TestExecuteHoldsClosedSlots(t *testing.T) {
	ov := &fakeOverrides{}
	wd := &fakeWorkday{}
	ar := &fakeApptRepo{}
	uc := NewUseCase(&fakeSlotTimes{times: configuredTimes()}, ov, wd, ar,
		&fakeUsers{role: domain.RoleManager}, fakeTxManager{}, nopLogger{})

	req := managerRequest()
	req.Flags = map[domain.SlotColumn]bool{domain.SlotSecond: false}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.Flags[domain.SlotSecond])
	assert.True(t, resp.Flags[domain.SlotFirst])

	// Закрытие ставит блокировку: ячейка захвачена именем менеджера,
	// создана запись-блокировка
	require.Len(t, wd.claims, 1)
	assert.Equal(t, domain.SlotSecond, wd.claims[0])
	assert.Equal(t, "manager", wd.occupants[0])
	require.Len(t, ar.created, 1)
	assert.True(t, ar.created[0].IsAdminHold())
	assert.Equal(t, types.TimeString("11:00"), ar.created[0].Slot)
}

func TestExecuteHoldSkipsTakenSlot(t *testing.T) {
	ov := &fakeOverrides{}
	wd := &fakeWorkday{claimErr: workdayRepo.ErrSlotTaken}
	ar := &fakeApptRepo{}
	uc := NewUseCase(&fakeSlotTimes{times: configuredTimes()}, ov, wd, ar,
		&fakeUsers{role: domain.RoleManager}, fakeTxManager{}, nopLogger{})

	req := managerRequest()
	req.Flags = map[domain.SlotColumn]bool{domain.SlotThird: false}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Занятая клиентом ячейка не трогается, флаг при этом сохранен
	assert.Empty(t, ar.created)
	require.NotNil(t, ov.upserted)
	assert.False(t, ov.upserted.IsOpen(domain.SlotThird))
}

func TestExecuteReleaseCancelsHolds(t *testing.T) {
	closed := domain.NewDefaultDayOverride(testDate())
	closed.Open[domain.SlotSecond] = false

	note := domain.AdminHoldNote
	hold := &domain.Appointment{
		ID:       5,
		UserID:   1,
		WorkDate: testDate(),
		Slot:     "11:00",
		Status:   domain.StatusOpen,
		Notes:    &note,
	}

	ov := &fakeOverrides{current: closed}
	wd := &fakeWorkday{}
	ar := &fakeApptRepo{holds: []*domain.Appointment{hold}}
	uc := NewUseCase(&fakeSlotTimes{times: configuredTimes()}, ov, wd, ar,
		&fakeUsers{role: domain.RoleManager}, fakeTxManager{}, nopLogger{})

	req := managerRequest()
	req.Flags = map[domain.SlotColumn]bool{domain.SlotSecond: true}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.Flags[domain.SlotSecond])
	assert.Equal(t, []int64{5}, ar.canceled)
	assert.Equal(t, []domain.SlotColumn{domain.SlotSecond}, wd.clears)
}

func TestExecuteReleaseKeepsForeignCell(t *testing.T) {
	closed := domain.NewDefaultDayOverride(testDate())
	closed.Open[domain.SlotSecond] = false

	note := domain.AdminHoldNote
	hold := &domain.Appointment{ID: 5, UserID: 1, Slot: "11:00", Status: domain.StatusOpen, Notes: &note}

	ov := &fakeOverrides{current: closed}
	wd := &fakeWorkday{mismatch: true}
	ar := &fakeApptRepo{holds: []*domain.Appointment{hold}}
	uc := NewUseCase(&fakeSlotTimes{times: configuredTimes()}, ov, wd, ar,
		&fakeUsers{role: domain.RoleManager}, fakeTxManager{}, nopLogger{})

	req := managerRequest()
	req.Flags = map[domain.SlotColumn]bool{domain.SlotSecond: true}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Блокировка отменена, но чужая ячейка не очищена
	assert.Equal(t, []int64{5}, ar.canceled)
	assert.Empty(t, wd.clears)
}

func TestExecuteOnlyShorthand(t *testing.T) {
	ov := &fakeOverrides{}
	wd := &fakeWorkday{}
	ar := &fakeApptRepo{}
	uc := NewUseCase(&fakeSlotTimes{times: configuredTimes()}, ov, wd, ar,
		&fakeUsers{role: domain.RoleManager}, fakeTxManager{}, nopLogger{})

	req := managerRequest()
	only := domain.SlotFourth
	req.Only = &only

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	for _, col := range domain.SlotColumns {
		if col == domain.SlotFourth {
			assert.True(t, resp.Flags[col])
		} else {
			assert.False(t, resp.Flags[col], "slot %s", col)
		}
	}
	// Четыре закрытых слота получили блокировки
	assert.Len(t, wd.claims, 4)
	assert.Len(t, ar.created, 4)
}

func TestExecuteForbidden(t *testing.T) {
	uc := NewUseCase(&fakeSlotTimes{times: configuredTimes()}, &fakeOverrides{},
		&fakeWorkday{}, &fakeApptRepo{}, &fakeUsers{role: domain.RoleUser},
		fakeTxManager{}, nopLogger{})

	req := managerRequest()
	req.Flags = map[domain.SlotColumn]bool{domain.SlotFirst: false}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestExecuteValidation(t *testing.T) {
	uc := NewUseCase(&fakeSlotTimes{times: configuredTimes()}, &fakeOverrides{},
		&fakeWorkday{}, &fakeApptRepo{}, &fakeUsers{role: domain.RoleManager},
		fakeTxManager{}, nopLogger{})

	t.Run("empty request", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), managerRequest())
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown slot", func(t *testing.T) {
		req := managerRequest()
		req.Flags = map[domain.SlotColumn]bool{"sixth_app": false}
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

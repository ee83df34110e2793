package create_appointment

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	workdayRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/workday"
	slottimesService "github.com/velumi/NailStudio-Backend/internal/service/slottimes"
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

type fakeWorkday struct {
	claimErr    error
	claimedCol  domain.SlotColumn
	claimedName string
	ensured     bool
}

func (f *fakeWorkday) EnsureDay(context.Context, time.Time) error {
	f.ensured = true
	return nil
}

func (f *fakeWorkday) ClaimSlot(_ context.Context, _ time.Time, col domain.SlotColumn, occupant string) error {
	if f.claimErr != nil {
		return f.claimErr
	}
	f.claimedCol = col
	f.claimedName = occupant
	return nil
}

type fakeApptRepo struct {
	created *domain.Appointment
	err     error
}

func (f *fakeApptRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := *appt
	out.ID = 42
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	f.created = &out
	return &out, nil
}

type fakeOverrides struct {
	override *domain.DayOverride
	err      error
}

func (f *fakeOverrides) Get(context.Context, time.Time) (*domain.DayOverride, error) {
	return f.override, f.err
}

type fakeUsers struct {
	displayName string
	role        domain.UserRole
}

func (f *fakeUsers) GetDisplayName(context.Context, int64) string { return f.displayName }

func (f *fakeUsers) GetRole(context.Context, int64) (domain.UserRole, error) {
	return f.role, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
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

func validRequest() Request {
	return Request{
		UserID: 7,
		Date:   testDate(),
		Time:   "11:00",
	}
}

func newTestUseCase(st *fakeSlotTimes, wd *fakeWorkday, ar *fakeApptRepo, ov *fakeOverrides, us *fakeUsers) (*UseCase, *fakeTxManager) {
	tx := &fakeTxManager{}
	return NewUseCase(st, wd, ar, ov, us, tx, nopLogger{}), tx
}

func TestExecuteCreatesAppointment(t *testing.T) {
	st := &fakeSlotTimes{times: configuredTimes()}
	wd := &fakeWorkday{}
	ar := &fakeApptRepo{}
	ov := &fakeOverrides{override: domain.NewDefaultDayOverride(testDate())}
	us := &fakeUsers{displayName: "Анна", role: domain.RoleUser}

	uc, tx := newTestUseCase(st, wd, ar, ov, us)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "open", resp.Status)
	assert.Equal(t, 1, tx.calls)
	assert.True(t, wd.ensured)
	assert.Equal(t, domain.SlotSecond, wd.claimedCol)
	assert.Equal(t, "Анна", wd.claimedName)
	require.NotNil(t, ar.created)
	assert.Equal(t, domain.StatusOpen, ar.created.Status)
}

func TestExecuteSlotConflict(t *testing.T) {
	st := &fakeSlotTimes{times: configuredTimes()}
	wd := &fakeWorkday{claimErr: workdayRepo.ErrSlotTaken}
	ar := &fakeApptRepo{}
	ov := &fakeOverrides{override: domain.NewDefaultDayOverride(testDate())}
	us := &fakeUsers{displayName: "Анна"}

	uc, _ := newTestUseCase(st, wd, ar, ov, us)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	// Запись не создается, если ячейка не захвачена
	assert.Nil(t, ar.created)
}

func TestExecuteInvalidTime(t *testing.T) {
	st := &fakeSlotTimes{times: configuredTimes()}
	uc, _ := newTestUseCase(st, &fakeWorkday{}, &fakeApptRepo{},
		&fakeOverrides{}, &fakeUsers{})

	req := validRequest()
	req.Time = "10:30"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestExecuteConfigMissing(t *testing.T) {
	st := &fakeSlotTimes{err: slottimesService.ErrConfigNotFound}
	uc, _ := newTestUseCase(st, &fakeWorkday{}, &fakeApptRepo{},
		&fakeOverrides{}, &fakeUsers{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrConfigMissing)
}

func TestExecuteClosedSlot(t *testing.T) {
	closed := domain.NewDefaultDayOverride(testDate())
	closed.Open[domain.SlotSecond] = false

	t.Run("regular user is rejected", func(t *testing.T) {
		st := &fakeSlotTimes{times: configuredTimes()}
		uc, _ := newTestUseCase(st, &fakeWorkday{}, &fakeApptRepo{},
			&fakeOverrides{override: closed}, &fakeUsers{role: domain.RoleUser})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotClosed)
	})

	t.Run("manager bypasses the flag", func(t *testing.T) {
		st := &fakeSlotTimes{times: configuredTimes()}
		ar := &fakeApptRepo{}
		uc, _ := newTestUseCase(st, &fakeWorkday{}, ar,
			&fakeOverrides{override: closed}, &fakeUsers{displayName: "manager", role: domain.RoleManager})

		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.NotNil(t, ar.created)
	})
}

func TestExecuteValidation(t *testing.T) {
	uc, _ := newTestUseCase(&fakeSlotTimes{times: configuredTimes()},
		&fakeWorkday{}, &fakeApptRepo{}, &fakeOverrides{}, &fakeUsers{})

	req := validRequest()
	req.UserID = 0
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Time = "abc"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteSanitizesOptionalFields(t *testing.T) {
	st := &fakeSlotTimes{times: configuredTimes()}
	ar := &fakeApptRepo{}
	uc, _ := newTestUseCase(st, &fakeWorkday{}, ar,
		&fakeOverrides{override: domain.NewDefaultDayOverride(testDate())},
		&fakeUsers{displayName: "Анна"})

	req := validRequest()
	req.Notes = ptr.Ptr("  привет  ")
	req.InspoImg = ptr.Ptr("ftp://evil.example/img.png")
	req.Location = ptr.Ptr("")

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, ar.created.Notes)
	assert.Equal(t, "привет", *ar.created.Notes)
	assert.Nil(t, ar.created.InspoImg)
	assert.Nil(t, ar.created.Location)
}

func TestSanitizeTruncatesOnRuneBoundary(t *testing.T) {
	t.Run("long cyrillic notes", func(t *testing.T) {
		long := "a" + strings.Repeat("я", 600)
		got := sanitizeNotes(&long)

		require.NotNil(t, got)
		assert.LessOrEqual(t, len(*got), domain.MaxNotesLength)
		// Обрез не должен оставлять разорванный UTF-8 символ
		assert.True(t, utf8.ValidString(*got))
		assert.True(t, strings.HasPrefix(long, *got))
	})

	t.Run("long image reference truncated, not dropped", func(t *testing.T) {
		long := "https://example.com/" + strings.Repeat("я", 600)
		got := sanitizeInspoImg(&long)

		require.NotNil(t, got)
		assert.LessOrEqual(t, len(*got), domain.MaxInspoImgLength)
		assert.True(t, utf8.ValidString(*got))
	})

	t.Run("long cyrillic location", func(t *testing.T) {
		long := strings.Repeat("ю", 200)
		got := sanitizeLocation(&long)

		require.NotNil(t, got)
		assert.LessOrEqual(t, len(*got), domain.MaxLocationLength)
		assert.True(t, utf8.ValidString(*got))
	})
}

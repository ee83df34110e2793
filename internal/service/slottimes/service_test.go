package slottimes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	slotTimesRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/slottimes"
	"github.com/velumi/NailStudio-Backend/pkg/types"
)

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time { return p.now }

func (p *fakeTimeProvider) advance(d time.Duration) { p.now = p.now.Add(d) }

type fakeRepo struct {
	times    *domain.SlotTimes
	getCalls int
	getErr   error
	upserted *domain.SlotTimes
}

func (r *fakeRepo) Get(_ context.Context, id int64) (*domain.SlotTimes, error) {
	r.getCalls++
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.times, nil
}

func (r *fakeRepo) Upsert(_ context.Context, st *domain.SlotTimes) error {
	r.upserted = st
	r.times = st
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testConfig() *domain.SlotTimes {
	return &domain.SlotTimes{
		ID: domain.DefaultSlotTimesID,
		Times: [domain.SlotsPerDay]types.TimeString{
			"09:00", "11:00", "13:00", "15:00", "17:00",
		},
	}
}

func newTestService(repo *fakeRepo) (*Service, *fakeTimeProvider) {
	svc := NewService(repo, 30*time.Second, nopLogger{})
	clock := &fakeTimeProvider{now: time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)}
	svc.timeProvider = clock
	return svc, clock
}

func TestServiceLoadCachesWithinTTL(t *testing.T) {
	repo := &fakeRepo{times: testConfig()}
	svc, clock := newTestService(repo)

	ctx := context.Background()

	_, err := svc.Load(ctx, domain.DefaultSlotTimesID)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getCalls)

	// Повторное чтение в пределах TTL идет из кэша
	clock.advance(29 * time.Second)
	_, err = svc.Load(ctx, domain.DefaultSlotTimesID)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getCalls)

	// По истечении TTL кэш протухает
	clock.advance(2 * time.Second)
	_, err = svc.Load(ctx, domain.DefaultSlotTimesID)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.getCalls)
}

func TestServiceLoadConfigNotFound(t *testing.T) {
	repo := &fakeRepo{getErr: slotTimesRepo.ErrConfigNotFound}
	svc, _ := newTestService(repo)

	_, err := svc.Load(context.Background(), domain.DefaultSlotTimesID)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestServiceSave(t *testing.T) {
	t.Run("validates and persists", func(t *testing.T) {
		repo := &fakeRepo{times: testConfig()}
		svc, _ := newTestService(repo)

		cfg, err := svc.Save(context.Background(), domain.DefaultSlotTimesID,
			[domain.SlotsPerDay]string{"10:00", "12:00", "14:00", "16:00", "18:00"})
		require.NoError(t, err)
		require.NotNil(t, repo.upserted)
		assert.Equal(t, types.TimeString("10:00"), cfg.Times[0])
		assert.Equal(t, types.TimeString("18:00"), cfg.Times[4])
	})

	t.Run("rejects bad format", func(t *testing.T) {
		repo := &fakeRepo{times: testConfig()}
		svc, _ := newTestService(repo)

		_, err := svc.Save(context.Background(), domain.DefaultSlotTimesID,
			[domain.SlotsPerDay]string{"25:00", "12:00", "14:00", "16:00", "18:00"})
		assert.ErrorIs(t, err, ErrInvalidTime)
		assert.Nil(t, repo.upserted)
	})

	t.Run("rejects duplicates after truncation", func(t *testing.T) {
		repo := &fakeRepo{times: testConfig()}
		svc, _ := newTestService(repo)

		_, err := svc.Save(context.Background(), domain.DefaultSlotTimesID,
			[domain.SlotsPerDay]string{"10:00", "10:00:30", "14:00", "16:00", "18:00"})
		assert.ErrorIs(t, err, ErrDuplicateTime)
	})

	t.Run("invalidates cache", func(t *testing.T) {
		repo := &fakeRepo{times: testConfig()}
		svc, _ := newTestService(repo)

		ctx := context.Background()
		_, err := svc.Load(ctx, domain.DefaultSlotTimesID)
		require.NoError(t, err)
		callsBefore := repo.getCalls

		_, err = svc.Save(ctx, domain.DefaultSlotTimesID,
			[domain.SlotsPerDay]string{"10:00", "12:00", "14:00", "16:00", "18:00"})
		require.NoError(t, err)

		// Save перечитывает конфигурацию после сброса кэша
		assert.Greater(t, repo.getCalls, callsBefore)
	})
}

package slottimes

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/velumi/NailStudio-Backend/internal/domain"
	slotTimesRepo "github.com/velumi/NailStudio-Backend/internal/infra/storage/slottimes"
	"github.com/velumi/NailStudio-Backend/pkg/types"
)

// Service сервис конфигурации времён слотов с in-memory кэшем
//
// Кэш ключуется по id конфигурации и живет cacheTTL (30 секунд по
// умолчанию). Инвалидация всегда полная: после любой записи проще сбросить
// всё, чем отлавливать частичную устарелость. Кэш процесс-локальный:
// в многоэкземплярном развертывании другие экземпляры могут отдавать
// старые времена до истечения TTL.
type Service struct {
	repo         Repository
	cacheTTL     time.Duration
	timeProvider TimeProvider
	logger       Logger

	mu    sync.RWMutex
	cache map[int64]cacheEntry
}

type cacheEntry struct {
	at    time.Time
	times *domain.SlotTimes
}

// NewService создает новый сервис конфигурации слотов
func NewService(repo Repository, cacheTTL time.Duration, logger Logger) *Service {
	return &Service{
		repo:         repo,
		cacheTTL:     cacheTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		cache:        make(map[int64]cacheEntry),
	}
}

// Load возвращает конфигурацию времён по id, используя кэш
func (s *Service) Load(ctx context.Context, id int64) (*domain.SlotTimes, error) {
	now := s.timeProvider.Now()

	s.mu.RLock()
	entry, ok := s.cache[id]
	s.mu.RUnlock()

	if ok && now.Sub(entry.at) < s.cacheTTL {
		return entry.times, nil
	}

	st, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, slotTimesRepo.ErrConfigNotFound) {
			s.logger.Warn("SlotTimes.Load: config id=%d not found", id)
			return nil, ErrConfigNotFound
		}
		s.logger.Error("SlotTimes.Load: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Load - repository error: %v", ErrInternal, err)
	}

	s.mu.Lock()
	s.cache[id] = cacheEntry{at: now, times: st}
	s.mu.Unlock()

	return st, nil
}

// Save валидирует и сохраняет пять времён для конфигурации id
// Времена принимаются как "HH:MM" или "HH:MM:SS" и должны быть попарно
// различны после усечения до минут. После записи кэш сбрасывается целиком.
func (s *Service) Save(ctx context.Context, id int64, raw [domain.SlotsPerDay]string) (*domain.SlotTimes, error) {
	st := &domain.SlotTimes{ID: id}

	for i, v := range raw {
		t, err := types.NewTimeStringFromString(v)
		if err != nil {
			s.logger.Warn("SlotTimes.Save: invalid time %q for id=%d", v, id)
			return nil, fmt.Errorf("%w: %q", ErrInvalidTime, v)
		}
		st.Times[i] = t
	}

	if !st.HasDistinctTimes() {
		s.logger.Warn("SlotTimes.Save: duplicate times for id=%d", id)
		return nil, ErrDuplicateTime
	}

	if err := s.repo.Upsert(ctx, st); err != nil {
		s.logger.Error("SlotTimes.Save: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	// Инвалидация до следующего чтения - свежие времена попадут в кэш
	// при первом Load
	s.Invalidate()

	s.logger.Info("SlotTimes.Save: config id=%d updated", id)
	return s.Load(ctx, id)
}

// Invalidate полностью сбрасывает кэш всех конфигураций
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.cache = make(map[int64]cacheEntry)
	s.mu.Unlock()
}

package refresh

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/salahdesk/salah-widget/internal/api"
	"github.com/salahdesk/salah-widget/internal/cache"
	"github.com/salahdesk/salah-widget/internal/model"
	"github.com/salahdesk/salah-widget/internal/schedule"
)

// Timing constants
const (
	FetchTimeout = 30 * time.Second
	FullDay      = 24 * time.Hour
)

// Params describes one refresh cycle
type Params struct {
	City          string
	Country       string
	Timezone      string // IANA name, empty for system local
	Method        int
	IncludeHadith bool
}

// Snapshot is the complete data state handed to the UI after each cycle.
// Each panel carries its own status so one failed fetch never hides the
// other panels.
type Snapshot struct {
	Today          *model.PrayerSchedule
	Tomorrow       *model.PrayerSchedule
	ScheduleStatus model.FetchStatus

	Verse       *model.Verse
	VerseStatus model.FetchStatus

	Hadith       *model.Hadith
	HadithStatus model.FetchStatus

	RefreshedAt time.Time
}

// Service orchestrates the daily data refresh: it fetches the prayer
// schedule, verse, and hadith independently, persists good payloads to the
// cache, and falls back to cached values when a fetch fails.
type Service struct {
	fetcher api.Fetcher
	store   PayloadStore

	mu         sync.RWMutex
	snapshot   Snapshot
	refreshing bool
	onUpdate   func(Snapshot) // callback for UI updates

	dailyStop chan struct{}
	stopOnce  sync.Once
	now       func() time.Time
}

// NewService creates a refresh service. store may be nil to disable the
// offline cache.
func NewService(fetcher api.Fetcher, store PayloadStore) *Service {
	return &Service{
		fetcher: fetcher,
		store:   store,
		snapshot: Snapshot{
			ScheduleStatus: model.FetchStatusPending,
			VerseStatus:    model.FetchStatusPending,
			HadithStatus:   model.FetchStatusPending,
		},
		dailyStop: make(chan struct{}),
		now:       time.Now,
	}
}

// SetUpdateCallback sets the callback function for snapshot updates
func (s *Service) SetUpdateCallback(callback func(Snapshot)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Snapshot returns the current data state
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// LoadCached seeds the snapshot from the cache so the widget renders
// immediately on start. Stale data is better than an empty panel.
func (s *Service) LoadCached() {
	if s.store == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var today model.PrayerSchedule
	if fetchedAt, err := s.store.Get(cache.KindScheduleToday, &today); err == nil {
		// Only useful if it is actually today's schedule
		if sameDay(today.Date, s.now()) {
			s.snapshot.Today = &today
			s.snapshot.ScheduleStatus = model.FetchStatusStale
			log.Printf("Loaded cached schedule from %v", fetchedAt)

			var tomorrow model.PrayerSchedule
			if _, err := s.store.Get(cache.KindScheduleTomorrow, &tomorrow); err == nil {
				s.snapshot.Tomorrow = &tomorrow
			}
		}
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Cached schedule unreadable: %v", err)
	}

	var verse model.Verse
	if _, err := s.store.Get(cache.KindVerse, &verse); err == nil {
		s.snapshot.Verse = &verse
		s.snapshot.VerseStatus = model.FetchStatusStale
	}

	var hadith model.Hadith
	if _, err := s.store.Get(cache.KindHadith, &hadith); err == nil {
		s.snapshot.Hadith = &hadith
		s.snapshot.HadithStatus = model.FetchStatusStale
	}
}

// Refresh runs one refresh cycle in a background goroutine. A cycle already
// in flight is not interrupted; the new request is dropped.
func (s *Service) Refresh(params Params) {
	s.mu.Lock()
	if s.refreshing {
		s.mu.Unlock()
		log.Printf("Refresh already in progress, skipping")
		return
	}
	s.refreshing = true
	s.mu.Unlock()

	go s.runCycle(params)
}

// runCycle fetches all data kinds, updating the snapshot as results arrive
func (s *Service) runCycle(params Params) {
	cycle := uuid.New().String()
	log.Printf("Refresh cycle %s: city=%s country=%s", cycle, params.City, params.Country)

	ctx, cancel := context.WithTimeout(context.Background(), FetchTimeout)
	defer cancel()

	s.refreshSchedules(ctx, cycle, params)
	s.refreshVerse(ctx, cycle)

	if params.IncludeHadith {
		s.refreshHadith(ctx, cycle)
	}

	// Clear the in-flight flag before notifying so a callback-triggered
	// refresh is not dropped
	s.mu.Lock()
	s.snapshot.RefreshedAt = s.now()
	snapshot := s.snapshot
	callback := s.onUpdate
	s.refreshing = false
	s.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}

	log.Printf("Refresh cycle %s finished: schedule=%s verse=%s hadith=%s",
		cycle, snapshot.ScheduleStatus, snapshot.VerseStatus, snapshot.HadithStatus)
}

// refreshSchedules fetches today's and tomorrow's schedules and inserts the
// derived Midnight entry (midpoint of Isha and tomorrow's Fajr)
func (s *Service) refreshSchedules(ctx context.Context, cycle string, params Params) {
	todayDate := s.now()
	if params.Timezone != "" {
		if loc, err := time.LoadLocation(params.Timezone); err == nil {
			todayDate = todayDate.In(loc)
		} else {
			log.Printf("Cycle %s: unknown timezone %q, using system local: %v", cycle, params.Timezone, err)
		}
	}

	today, err := s.fetcher.FetchPrayerTimes(ctx, params.City, params.Country, params.Method, todayDate)
	if err != nil {
		log.Printf("Cycle %s: schedule fetch failed: %v", cycle, err)
		s.degrade(func(snap *Snapshot) {
			if snap.Today != nil {
				snap.ScheduleStatus = model.FetchStatusStale
			} else {
				snap.ScheduleStatus = model.FetchStatusError
			}
		})
		return
	}

	// Tomorrow's schedule enables the wrap target and the Midnight midpoint;
	// its failure is not fatal.
	tomorrow, err := s.fetcher.FetchPrayerTimes(ctx, params.City, params.Country, params.Method, todayDate.Add(FullDay))
	if err != nil {
		log.Printf("Cycle %s: tomorrow schedule fetch failed: %v", cycle, err)
		tomorrow = nil
	}

	today = withMidnight(today, tomorrow)

	s.mu.Lock()
	s.snapshot.Today = today
	s.snapshot.Tomorrow = tomorrow
	s.snapshot.ScheduleStatus = model.FetchStatusReady
	s.mu.Unlock()

	s.persist(cache.KindScheduleToday, today)
	if tomorrow != nil {
		s.persist(cache.KindScheduleTomorrow, tomorrow)
	}
}

// withMidnight returns today's schedule extended with the Midnight entry
// when both Isha and tomorrow's Fajr are known
func withMidnight(today, tomorrow *model.PrayerSchedule) *model.PrayerSchedule {
	if today == nil || tomorrow == nil {
		return today
	}

	isha, haveIsha := today.TimeOf(model.PrayerIsha)
	fajr, haveFajr := tomorrow.TimeOf(model.PrayerFajr)
	if !haveIsha || !haveFajr {
		return today
	}

	times := make(map[model.PrayerName]time.Time, len(today.Times)+1)
	for _, pt := range today.Times {
		times[pt.Name] = pt.At
	}
	times[model.PrayerMidnight] = schedule.Midnight(isha, fajr)

	return model.NewPrayerSchedule(today.Date, today.Location, times)
}

func (s *Service) refreshVerse(ctx context.Context, cycle string) {
	verse, err := s.fetcher.FetchRandomVerse(ctx)
	if err != nil {
		log.Printf("Cycle %s: verse fetch failed: %v", cycle, err)
		s.degrade(func(snap *Snapshot) {
			if snap.Verse != nil {
				snap.VerseStatus = model.FetchStatusStale
			} else {
				snap.VerseStatus = model.FetchStatusError
			}
		})
		return
	}

	s.mu.Lock()
	s.snapshot.Verse = verse
	s.snapshot.VerseStatus = model.FetchStatusReady
	s.mu.Unlock()

	s.persist(cache.KindVerse, verse)
}

func (s *Service) refreshHadith(ctx context.Context, cycle string) {
	hadith, err := s.fetcher.FetchRandomHadith(ctx)
	if err != nil {
		log.Printf("Cycle %s: hadith fetch failed: %v", cycle, err)
		s.degrade(func(snap *Snapshot) {
			if snap.Hadith != nil {
				snap.HadithStatus = model.FetchStatusStale
			} else {
				snap.HadithStatus = model.FetchStatusError
			}
		})
		return
	}

	s.mu.Lock()
	s.snapshot.Hadith = hadith
	s.snapshot.HadithStatus = model.FetchStatusReady
	s.mu.Unlock()

	s.persist(cache.KindHadith, hadith)
}

// degrade applies a status downgrade under the snapshot lock
func (s *Service) degrade(apply func(*Snapshot)) {
	s.mu.Lock()
	apply(&s.snapshot)
	s.mu.Unlock()
}

// persist writes a payload to the cache, logging failures without surfacing
// them: a broken cache must not break a successful fetch
func (s *Service) persist(kind string, v any) {
	if s.store == nil {
		return
	}
	if err := s.store.Put(kind, v); err != nil {
		log.Printf("Cache write for %s failed: %v", kind, err)
	}
}

// StartDaily schedules a refresh at every midnight. Manual Refresh calls
// are independent of this timer.
func (s *Service) StartDaily(params func() Params) {
	go func() {
		for {
			wait := durationToMidnight(s.now())
			log.Printf("Next daily refresh in %v", wait.Round(time.Second))

			select {
			case <-time.After(wait):
				s.Refresh(params())
			case <-s.dailyStop:
				return
			}
		}
	}()
}

// StopDaily ends the daily refresh loop. Safe to call more than once.
func (s *Service) StopDaily() {
	s.stopOnce.Do(func() {
		close(s.dailyStop)
	})
}

// durationToMidnight returns the time until the next local midnight
func durationToMidnight(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Add(FullDay)
	return next.Sub(now)
}

// sameDay reports whether two times fall on the same calendar day
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

package schedule

import (
	"log"
	"sync"
	"time"

	"github.com/salahdesk/salah-widget/internal/model"
)

// DefaultTickInterval is how often the countdown is recomputed
const DefaultTickInterval = time.Second

// Tracker recomputes the next-prayer countdown on a fixed wall-clock tick.
// It keeps the last successfully fetched schedules and keeps serving them
// when a later refresh fails; it never re-fetches on its own.
type Tracker struct {
	mu       sync.RWMutex
	today    *model.PrayerSchedule
	tomorrow *model.PrayerSchedule

	interval time.Duration
	onTick   func(model.NextPrayer, bool) // callback for UI updates
	stop     chan struct{}
	stopOnce sync.Once

	now func() time.Time
}

// NewTracker creates a tracker that invokes onTick every interval with the
// current countdown state. ok=false in the callback means no schedule has
// been fetched yet.
func NewTracker(interval time.Duration, onTick func(model.NextPrayer, bool)) *Tracker {
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	return &Tracker{
		interval: interval,
		onTick:   onTick,
		stop:     make(chan struct{}),
		now:      time.Now,
	}
}

// SetSchedules replaces the schedules the tracker derives its state from.
// A nil today is ignored so a failed refresh retains the previous schedule.
func (t *Tracker) SetSchedules(today, tomorrow *model.PrayerSchedule) {
	if today == nil {
		return
	}

	t.mu.Lock()
	t.today = today
	t.tomorrow = tomorrow
	t.mu.Unlock()

	log.Printf("Tracker schedules updated: today=%s tomorrow=%v",
		today.Date.Format("2006-01-02"), tomorrow != nil)
}

// Current returns the countdown state derived from the stored schedules
func (t *Tracker) Current() (model.NextPrayer, bool) {
	t.mu.RLock()
	today, tomorrow := t.today, t.tomorrow
	t.mu.RUnlock()

	return NextPrayer(today, tomorrow, t.now())
}

// Start begins the tick loop in a background goroutine
func (t *Tracker) Start() {
	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		// Emit immediately so the UI does not wait a full interval
		t.emit()

		for {
			select {
			case <-ticker.C:
				t.emit()
			case <-t.stop:
				return
			}
		}
	}()
}

// Stop ends the tick loop. Safe to call more than once.
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stop)
	})
}

func (t *Tracker) emit() {
	if t.onTick == nil {
		return
	}
	np, ok := t.Current()
	t.onTick(np, ok)
}

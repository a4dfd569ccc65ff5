package schedule

import (
	"time"

	"github.com/salahdesk/salah-widget/internal/model"
)

// Day is the offset applied when wrapping to tomorrow's first entry
const Day = 24 * time.Hour

// NextPrayer returns the nearest future entry given today's schedule and the
// current time. When all of today's entries have passed it wraps to
// tomorrow's first entry. When tomorrow's schedule is not available the
// first entry of today shifted by a full day is used as an estimate.
// The second return value is false when no schedule is available at all.
func NextPrayer(today, tomorrow *model.PrayerSchedule, now time.Time) (model.NextPrayer, bool) {
	if today == nil || len(today.Times) == 0 {
		return model.NextPrayer{}, false
	}

	if pt, ok := today.Next(now); ok {
		return model.NextPrayer{
			Name:      pt.Name,
			At:        pt.At,
			Remaining: pt.At.Sub(now),
		}, true
	}

	// All of today's entries have passed; wrap to tomorrow
	if tomorrow != nil {
		if pt, ok := tomorrow.First(); ok {
			return model.NextPrayer{
				Name:      pt.Name,
				At:        pt.At,
				Remaining: pt.At.Sub(now),
			}, true
		}
	}

	first, ok := today.First()
	if !ok {
		return model.NextPrayer{}, false
	}

	at := first.At.Add(Day)
	return model.NextPrayer{
		Name:      first.Name,
		At:        at,
		Remaining: at.Sub(now),
	}, true
}

// Midnight returns the midpoint between today's Isha and tomorrow's Fajr.
// The Aladhan API reports its own midnight value but the widget recomputes
// it from the two fetched schedules so the pair stays consistent.
func Midnight(isha, tomorrowFajr time.Time) time.Time {
	if tomorrowFajr.Before(isha) {
		tomorrowFajr = tomorrowFajr.Add(Day)
	}
	return isha.Add(tomorrowFajr.Sub(isha) / 2)
}

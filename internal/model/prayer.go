package model

import (
	"fmt"
	"sort"
	"time"
)

// PrayerName identifies an entry in the daily prayer schedule
type PrayerName string

const (
	PrayerFajr     PrayerName = "Fajr"
	PrayerSunrise  PrayerName = "Sunrise"
	PrayerDhuhr    PrayerName = "Dhuhr"
	PrayerAsr      PrayerName = "Asr"
	PrayerMaghrib  PrayerName = "Maghrib"
	PrayerIsha     PrayerName = "Isha"
	PrayerMidnight PrayerName = "Midnight"
)

// String returns the string representation of PrayerName
func (pn PrayerName) String() string {
	return string(pn)
}

// DisplayOrder lists prayer names in the order they appear during a day.
// The UI renders the schedule grid in this order.
var DisplayOrder = []PrayerName{
	PrayerFajr,
	PrayerSunrise,
	PrayerDhuhr,
	PrayerAsr,
	PrayerMaghrib,
	PrayerIsha,
	PrayerMidnight,
}

// PrayerTime is a single named entry in a day's schedule
type PrayerTime struct {
	Name PrayerName
	At   time.Time
}

// PrayerSchedule holds the prayer times for one date and location.
// Times are kept sorted ascending; the schedule is immutable once built.
type PrayerSchedule struct {
	Date     time.Time
	Location string
	Times    []PrayerTime
}

// NewPrayerSchedule builds a schedule from named times, sorted ascending
func NewPrayerSchedule(date time.Time, location string, times map[PrayerName]time.Time) *PrayerSchedule {
	s := &PrayerSchedule{
		Date:     date,
		Location: location,
		Times:    make([]PrayerTime, 0, len(times)),
	}

	for name, at := range times {
		s.Times = append(s.Times, PrayerTime{Name: name, At: at})
	}

	sort.Slice(s.Times, func(i, j int) bool {
		return s.Times[i].At.Before(s.Times[j].At)
	})

	return s
}

// Next returns the earliest entry strictly after now.
// The second return value is false when all entries for the day have passed.
func (s *PrayerSchedule) Next(now time.Time) (PrayerTime, bool) {
	for _, pt := range s.Times {
		if pt.At.After(now) {
			return pt, true
		}
	}
	return PrayerTime{}, false
}

// First returns the earliest entry of the day
func (s *PrayerSchedule) First() (PrayerTime, bool) {
	if len(s.Times) == 0 {
		return PrayerTime{}, false
	}
	return s.Times[0], true
}

// TimeOf returns the time for a named entry
func (s *PrayerSchedule) TimeOf(name PrayerName) (time.Time, bool) {
	for _, pt := range s.Times {
		if pt.Name == name {
			return pt.At, true
		}
	}
	return time.Time{}, false
}

// NextPrayer is the derived countdown state: which prayer comes next,
// when it occurs, and how long remains.
type NextPrayer struct {
	Name      PrayerName
	At        time.Time
	Remaining time.Duration
}

// CountdownString returns the remaining time formatted as hh:mm:ss,
// or "--:--:--" when no target is known
func (np NextPrayer) CountdownString() string {
	if np.At.IsZero() {
		return "--:--:--"
	}

	remaining := np.Remaining
	if remaining < 0 {
		remaining = 0
	}

	total := int(remaining.Round(time.Second).Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

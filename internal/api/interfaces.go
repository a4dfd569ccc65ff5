package api

import (
	"context"
	"time"

	"github.com/salahdesk/salah-widget/internal/model"
)

// Fetcher defines the interface for the API client.
type Fetcher interface {
	// FetchPrayerTimes fetches the prayer schedule for a city, country and date
	FetchPrayerTimes(ctx context.Context, city, country string, method int, date time.Time) (*model.PrayerSchedule, error)

	// FetchRandomVerse fetches a random ayah with its English translation
	FetchRandomVerse(ctx context.Context) (*model.Verse, error)

	// FetchRandomHadith fetches a random hadith
	FetchRandomHadith(ctx context.Context) (*model.Hadith, error)
}

package cache

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/salahdesk/salah-widget/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestStore_RoundTrip(t *testing.T) {
	store := openTestStore(t)

	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	schedule := model.NewPrayerSchedule(date, "New York, United States", map[model.PrayerName]time.Time{
		model.PrayerFajr: date.Add(5 * time.Hour),
		model.PrayerIsha: date.Add(19*time.Hour + 40*time.Minute),
	})

	if err := store.Put(KindScheduleToday, schedule); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	var loaded model.PrayerSchedule
	fetchedAt, err := store.Get(KindScheduleToday, &loaded)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if time.Since(fetchedAt) > time.Minute {
		t.Errorf("Unexpected fetchedAt: %v", fetchedAt)
	}
	if loaded.Location != schedule.Location {
		t.Errorf("Expected location %q, got %q", schedule.Location, loaded.Location)
	}
	if len(loaded.Times) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(loaded.Times))
	}

	fajr, ok := loaded.TimeOf(model.PrayerFajr)
	if !ok || !fajr.Equal(date.Add(5*time.Hour)) {
		t.Errorf("Fajr did not round-trip: %v ok=%v", fajr, ok)
	}
}

func TestStore_Miss(t *testing.T) {
	store := openTestStore(t)

	var verse model.Verse
	_, err := store.Get(KindVerse, &verse)
	if !errors.Is(err, ErrMiss) {
		t.Errorf("Expected ErrMiss, got %v", err)
	}
}

func TestStore_LastWriteWins(t *testing.T) {
	store := openTestStore(t)

	first := model.Hadith{Text: "first", Source: "Sahih al-Bukhari", Number: "1"}
	second := model.Hadith{Text: "second", Source: "Sahih al-Bukhari", Number: "2"}

	if err := store.Put(KindHadith, first); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Put(KindHadith, second); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	var loaded model.Hadith
	if _, err := store.Get(KindHadith, &loaded); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if loaded.Text != "second" {
		t.Errorf("Expected latest entry, got %q", loaded.Text)
	}
}

func TestStore_KindsAreIndependent(t *testing.T) {
	store := openTestStore(t)

	verse := model.Verse{Number: 1, Arabic: "بِسْمِ", SurahName: "Al-Fatihah", AyahNumber: 1}
	if err := store.Put(KindVerse, verse); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	var hadith model.Hadith
	if _, err := store.Get(KindHadith, &hadith); !errors.Is(err, ErrMiss) {
		t.Errorf("Expected ErrMiss for hadith, got %v", err)
	}

	var loaded model.Verse
	if _, err := store.Get(KindVerse, &loaded); err != nil {
		t.Fatalf("Get verse failed: %v", err)
	}
	if loaded.SurahName != "Al-Fatihah" {
		t.Errorf("Verse did not round-trip: %+v", loaded)
	}
}

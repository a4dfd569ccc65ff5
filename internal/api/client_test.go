package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/salahdesk/salah-widget/internal/model"
)

const timingsPayload = `{
	"code": 200,
	"status": "OK",
	"data": {
		"timings": {
			"Fajr": "05:00",
			"Sunrise": "06:30",
			"Dhuhr": "12:30",
			"Asr": "15:45",
			"Sunset": "18:20",
			"Maghrib": "18:20",
			"Isha": "19:40",
			"Midnight": "00:20"
		}
	}
}`

func TestFetchPrayerTimes(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/timingsByCity" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		gotQuery = map[string]string{
			"city":    r.URL.Query().Get("city"),
			"country": r.URL.Query().Get("country"),
			"method":  r.URL.Query().Get("method"),
			"date":    r.URL.Query().Get("date"),
		}
		w.Write([]byte(timingsPayload))
	}))
	defer server.Close()

	client := NewClient()
	client.SetPrayerBaseURL(server.URL)

	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	schedule, err := client.FetchPrayerTimes(context.Background(), "New York", "United States", 2, date)
	if err != nil {
		t.Fatalf("FetchPrayerTimes failed: %v", err)
	}

	if gotQuery["city"] != "New York" || gotQuery["country"] != "United States" {
		t.Errorf("Unexpected location params: %v", gotQuery)
	}
	if gotQuery["method"] != "2" {
		t.Errorf("Expected method 2, got %s", gotQuery["method"])
	}
	if gotQuery["date"] != "15-06-2025" {
		t.Errorf("Expected date 15-06-2025, got %s", gotQuery["date"])
	}

	if len(schedule.Times) != 6 {
		t.Fatalf("Expected 6 entries, got %d", len(schedule.Times))
	}

	asr, ok := schedule.TimeOf(model.PrayerAsr)
	if !ok {
		t.Fatal("Expected Asr in schedule")
	}
	if asr.Hour() != 15 || asr.Minute() != 45 {
		t.Errorf("Expected Asr at 15:45, got %02d:%02d", asr.Hour(), asr.Minute())
	}
	if schedule.Location != "New York, United States" {
		t.Errorf("Unexpected location: %s", schedule.Location)
	}
}

func TestFetchPrayerTimes_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": 500, "status": "Internal Server Error", "data": {}}`))
	}))
	defer server.Close()

	client := NewClient()
	client.SetPrayerBaseURL(server.URL)

	_, err := client.FetchPrayerTimes(context.Background(), "New York", "United States", 2, time.Now())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
}

func TestFetchPrayerTimes_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient()
	client.SetPrayerBaseURL(server.URL)

	_, err := client.FetchPrayerTimes(context.Background(), "New York", "United States", 2, time.Now())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
}

func TestFetchPrayerTimes_BadPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>oops</html>"},
		{"missing timing", `{"code": 200, "data": {"timings": {"Fajr": "05:00"}}}`},
		{"bad time value", `{"code": 200, "data": {"timings": {
			"Fajr": "nope", "Sunrise": "06:30", "Dhuhr": "12:30",
			"Asr": "15:45", "Maghrib": "18:20", "Isha": "19:40"}}}`},
	}

	for _, test := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(test.body))
		}))

		client := NewClient()
		client.SetPrayerBaseURL(server.URL)

		_, err := client.FetchPrayerTimes(context.Background(), "New York", "United States", 2, time.Now())
		if !errors.Is(err, ErrBadPayload) {
			t.Errorf("%s: expected ErrBadPayload, got %v", test.name, err)
		}

		server.Close()
	}
}

func TestParseTiming(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		raw     string
		hour    int
		minute  int
		wantErr bool
	}{
		{"05:02", 5, 2, false},
		{"19:40", 19, 40, false},
		{"05:02 (EDT)", 5, 2, false},
		{"", 0, 0, true},
		{"25:99", 0, 0, true},
	}

	for _, test := range tests {
		at, err := parseTiming(test.raw, date)
		if test.wantErr {
			if err == nil {
				t.Errorf("parseTiming(%q): expected error", test.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseTiming(%q) failed: %v", test.raw, err)
			continue
		}
		if at.Hour() != test.hour || at.Minute() != test.minute {
			t.Errorf("parseTiming(%q) = %02d:%02d, expected %02d:%02d",
				test.raw, at.Hour(), at.Minute(), test.hour, test.minute)
		}
		if at.Year() != 2025 || at.Month() != 6 || at.Day() != 15 {
			t.Errorf("parseTiming(%q) lost the date: %v", test.raw, at)
		}
	}
}

func TestFetchRandomVerse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/ayah/random":
			w.Write([]byte(`{"code": 200, "data": {
				"number": 262,
				"text": "ٱللَّهُ لَآ إِلَٰهَ إِلَّا هُوَ",
				"numberInSurah": 255,
				"surah": {"englishName": "Al-Baqarah"}
			}}`))
		case "/v1/ayah/262/en.sahih":
			w.Write([]byte(`{"code": 200, "data": {"number": 262, "text": "Allah - there is no deity except Him"}}`))
		default:
			t.Errorf("Unexpected path: %s", r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient()
	client.SetQuranBaseURL(server.URL)

	verse, err := client.FetchRandomVerse(context.Background())
	if err != nil {
		t.Fatalf("FetchRandomVerse failed: %v", err)
	}

	if verse.Number != 262 {
		t.Errorf("Expected ayah number 262, got %d", verse.Number)
	}
	if verse.Translation != "Allah - there is no deity except Him" {
		t.Errorf("Unexpected translation: %q", verse.Translation)
	}
	if verse.Reference() != "Surah Al-Baqarah (255)" {
		t.Errorf("Unexpected reference: %q", verse.Reference())
	}
}

func TestFetchRandomVerse_TranslationFailureIsPartial(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/ayah/random" {
			w.Write([]byte(`{"code": 200, "data": {
				"number": 1, "text": "بِسْمِ ٱللَّهِ",
				"numberInSurah": 1, "surah": {"englishName": "Al-Fatihah"}
			}}`))
			return
		}
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient()
	client.SetQuranBaseURL(server.URL)

	verse, err := client.FetchRandomVerse(context.Background())
	if err != nil {
		t.Fatalf("Expected verse despite failed translation, got error: %v", err)
	}
	if verse.Arabic == "" {
		t.Error("Expected Arabic text to be present")
	}
	if verse.Translation != "" {
		t.Errorf("Expected empty translation, got %q", verse.Translation)
	}
}

func TestFetchRandomVerse_Unavailable(t *testing.T) {
	client := NewClient()
	client.SetQuranBaseURL("http://127.0.0.1:1")

	_, err := client.FetchRandomVerse(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
}

func TestFetchRandomHadith(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bukhari" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"data": {
			"hadith_english": " Actions are judged by intentions. ",
			"refno": "Sahih al-Bukhari 1"
		}}`))
	}))
	defer server.Close()

	client := NewClient()
	client.SetHadithBaseURL(server.URL)

	hadith, err := client.FetchRandomHadith(context.Background())
	if err != nil {
		t.Fatalf("FetchRandomHadith failed: %v", err)
	}

	if hadith.Text != "Actions are judged by intentions." {
		t.Errorf("Unexpected text: %q", hadith.Text)
	}
	if hadith.Reference() != "Sahih al-Bukhari 1" {
		t.Errorf("Unexpected reference: %q", hadith.Reference())
	}
}

func TestFetchRandomHadith_EmptyText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"hadith_english": "", "refno": ""}}`))
	}))
	defer server.Close()

	client := NewClient()
	client.SetHadithBaseURL(server.URL)

	_, err := client.FetchRandomHadith(context.Background())
	if !errors.Is(err, ErrBadPayload) {
		t.Errorf("Expected ErrBadPayload, got %v", err)
	}
}

func TestHadithNumber(t *testing.T) {
	tests := []struct {
		refno    string
		expected string
	}{
		{"Sahih al-Bukhari 52", "52"},
		{"Book 2, Hadith 45", "45"},
		{"Sahih al-Bukhari 52.", "52"},
		{"", ""},
		{"   ", ""},
	}

	for _, test := range tests {
		result := hadithNumber(test.refno)
		if result != test.expected {
			t.Errorf("hadithNumber(%q) = %q, expected %q", test.refno, result, test.expected)
		}
	}
}

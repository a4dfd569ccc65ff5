package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/salahdesk/salah-widget/internal/model"
)

// Default endpoints
const (
	DefaultPrayerBaseURL = "https://api.aladhan.com"
	DefaultQuranBaseURL  = "https://api.alquran.cloud"
	DefaultHadithBaseURL = "https://random-hadith-generator.vercel.app"
)

// Request constants
const (
	DefaultTimeout     = 15 * time.Second
	DefaultMethod      = 2 // ISNA calculation method
	DateFormat         = "02-01-2006"
	TranslationEdition = "en.sahih"
	HadithCollection   = "bukhari"
	HadithSourceName   = "Sahih al-Bukhari"
)

// Sentinel errors for the fetch taxonomy
var (
	// ErrUnavailable means the endpoint was unreachable or returned a non-OK status
	ErrUnavailable = errors.New("service unavailable")

	// ErrBadPayload means the endpoint answered but the body could not be parsed
	ErrBadPayload = errors.New("malformed response")
)

// Client issues best-effort GET requests against the three public APIs.
// Each fetch is a single attempt; callers decide what to do on error.
type Client struct {
	httpClient *http.Client

	prayerBaseURL string
	quranBaseURL  string
	hadithBaseURL string
}

// NewClient creates an API client with default endpoints and timeout
func NewClient() *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: DefaultTimeout},
		prayerBaseURL: DefaultPrayerBaseURL,
		quranBaseURL:  DefaultQuranBaseURL,
		hadithBaseURL: DefaultHadithBaseURL,
	}
}

// SetPrayerBaseURL overrides the prayer times endpoint
func (c *Client) SetPrayerBaseURL(base string) {
	c.prayerBaseURL = strings.TrimRight(base, "/")
}

// SetQuranBaseURL overrides the Quran endpoint
func (c *Client) SetQuranBaseURL(base string) {
	c.quranBaseURL = strings.TrimRight(base, "/")
}

// SetHadithBaseURL overrides the hadith endpoint
func (c *Client) SetHadithBaseURL(base string) {
	c.hadithBaseURL = strings.TrimRight(base, "/")
}

// timingsResponse mirrors the Aladhan timingsByCity payload
type timingsResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings map[string]string `json:"timings"`
	} `json:"data"`
}

// ayahResponse mirrors the alquran.cloud ayah payload
type ayahResponse struct {
	Code int `json:"code"`
	Data struct {
		Number        int    `json:"number"`
		Text          string `json:"text"`
		NumberInSurah int    `json:"numberInSurah"`
		Surah         struct {
			EnglishName string `json:"englishName"`
		} `json:"surah"`
	} `json:"data"`
}

// hadithResponse mirrors the Random Hadith Generator payload
type hadithResponse struct {
	Data struct {
		HadithEnglish string `json:"hadith_english"`
		RefNo         string `json:"refno"`
	} `json:"data"`
}

// FetchPrayerTimes fetches the prayer schedule for a city, country and date
func (c *Client) FetchPrayerTimes(ctx context.Context, city, country string, method int, date time.Time) (*model.PrayerSchedule, error) {
	if method <= 0 {
		method = DefaultMethod
	}

	params := url.Values{}
	params.Set("city", city)
	params.Set("country", country)
	params.Set("method", strconv.Itoa(method))
	params.Set("date", date.Format(DateFormat))

	endpoint := fmt.Sprintf("%s/v1/timingsByCity?%s", c.prayerBaseURL, params.Encode())

	var resp timingsResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("%w: prayer API code %d", ErrUnavailable, resp.Code)
	}

	times := make(map[model.PrayerName]time.Time)
	for _, name := range []model.PrayerName{
		model.PrayerFajr,
		model.PrayerSunrise,
		model.PrayerDhuhr,
		model.PrayerAsr,
		model.PrayerMaghrib,
		model.PrayerIsha,
	} {
		raw, exists := resp.Data.Timings[string(name)]
		if !exists {
			return nil, fmt.Errorf("%w: missing timing %s", ErrBadPayload, name)
		}

		at, err := parseTiming(raw, date)
		if err != nil {
			return nil, fmt.Errorf("%w: timing %s: %v", ErrBadPayload, name, err)
		}
		times[name] = at
	}

	location := fmt.Sprintf("%s, %s", city, country)
	return model.NewPrayerSchedule(date, location, times), nil
}

// parseTiming converts an "HH:MM" value into a time on the given date.
// Aladhan may append a timezone suffix such as "05:02 (EDT)".
func parseTiming(raw string, date time.Time) (time.Time, error) {
	if idx := strings.IndexByte(raw, ' '); idx > 0 {
		raw = raw[:idx]
	}

	parsed, err := time.Parse("15:04", raw)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), nil
}

// FetchRandomVerse fetches a random ayah and its English translation.
// A failed translation fetch leaves Translation empty rather than failing
// the whole verse.
func (c *Client) FetchRandomVerse(ctx context.Context) (*model.Verse, error) {
	endpoint := fmt.Sprintf("%s/v1/ayah/random", c.quranBaseURL)

	var resp ayahResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("%w: quran API code %d", ErrUnavailable, resp.Code)
	}

	verse := &model.Verse{
		Number:     resp.Data.Number,
		Arabic:     resp.Data.Text,
		SurahName:  resp.Data.Surah.EnglishName,
		AyahNumber: resp.Data.NumberInSurah,
	}

	translationEndpoint := fmt.Sprintf("%s/v1/ayah/%d/%s", c.quranBaseURL, verse.Number, TranslationEdition)

	var translation ayahResponse
	if err := c.getJSON(ctx, translationEndpoint, &translation); err != nil {
		log.Printf("Translation fetch failed for ayah %d: %v", verse.Number, err)
		return verse, nil
	}
	if translation.Code != http.StatusOK {
		log.Printf("Translation fetch for ayah %d returned code %d", verse.Number, translation.Code)
		return verse, nil
	}

	verse.Translation = translation.Data.Text
	return verse, nil
}

// FetchRandomHadith fetches a random hadith from Sahih al-Bukhari
func (c *Client) FetchRandomHadith(ctx context.Context) (*model.Hadith, error) {
	endpoint := fmt.Sprintf("%s/%s", c.hadithBaseURL, HadithCollection)

	var resp hadithResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	if strings.TrimSpace(resp.Data.HadithEnglish) == "" {
		return nil, fmt.Errorf("%w: empty hadith text", ErrBadPayload)
	}

	return &model.Hadith{
		Text:   strings.TrimSpace(resp.Data.HadithEnglish),
		Source: HadithSourceName,
		Number: hadithNumber(resp.Data.RefNo),
	}, nil
}

// hadithNumber extracts the trailing reference number from values like
// "Sahih al-Bukhari 52" or "Book 2, Hadith 45"
func hadithNumber(refno string) string {
	fields := strings.Fields(strings.TrimSpace(refno))
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimRight(fields[len(fields)-1], ".,;")
}

// getJSON issues a GET request and decodes the JSON body into v
func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: HTTP %d from %s", ErrUnavailable, resp.StatusCode, endpoint)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	return nil
}

package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconRefresh  = "⟳"
)

// Section headers
const (
	HeaderPrayerTimes = "Prayer Times"
	HeaderDailyVerse  = "Daily Verse"
	HeaderDailyHadith = "Daily Hadith"
)

// Placeholder texts shown before data arrives or after a failed fetch
const (
	PlaceholderTime        = "--:--"
	PlaceholderCountdown   = "Time Remaining: --:--:--"
	PlaceholderNext        = "Next Prayer: Calculating..."
	PlaceholderNoSchedule  = "Prayer times unavailable"
	PlaceholderVerse       = "Loading verse..."
	PlaceholderTranslation = "Loading translation..."
	PlaceholderNoVerse     = "Verse unavailable"
	PlaceholderHadith      = "Loading hadith..."
	PlaceholderNoHadith    = "Hadith unavailable"
	PlaceholderReference   = "Surah --:--"
	PlaceholderSource      = "Source: --"
)

// Label formats
const (
	NextPrayerFormat = "Next: %s"
	CountdownFormat  = "Time Remaining: %s"
	TimeDisplay      = "15:04"
)

// Window sizing
const (
	WindowWidth  float32 = 360
	WindowHeight float32 = 540
)

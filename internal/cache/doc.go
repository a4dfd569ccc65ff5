package cache

// Package cache is a small bbolt-backed store holding the last good payload
// for each data kind (schedules, verse, hadith). It backs the offline
// fallback path: a failed fetch keeps serving the previous payload.

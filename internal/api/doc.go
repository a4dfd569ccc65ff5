package api

// Package api contains the HTTP clients for the three public data sources:
// Aladhan prayer timings, alquran.cloud verses, and the Random Hadith
// Generator. All fetches are single-attempt; failures surface as wrapped
// sentinel errors that the refresh service maps to placeholder states.

package refresh

// Package refresh coordinates the periodic data fetches. Each cycle fetches
// the prayer schedule, verse, and hadith independently, caches good payloads,
// and reports per-panel statuses so a single failed endpoint degrades only
// its own panel.

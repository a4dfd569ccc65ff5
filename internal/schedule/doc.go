package schedule

// Package schedule derives countdown state from fetched prayer schedules:
// selecting the nearest future entry, wrapping to the next day's first entry,
// and driving periodic recomputation on a wall-clock tick.

package model

// FetchStatus represents the status of a data fetch for one panel
type FetchStatus string

const (
	// FetchStatusPending means no fetch has been attempted yet
	FetchStatusPending FetchStatus = "Pending"

	// FetchStatusFetching means a fetch is in progress
	FetchStatusFetching FetchStatus = "Fetching"

	// FetchStatusReady means the latest fetch succeeded
	FetchStatusReady FetchStatus = "Ready"

	// FetchStatusStale means the latest fetch failed but cached data is shown
	FetchStatusStale FetchStatus = "Stale"

	// FetchStatusError means the fetch failed and no data is available
	FetchStatusError FetchStatus = "Error"
)

// String returns the string representation of FetchStatus
func (fs FetchStatus) String() string {
	return string(fs)
}

// HasData returns true if data is available for display
func (fs FetchStatus) HasData() bool {
	return fs == FetchStatusReady || fs == FetchStatusStale
}

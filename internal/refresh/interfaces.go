package refresh

import "time"

// PayloadStore defines the cache the service persists payloads to.
type PayloadStore interface {
	Put(kind string, v any) error
	Get(kind string, v any) (time.Time, error)
}

// Refresher defines the interface for the refresh service.
type Refresher interface {
	SetUpdateCallback(func(Snapshot))
	Snapshot() Snapshot
	LoadCached()
	Refresh(params Params)
	StartDaily(params func() Params)
	StopDaily()
}

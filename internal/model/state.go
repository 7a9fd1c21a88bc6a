package model

// FetchState represents the state of a catalog refresh
type FetchState string

const (
	// FetchStateIdle means no refresh has been requested yet
	FetchStateIdle FetchState = "Idle"

	// FetchStateFetching means a refresh is in flight
	FetchStateFetching FetchState = "Fetching"

	// FetchStateLoaded means the last refresh installed a catalog
	FetchStateLoaded FetchState = "Loaded"

	// FetchStateFailed means the last refresh failed
	FetchStateFailed FetchState = "Failed"
)

// String returns the string representation of FetchState
func (fs FetchState) String() string {
	return string(fs)
}

// InFlight returns true while a refresh is outstanding
func (fs FetchState) InFlight() bool {
	return fs == FetchStateFetching
}

// Settled returns true once a refresh has produced a result, good or bad
func (fs FetchState) Settled() bool {
	return fs == FetchStateLoaded || fs == FetchStateFailed
}

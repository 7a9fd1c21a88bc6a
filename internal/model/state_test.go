package model

import "testing"

func TestFetchState_InFlight(t *testing.T) {
	tests := []struct {
		state    FetchState
		expected bool
	}{
		{FetchStateIdle, false},
		{FetchStateFetching, true},
		{FetchStateLoaded, false},
		{FetchStateFailed, false},
	}

	for _, test := range tests {
		result := test.state.InFlight()
		if result != test.expected {
			t.Errorf("FetchState(%s).InFlight() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestFetchState_Settled(t *testing.T) {
	tests := []struct {
		state    FetchState
		expected bool
	}{
		{FetchStateIdle, false},
		{FetchStateFetching, false},
		{FetchStateLoaded, true},
		{FetchStateFailed, true},
	}

	for _, test := range tests {
		result := test.state.Settled()
		if result != test.expected {
			t.Errorf("FetchState(%s).Settled() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestFetchState_String(t *testing.T) {
	if FetchStateFetching.String() != "Fetching" {
		t.Errorf("FetchState.String() = %s, expected Fetching", FetchStateFetching.String())
	}
}

package magnet

// Package magnet decomposes magnet URIs into the components the info view
// cares about: announce trackers (tr) and web seeds (ws).

import (
	"net/url"
	"strings"
)

// Query keys recognized in a magnet URI
const (
	TrackerKey = "tr"
	WebSeedKey = "ws"
)

// Info holds the tracker and web-seed lists of a magnet URI, in the order
// they appear in the query string.
type Info struct {
	Trackers []string
	WebSeeds []string
}

// Parse extracts trackers and web seeds from a magnet URI. Unrecognized keys
// are ignored and malformed input yields an empty Info; display code never has
// to handle a parse failure.
func Parse(uri string) Info {
	var info Info

	u, err := url.Parse(uri)
	if err != nil {
		return info
	}

	// url.Values loses ordering across keys, so walk the raw query to keep
	// tracker and web-seed lists in document order.
	for _, pair := range strings.Split(u.RawQuery, "&") {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		decoded, err := url.QueryUnescape(value)
		if err != nil {
			continue
		}
		switch key {
		case TrackerKey:
			info.Trackers = append(info.Trackers, decoded)
		case WebSeedKey:
			info.WebSeeds = append(info.WebSeeds, decoded)
		}
	}

	return info
}

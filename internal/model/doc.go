package model

// Package model defines domain data structures shared by all front-ends: the
// upload catalog, its records, fetch state enums, and the human-readable size
// normalization used for size sorting. Structures are designed for direct
// binding in the UI and JSON decoding from the remote database.

package catalog

// Package catalog implements the core catalog engine: fetching the uploads
// document from the configured URL, holding the active in-memory snapshot,
// and the query operations (search, size sort, lookup) shared by every
// front-end. A refresh atomically replaces the visible snapshot so readers
// never observe a partially installed catalog.

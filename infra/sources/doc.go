package sources

// Package sources implements the HTTP clients for the two outage-data
// providers and the extraction of their payloads into schedule sets.
// A failed fetch of one source is tolerated by the pipeline; only both
// sources failing aborts a run.

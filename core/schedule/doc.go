package schedule

// Package schedule converts raw per-source outage data into canonical
// half-hour timelines, compresses timelines into contiguous periods and
// reconciles the two sources into per-day reports.

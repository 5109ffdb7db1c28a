package model

import "time"

// SlotsPerDay is the number of half-hour slots in one day.
const SlotsPerDay = 48

// Source names attached to rendered blocks so readers know which
// authority produced a schedule.
const (
	SourceGithub = "outage-data-ua"
	SourceYasno  = "app.yasno.ua"
)

// GroupPrefix is carried by configured group names (e.g. "GPV12.1") and
// stripped for Yasno lookups and display.
const GroupPrefix = "GPV"

// Timeline holds one day of half-hour power availability. Index 0 covers
// [00:00,00:30), index 47 covers [23:30,24:00). True means power available.
type Timeline [SlotsPerDay]bool

// NewTimeline returns a timeline with every slot available, the fail-open
// default for missing data.
func NewTimeline() Timeline {
	var t Timeline
	for i := range t {
		t[i] = true
	}
	return t
}

// Interval is one raw outage window from the provider API, bounds in
// minutes from midnight.
type Interval struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Type  string `json:"type"`
}

// IntervalDefinite marks a confirmed outage. Any other interval type is
// treated as power available.
const IntervalDefinite = "Definite"

// Period is a maximal run of same-status slots within a timeline.
type Period struct {
	StartSlot int
	EndSlot   int
	On        bool
	Hours     float64
}

// DaySchedule is one group's timeline for a single calendar day.
type DaySchedule struct {
	Date  time.Time
	Slots Timeline
}

// DayKey normalizes a date for cross-source matching.
func DayKey(t time.Time) string { return t.Format("2006-01-02") }

// ScheduleSet maps group -> day key -> schedule, scoped to one source.
type ScheduleSet map[string]map[string]DaySchedule

// DayReport is the reconciler output for one rendered block: a timeline
// with the labels of every source that agreed on it.
type DayReport struct {
	Date    time.Time
	Slots   Timeline
	Sources []string
}

package schedule

import (
	"strconv"

	"github.com/outage-ua/gpvbot/core/model"
)

// FromHourCodes builds a timeline from the GitHub source's per-hour status
// codes (hours "1".."24"). Unknown or absent codes resolve to available on
// both halves; uncertain outages (maybe/mfirst/msecond) are treated as
// available as well.
func FromHourCodes(codes map[string]string) model.Timeline {
	var t model.Timeline
	for hour := 1; hour <= 24; hour++ {
		status, ok := codes[strconv.Itoa(hour)]
		if !ok {
			status = "yes"
		}
		first, second := true, true
		switch status {
		case "no":
			first, second = false, false
		case "first":
			first = false
		case "second":
			second = false
		}
		t[(hour-1)*2] = first
		t[(hour-1)*2+1] = second
	}
	return t
}

// FromIntervals builds a timeline from the provider API's outage intervals.
// Only Definite intervals mark slots unavailable; later intervals overwrite
// earlier ones for the same slot. Intervals ending past 24:00 are clamped.
func FromIntervals(intervals []model.Interval) model.Timeline {
	t := model.NewTimeline()
	for _, iv := range intervals {
		start := iv.Start / 30
		end := iv.End / 30
		if end > model.SlotsPerDay {
			end = model.SlotsPerDay
		}
		on := iv.Type != model.IntervalDefinite
		for i := start; i < end; i++ {
			if i < 0 {
				continue
			}
			t[i] = on
		}
	}
	return t
}

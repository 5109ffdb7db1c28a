package schedule

import "github.com/outage-ua/gpvbot/core/model"

// Periods compresses a timeline into ordered, gapless status periods.
// A uniform timeline yields a single period spanning the whole day.
func Periods(t model.Timeline) []model.Period {
	var periods []model.Period
	status := t[0]
	start := 0
	for i := 1; i < model.SlotsPerDay; i++ {
		if t[i] == status {
			continue
		}
		periods = append(periods, model.Period{
			StartSlot: start,
			EndSlot:   i,
			On:        status,
			Hours:     float64(i-start) * 0.5,
		})
		status = t[i]
		start = i
	}
	periods = append(periods, model.Period{
		StartSlot: start,
		EndSlot:   model.SlotsPerDay,
		On:        status,
		Hours:     float64(model.SlotsPerDay-start) * 0.5,
	})
	return periods
}

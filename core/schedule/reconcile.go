package schedule

import (
	"sort"

	"github.com/outage-ua/gpvbot/core/model"
)

// maxDaysPerGroup limits output to the two earliest dates a group has
// across both sources.
const maxDaysPerGroup = 2

// ReconcileGroup merges one group's schedules from the GitHub source (a)
// and the Yasno source (b) into rendered-day reports. When both sources
// cover a date and agree slot-for-slot a single report carries both
// labels; when they disagree two reports are emitted, GitHub first. A
// date covered by neither source is skipped.
func ReconcileGroup(a, b map[string]model.DaySchedule) []model.DayReport {
	keys := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		keys[k] = struct{}{}
	}
	for k := range b {
		keys[k] = struct{}{}
	}
	if len(keys) == 0 {
		return nil
	}

	dates := make([]string, 0, len(keys))
	for k := range keys {
		dates = append(dates, k)
	}
	sort.Strings(dates)
	if len(dates) > maxDaysPerGroup {
		dates = dates[:maxDaysPerGroup]
	}

	var reports []model.DayReport
	for _, key := range dates {
		ga, okA := a[key]
		yb, okB := b[key]
		switch {
		case okA && okB:
			if ga.Slots == yb.Slots {
				reports = append(reports, model.DayReport{
					Date:    ga.Date,
					Slots:   ga.Slots,
					Sources: []string{model.SourceGithub, model.SourceYasno},
				})
			} else {
				reports = append(reports,
					model.DayReport{Date: ga.Date, Slots: ga.Slots, Sources: []string{model.SourceGithub}},
					model.DayReport{Date: yb.Date, Slots: yb.Slots, Sources: []string{model.SourceYasno}},
				)
			}
		case okA:
			reports = append(reports, model.DayReport{Date: ga.Date, Slots: ga.Slots, Sources: []string{model.SourceGithub}})
		case okB:
			reports = append(reports, model.DayReport{Date: yb.Date, Slots: yb.Slots, Sources: []string{model.SourceYasno}})
		}
	}
	return reports
}

package render

import (
	"github.com/outage-ua/gpvbot/core/model"
	"github.com/outage-ua/gpvbot/core/schedule"
)

// Full reconciles both sources and renders the complete message for the
// configured groups, in order. Groups without any report are omitted;
// ok=false means no group produced content.
func Full(groups []string, github, yasno model.ScheduleSet) (string, bool) {
	var blocks []string
	for _, group := range groups {
		reports := schedule.ReconcileGroup(github[group], yasno[group])
		var days []string
		for _, rep := range reports {
			days = append(days, Day(rep, schedule.Periods(rep.Slots)))
		}
		if block, ok := Group(group, days); ok {
			blocks = append(blocks, block)
		}
	}
	return Message(blocks)
}

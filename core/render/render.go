package render

// Package render formats reconciled day reports into the Ukrainian
// delivery message.

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/outage-ua/gpvbot/core/model"
)

// daySeparator joins the day blocks inside one group.
const daySeparator = "\n\n-------------------------------------\n"

// GroupSeparator joins group blocks. Delivery channels split oversized
// messages on this boundary, so blocks are never cut mid-group.
const GroupSeparator = "\n\n\n"

var weekdaysUA = map[time.Weekday]string{
	time.Monday:    "Понеділок",
	time.Tuesday:   "Вівторок",
	time.Wednesday: "Середа",
	time.Thursday:  "Четвер",
	time.Friday:    "П'ятниця",
	time.Saturday:  "Субота",
	time.Sunday:    "Неділя",
}

// FormatHours renders a duration with Ukrainian numeral agreement.
// Half-hour fractions always take the fractional plural form.
func FormatHours(hours float64) string {
	if hours != float64(int(hours)) {
		return strconv.FormatFloat(hours, 'f', -1, 64) + " години"
	}
	h := int(hours)
	switch {
	case h%10 == 1 && h%100 != 11:
		return strconv.Itoa(h) + " година"
	case h%10 >= 2 && h%10 <= 4 && (h%100 < 12 || h%100 > 14):
		return strconv.Itoa(h) + " години"
	default:
		return strconv.Itoa(h) + " годин"
	}
}

// FormatSlotTime converts a slot index (0..48) to clock time, with 24:00
// as the end-of-day label.
func FormatSlotTime(slot int) string {
	minutes := slot * 30
	h := minutes / 60
	m := minutes % 60
	if h == 24 {
		return "24:00"
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// Day renders one report: header with date, weekday and source labels,
// the period lines and the on/off totals.
func Day(rep model.DayReport, periods []model.Period) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🗓 Графік відключень на %s (%s) [%s]:\n",
		rep.Date.Format("02.01"), weekdaysUA[rep.Date.Weekday()], strings.Join(rep.Sources, ", "))
	b.WriteString("\n")

	totalOn, totalOff := 0.0, 0.0
	for _, p := range periods {
		var glyph, status string
		if p.On {
			glyph = "🔋"
			status = fmt.Sprintf("(%s Світло є)", FormatHours(p.Hours))
			totalOn += p.Hours
		} else {
			glyph = "🪫"
			status = fmt.Sprintf("(Світла нема %s)", FormatHours(p.Hours))
			totalOff += p.Hours
		}
		fmt.Fprintf(&b, "%s%s - %s %s\n", glyph, FormatSlotTime(p.StartSlot), FormatSlotTime(p.EndSlot), status)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Світло є %s\n", FormatHours(totalOn))
	fmt.Fprintf(&b, "Світла нема %s", FormatHours(totalOff))
	return b.String()
}

// Group renders a decorated group header followed by its day blocks.
// Returns ok=false when the group has no reports.
func Group(group string, dayBlocks []string) (string, bool) {
	if len(dayBlocks) == 0 {
		return "", false
	}
	num := strings.TrimPrefix(group, model.GroupPrefix)
	header := fmt.Sprintf("============ група %s ============", num)
	return header + "\n" + strings.Join(dayBlocks, daySeparator), true
}

// Message joins group blocks in order. ok=false means nothing to deliver.
func Message(groupBlocks []string) (string, bool) {
	if len(groupBlocks) == 0 {
		return "", false
	}
	return strings.Join(groupBlocks, GroupSeparator), true
}

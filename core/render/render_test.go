package render

import (
	"strings"
	"testing"
	"time"

	"github.com/outage-ua/gpvbot/core/model"
	"github.com/outage-ua/gpvbot/core/schedule"
)

func TestFormatHours(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{1, "1 година"},
		{21, "21 година"},
		{2, "2 години"},
		{3, "3 години"},
		{4, "4 години"},
		{5, "5 годин"},
		{0, "0 годин"},
		{11, "11 годин"},
		{12, "12 годин"},
		{14, "14 годин"},
		{1.5, "1.5 години"},
		{0.5, "0.5 години"},
		{23.5, "23.5 години"},
	}
	for _, c := range cases {
		if got := FormatHours(c.hours); got != c.want {
			t.Fatalf("FormatHours(%v) = %q, want %q", c.hours, got, c.want)
		}
	}
}

func TestFormatSlotTime(t *testing.T) {
	cases := map[int]string{0: "00:00", 1: "00:30", 13: "06:30", 47: "23:30", 48: "24:00"}
	for slot, want := range cases {
		if got := FormatSlotTime(slot); got != want {
			t.Fatalf("FormatSlotTime(%d) = %q, want %q", slot, got, want)
		}
	}
}

func TestDayBlock(t *testing.T) {
	tl := schedule.FromHourCodes(map[string]string{"3": "no", "4": "first"})
	rep := model.DayReport{
		Date:    time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), // Monday
		Slots:   tl,
		Sources: []string{model.SourceGithub, model.SourceYasno},
	}
	got := Day(rep, schedule.Periods(tl))
	want := strings.Join([]string{
		"🗓 Графік відключень на 05.01 (Понеділок) [outage-data-ua, app.yasno.ua]:",
		"",
		"🔋00:00 - 02:00 (2 години Світло є)",
		"🪫02:00 - 03:30 (Світла нема 1.5 години)",
		"🔋03:30 - 24:00 (20.5 години Світло є)",
		"",
		"Світло є 22.5 години",
		"Світла нема 1.5 години",
	}, "\n")
	if got != want {
		t.Fatalf("day block mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestGroupBlockStripsPrefix(t *testing.T) {
	block, ok := Group("GPV12.1", []string{"day-one", "day-two"})
	if !ok {
		t.Fatalf("expected a block")
	}
	if !strings.HasPrefix(block, "============ група 12.1 ============\n") {
		t.Fatalf("bad header: %q", block)
	}
	if !strings.Contains(block, "day-one\n\n-------------------------------------\nday-two") {
		t.Fatalf("days not joined by separator: %q", block)
	}
}

func TestGroupBlockEmpty(t *testing.T) {
	if _, ok := Group("GPV12.1", nil); ok {
		t.Fatalf("empty group must yield no block")
	}
}

func TestMessageSentinel(t *testing.T) {
	if _, ok := Message(nil); ok {
		t.Fatalf("no blocks must yield no message")
	}
	msg, ok := Message([]string{"a", "b"})
	if !ok || msg != "a\n\n\nb" {
		t.Fatalf("bad message %q", msg)
	}
}

func TestFullOmitsEmptyGroups(t *testing.T) {
	date := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	github := model.ScheduleSet{
		"GPV12.1": {"2026-01-05": {Date: date, Slots: model.NewTimeline()}},
	}
	msg, ok := Full([]string{"GPV12.1", "GPV18.1"}, github, model.ScheduleSet{})
	if !ok {
		t.Fatalf("expected a message")
	}
	if strings.Contains(msg, "група 18.1") {
		t.Fatalf("empty group rendered: %q", msg)
	}
	if !strings.Contains(msg, "група 12.1") {
		t.Fatalf("populated group missing: %q", msg)
	}

	if _, ok := Full([]string{"GPV18.1"}, model.ScheduleSet{}, model.ScheduleSet{}); ok {
		t.Fatalf("expected the no-message sentinel")
	}
}

package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/outage-ua/gpvbot/core/model"
	"github.com/outage-ua/gpvbot/core/schedule"
)

const defaultYasnoBaseURL = "https://app.yasno.ua/api/blackout-service/public/shutdowns"

// YasnoConfig configures the planned-outages API client.
type YasnoConfig struct {
	RegionID       string `json:"region_id"`
	DSOID          string `json:"dso_id"`
	BaseURL        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// SetDefaults applies sane defaults.
func (c *YasnoConfig) SetDefaults() {
	if c.RegionID == "" {
		c.RegionID = "25"
	}
	if c.DSOID == "" {
		c.DSOID = "902"
	}
	if c.BaseURL == "" {
		c.BaseURL = defaultYasnoBaseURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
}

// YasnoDay is one day entry: an ISO date and the outage intervals.
type YasnoDay struct {
	Date  string           `json:"date"`
	Slots []model.Interval `json:"slots"`
}

// YasnoGroup holds the two day entries the API publishes per group.
type YasnoGroup struct {
	Today    *YasnoDay `json:"today"`
	Tomorrow *YasnoDay `json:"tomorrow"`
}

// YasnoPayload is the decoded API response keyed by group id (without
// the GPV prefix). Raw keeps the original bytes for fingerprinting.
type YasnoPayload struct {
	Groups map[string]YasnoGroup
	Raw    json.RawMessage
}

// YasnoClient fetches planned outages for one region and DSO.
type YasnoClient struct {
	cfg  YasnoConfig
	http *http.Client
}

// NewYasnoClient builds a client from the configuration.
func NewYasnoClient(cfg YasnoConfig) *YasnoClient {
	cfg.SetDefaults()
	return &YasnoClient{
		cfg:  cfg,
		http: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

// Fetch retrieves and decodes the planned-outages response.
func (c *YasnoClient) Fetch(ctx context.Context) (*YasnoPayload, error) {
	url := fmt.Sprintf("%s/regions/%s/dsos/%s/planned-outages", c.cfg.BaseURL, c.cfg.RegionID, c.cfg.DSOID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	// The API rejects requests without a browser-like User-Agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	payload := &YasnoPayload{Raw: body}
	if err := json.Unmarshal(body, &payload.Groups); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload, nil
}

// Schedules extracts per-group day schedules. Configured group names
// carry the GPV prefix, which is stripped for the payload lookup. Days
// with a missing or unparseable date are skipped.
func (p *YasnoPayload) Schedules(groups []string) model.ScheduleSet {
	result := model.ScheduleSet{}
	if p == nil || len(p.Groups) == 0 {
		return result
	}
	for _, group := range groups {
		g, ok := p.Groups[strings.TrimPrefix(group, model.GroupPrefix)]
		if !ok {
			continue
		}
		result[group] = map[string]model.DaySchedule{}
		for _, day := range []*YasnoDay{g.Today, g.Tomorrow} {
			if day == nil || day.Date == "" {
				continue
			}
			date, err := parseYasnoDate(day.Date)
			if err != nil {
				continue
			}
			result[group][model.DayKey(date)] = model.DaySchedule{
				Date:  date,
				Slots: schedule.FromIntervals(day.Slots),
			}
		}
	}
	return result
}

// parseYasnoDate parses an ISO-8601 datetime, ignoring any UTC offset:
// the published date is a calendar day, not an instant.
func parseYasnoDate(s string) (time.Time, error) {
	if len(s) > 19 {
		s = s[:19]
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

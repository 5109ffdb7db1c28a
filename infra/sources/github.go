package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/outage-ua/gpvbot/core/model"
	"github.com/outage-ua/gpvbot/core/schedule"
)

const defaultGithubBaseURL = "https://raw.githubusercontent.com/Baskerville42/outage-data-ua/main"

// GithubConfig configures the outage-data-ua mirror client.
type GithubConfig struct {
	Region         string `json:"region"`
	BaseURL        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// SetDefaults applies sane defaults.
func (c *GithubConfig) SetDefaults() {
	if c.Region == "" {
		c.Region = "kyiv"
	}
	if c.BaseURL == "" {
		c.BaseURL = defaultGithubBaseURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
}

// GithubPayload mirrors the region JSON file: fact.data maps a day
// timestamp to per-group hour codes, meta carries the mirror's own
// content-change token.
type GithubPayload struct {
	Fact struct {
		Data map[string]map[string]map[string]string `json:"data"`
	} `json:"fact"`
	Meta struct {
		ContentHash string `json:"contentHash"`
	} `json:"meta"`
}

// GithubClient fetches the region file from the outage-data-ua mirror.
type GithubClient struct {
	cfg  GithubConfig
	http *http.Client
}

// NewGithubClient builds a client from the configuration.
func NewGithubClient(cfg GithubConfig) *GithubClient {
	cfg.SetDefaults()
	return &GithubClient{
		cfg:  cfg,
		http: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

// Fetch retrieves and decodes the region file.
func (c *GithubClient) Fetch(ctx context.Context) (*GithubPayload, error) {
	url := fmt.Sprintf("%s/data/%s.json", c.cfg.BaseURL, c.cfg.Region)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}
	var payload GithubPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &payload, nil
}

// Schedules extracts per-group day schedules for the earliest two day
// timestamps in the payload. Groups or days without data are skipped.
func (p *GithubPayload) Schedules(groups []string) model.ScheduleSet {
	result := model.ScheduleSet{}
	if p == nil || len(p.Fact.Data) == 0 {
		return result
	}

	days := make([]string, 0, len(p.Fact.Data))
	for ts := range p.Fact.Data {
		if _, err := strconv.ParseInt(ts, 10, 64); err != nil {
			// A malformed key must not occupy one of the two day slots.
			continue
		}
		days = append(days, ts)
	}
	sort.Slice(days, func(i, j int) bool {
		a, _ := strconv.ParseInt(days[i], 10, 64)
		b, _ := strconv.ParseInt(days[j], 10, 64)
		return a < b
	})
	if len(days) > 2 {
		days = days[:2]
	}

	for _, group := range groups {
		result[group] = map[string]model.DaySchedule{}
		for _, ts := range days {
			codes, ok := p.Fact.Data[ts][group]
			if !ok || len(codes) == 0 {
				continue
			}
			sec, err := strconv.ParseInt(ts, 10, 64)
			if err != nil {
				continue
			}
			date := time.Unix(sec, 0).In(kyivLocation)
			result[group][model.DayKey(date)] = model.DaySchedule{
				Date:  date,
				Slots: schedule.FromHourCodes(codes),
			}
		}
	}
	return result
}

// Schedules are published for the Kyiv grid; resolve day timestamps there.
var kyivLocation = func() *time.Location {
	for _, name := range []string{"Europe/Kyiv", "Europe/Kiev"} {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	return time.Local
}()

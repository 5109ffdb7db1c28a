package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/outage-ua/gpvbot/core/render"
	"github.com/outage-ua/gpvbot/infra/logger"
)

const defaultTelegramBaseURL = "https://api.telegram.org"

// telegramMaxLength is the message size above which the report is split
// on the group separator so blocks are never cut mid-group.
const telegramMaxLength = 4000

// TelegramConfig configures the Telegram channel. Token and ChatID are
// usually supplied via environment overrides; both empty disables the
// notifier.
type TelegramConfig struct {
	Token          string `json:"token"`
	ChatID         string `json:"chat_id"`
	BaseURL        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// SetDefaults applies sane defaults.
func (c *TelegramConfig) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = defaultTelegramBaseURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
}

// Enabled reports whether credentials are configured.
func (c TelegramConfig) Enabled() bool { return c.Token != "" && c.ChatID != "" }

// Telegram posts messages to a channel via the Bot API.
type Telegram struct {
	cfg  TelegramConfig
	http *http.Client
	log  logger.Logger
}

// NewTelegram builds the notifier from the configuration.
func NewTelegram(cfg TelegramConfig, log logger.Logger) *Telegram {
	cfg.SetDefaults()
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Telegram{
		cfg:  cfg,
		http: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		log:  log,
	}
}

// Send delivers the message, splitting oversized reports on the group
// separator. Any part failing fails the whole send.
func (t *Telegram) Send(ctx context.Context, message string) error {
	parts := []string{message}
	if len(message) > telegramMaxLength {
		parts = strings.Split(message, render.GroupSeparator)
	}
	for _, part := range parts {
		if err := t.sendPart(ctx, part); err != nil {
			return err
		}
		t.log.Infof("telegram message part delivered (%d bytes)", len(part))
	}
	return nil
}

func (t *Telegram) sendPart(ctx context.Context, text string) error {
	payload, err := json.Marshal(map[string]string{
		"chat_id": t.cfg.ChatID,
		"text":    text,
	})
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/bot%s/sendMessage", t.cfg.BaseURL, t.cfg.Token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.http.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}
	return nil
}

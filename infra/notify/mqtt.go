package notify

import (
	"context"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/outage-ua/gpvbot/infra/logger"
)

// MQTTConfig configures the optional MQTT channel, typically consumed by
// a home-automation setup subscribed to the outage topic.
type MQTTConfig struct {
	Enabled  bool   `json:"enabled"`
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Topic    string `json:"topic"`
	QoS      byte   `json:"qos"`
	Retain   bool   `json:"retain"`
}

// SetDefaults applies sane defaults.
func (c *MQTTConfig) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "gpvbot"
	}
	if c.Topic == "" {
		c.Topic = "gpvbot/schedule"
	}
}

// MQTT publishes the rendered report to a broker topic. The connection
// is short-lived: one connect, one publish, disconnect, matching the
// one-shot run model.
type MQTT struct {
	cfg MQTTConfig
	log logger.Logger
}

var newMQTTClient = func(opts *paho.ClientOptions) paho.Client {
	return paho.NewClient(opts)
}

// NewMQTT builds the notifier from the configuration.
func NewMQTT(cfg MQTTConfig, log logger.Logger) *MQTT {
	cfg.SetDefaults()
	if log == nil {
		log = logger.NopLogger{}
	}
	return &MQTT{cfg: cfg, log: log}
}

func (m *MQTT) Send(ctx context.Context, message string) error {
	opts := paho.NewClientOptions().AddBroker(m.cfg.Broker).SetClientID(m.cfg.ClientID)
	if m.cfg.Username != "" {
		opts.SetUsername(m.cfg.Username)
	}
	if m.cfg.Password != "" {
		opts.SetPassword(m.cfg.Password)
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		m.log.Errorf("mqtt connection lost: %v", err)
	}

	client := newMQTTClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt connect: %w", token.Error())
	}
	defer client.Disconnect(250)

	token := client.Publish(m.cfg.Topic, m.cfg.QoS, m.cfg.Retain, message)
	if !token.WaitTimeout(publishTimeout(ctx)) {
		return fmt.Errorf("mqtt publish to %s timed out", m.cfg.Topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt publish: %w", err)
	}
	m.log.Infof("published schedule to %s", m.cfg.Topic)
	return nil
}

func publishTimeout(ctx context.Context) time.Duration {
	if deadline, ok := ctx.Deadline(); ok {
		if d := time.Until(deadline); d > 0 {
			return d
		}
	}
	return 30 * time.Second
}

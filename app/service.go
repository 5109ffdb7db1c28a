package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/outage-ua/gpvbot/config"
	"github.com/outage-ua/gpvbot/core/fingerprint"
	coremetrics "github.com/outage-ua/gpvbot/core/metrics"
	"github.com/outage-ua/gpvbot/core/model"
	"github.com/outage-ua/gpvbot/core/render"
	"github.com/outage-ua/gpvbot/infra/logger"
	"github.com/outage-ua/gpvbot/infra/metrics"
	"github.com/outage-ua/gpvbot/infra/notify"
	"github.com/outage-ua/gpvbot/infra/sources"
	"github.com/outage-ua/gpvbot/infra/state"
)

// ErrNoSources means both fetches failed and the run has nothing to work
// with.
var ErrNoSources = errors.New("no source data available")

// GithubSource fetches the outage-data-ua payload.
type GithubSource interface {
	Fetch(ctx context.Context) (*sources.GithubPayload, error)
}

// YasnoSource fetches the planned-outages payload.
type YasnoSource interface {
	Fetch(ctx context.Context) (*sources.YasnoPayload, error)
}

// Service runs the fetch-reconcile-render-deliver pipeline once per
// invocation. Everything is strictly sequential; each stage builds a new
// structure consumed by the next.
type Service struct {
	cfg      *config.Config
	log      logger.Logger
	github   GithubSource
	yasno    YasnoSource
	notifier notify.Notifier
	store    state.Store
	sink     coremetrics.Sink
}

// New wires the service from the configuration.
func New(cfg *config.Config) *Service {
	logg := logger.New("service")

	var notifiers []notify.Notifier
	if cfg.Telegram.Enabled() {
		notifiers = append(notifiers, notify.NewTelegram(cfg.Telegram, logger.New("telegram")))
	}
	if cfg.MQTT.Enabled {
		notifiers = append(notifiers, notify.NewMQTT(cfg.MQTT, logger.New("mqtt")))
	}
	var notifier notify.Notifier
	switch len(notifiers) {
	case 0:
	case 1:
		notifier = notifiers[0]
	default:
		notifier = notify.NewMulti(notifiers...)
	}

	return &Service{
		cfg:      cfg,
		log:      logg,
		github:   sources.NewGithubClient(cfg.Github),
		yasno:    sources.NewYasnoClient(cfg.Yasno),
		notifier: notifier,
		store:    state.NewFileStore(cfg.CacheFile),
		sink:     metrics.NewSink(cfg.Metrics),
	}
}

// Run executes one pipeline pass: fetch both sources (serially, each
// failure tolerated), gate on the change fingerprint, reconcile, render
// and deliver. The fingerprint is persisted only after every notifier
// succeeded, so a failed delivery retries on the next run.
func (s *Service) Run(ctx context.Context) error {
	start := time.Now()
	log := s.log.WithField("run_id", uuid.NewString())
	defer func() {
		if err := s.sink.Close(); err != nil {
			log.Warnf("metrics flush: %v", err)
		}
	}()

	github, yasno := s.fetch(ctx, log)
	if github == nil && yasno == nil {
		s.sink.RecordRun(coremetrics.OutcomeFetchFailed, time.Since(start).Seconds())
		return ErrNoSources
	}

	githubHash := ""
	if github != nil {
		githubHash = github.Meta.ContentHash
	}
	var yasnoRaw json.RawMessage
	if yasno != nil {
		yasnoRaw = yasno.Raw
	}
	fp, err := fingerprint.Combined(githubHash, yasnoRaw)
	if err != nil {
		return fmt.Errorf("fingerprint: %w", err)
	}

	prev, err := s.store.Load()
	if err != nil {
		// Treat an unreadable fingerprint as changed data.
		log.Warnf("load fingerprint: %v", err)
	}
	if prev == fp {
		log.Infof("no updates detected")
		s.sink.RecordRun(coremetrics.OutcomeUnchanged, time.Since(start).Seconds())
		return nil
	}

	msg, ok := render.Full(s.cfg.Groups, github.Schedules(s.cfg.Groups), yasno.Schedules(s.cfg.Groups))
	if !ok {
		log.Infof("no renderable content for groups %v", s.cfg.Groups)
		s.sink.RecordRun(coremetrics.OutcomeEmpty, time.Since(start).Seconds())
		return nil
	}

	if s.notifier == nil {
		log.Warnf("no delivery channel configured, fingerprint not persisted")
		s.sink.RecordRun(coremetrics.OutcomeNoChannel, time.Since(start).Seconds())
		return nil
	}
	if err := s.notifier.Send(ctx, msg); err != nil {
		s.sink.RecordRun(coremetrics.OutcomeSendFailed, time.Since(start).Seconds())
		return fmt.Errorf("deliver message: %w", err)
	}
	if err := s.store.Save(fp); err != nil {
		return fmt.Errorf("persist fingerprint: %w", err)
	}
	log.Infof("message delivered, fingerprint %.16s saved", fp)
	s.sink.RecordRun(coremetrics.OutcomeSent, time.Since(start).Seconds())
	return nil
}

// Preview fetches and renders the report without delivering it or
// touching the fingerprint store.
func (s *Service) Preview(ctx context.Context) (string, error) {
	github, yasno := s.fetch(ctx, s.log)
	if github == nil && yasno == nil {
		return "", ErrNoSources
	}
	msg, ok := render.Full(s.cfg.Groups, github.Schedules(s.cfg.Groups), yasno.Schedules(s.cfg.Groups))
	if !ok {
		return "", nil
	}
	return msg, nil
}

// fetch retrieves both sources sequentially. A failed source is logged
// and tolerated.
func (s *Service) fetch(ctx context.Context, log logger.Logger) (*sources.GithubPayload, *sources.YasnoPayload) {
	github, err := s.github.Fetch(ctx)
	s.sink.RecordFetch(model.SourceGithub, err == nil)
	if err != nil {
		log.Errorf("fetch %s: %v", model.SourceGithub, err)
		github = nil
	}

	yasno, err := s.yasno.Fetch(ctx)
	s.sink.RecordFetch(model.SourceYasno, err == nil)
	if err != nil {
		log.Errorf("fetch %s: %v", model.SourceYasno, err)
		yasno = nil
	}
	return github, yasno
}

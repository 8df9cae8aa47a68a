package notify

import (
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/goccy/go-json"
	"github.com/masjidia/jadwal-sholat-service/internal/retryutil"
	"github.com/rs/zerolog/log"
)

// Event types the notification collaborator subscribes to. Both are
// edge-triggered: one event per transition, never one per tick.
const (
	EventPrayerCurrent = "prayer_current"
	EventPhaseIqamah   = "phase_iqamah"
)

// Event is a single prayer transition, published when a prayer enters its
// window or reaches iqamah.
type Event struct {
	Prayer    string `json:"prayer"`
	Type      string `json:"type"`
	CivilDate string `json:"civil_date"`
	ClockTime string `json:"clock_time"`
}

// Publisher pushes deduplicated transition events to an MQTT topic where
// the external sound/alert component listens. A nil broker degrades to
// log-only, which keeps single-binary deployments working.
type Publisher struct {
	broker      mqtt.Client
	topicPrefix string
	deduper     *AlertDeduper
}

func NewPublisher(broker mqtt.Client, topicPrefix string) *Publisher {
	return &Publisher{
		broker:      broker,
		topicPrefix: topicPrefix,
		deduper:     NewAlertDeduper(),
	}
}

// Topic returns the MQTT topic an event type is published on.
func (p *Publisher) Topic(eventType string) string {
	return fmt.Sprintf("%s/events/%s", p.topicPrefix, eventType)
}

// Publish emits the event unless it already fired for this prayer, phase,
// and civil date. It returns true when the event was newly fired.
func (p *Publisher) Publish(event Event) bool {
	if !p.deduper.FireOnce(event.Prayer, event.Type, event.CivilDate) {
		return false
	}

	log.Info().
		Str("prayer", event.Prayer).
		Str("type", event.Type).
		Str("clock_time", event.ClockTime).
		Msg("prayer transition")

	if p.broker == nil {
		return true
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal transition event")
		return true
	}

	err = retryutil.RetryWithoutData(func() error {
		token := p.broker.Publish(p.Topic(event.Type), 1, false, payload)
		token.Wait()
		return token.Error()
	})

	if err != nil {
		log.Error().Err(err).Str("topic", p.Topic(event.Type)).Msg("failed to publish transition event")
	}

	return true
}

// Rollover clears dedup state from previous civil dates.
func (p *Publisher) Rollover(civilDate string) {
	p.deduper.Reset(civilDate)
}

package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fleet_maintenance/internal/domain/entities"
	"fleet_maintenance/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// Publisher is the part of *nats.Conn the notification publisher needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSNotificationPublisher publishes notifications as JSON on "<prefix>.<event_type>".
//
// Publishing is non-fatal: failures are logged and never returned, so a broker outage
// never fails the mutation that produced the notification.
type NATSNotificationPublisher struct {
	conn   Publisher
	prefix string
	log    zerolog.Logger
}

var _ interfaces.INotificationPublisher = (*NATSNotificationPublisher)(nil)

func NewNATSNotificationPublisher(conn Publisher, prefix string, log zerolog.Logger) *NATSNotificationPublisher {
	return &NATSNotificationPublisher{
		conn:   conn,
		prefix: prefix,
		log:    log.With().Str("component", "notifications").Logger(),
	}
}

func (p *NATSNotificationPublisher) Publish(_ context.Context, n entities.Notification) {
	data, err := json.Marshal(n)
	if err != nil {
		p.log.Warn().Err(err).Str("event_type", n.EventType).Msg("notification: failed to marshal event")
		return
	}

	subject := p.Subject(n.EventType)
	if err := p.conn.Publish(subject, data); err != nil {
		p.log.Warn().Err(err).
			Str("subject", subject).
			Str("resource_id", n.ResourceID).
			Msg("notification: failed to publish NATS event (non-fatal)")
		return
	}

	p.log.Debug().
		Str("subject", subject).
		Str("resource_id", n.ResourceID).
		Msg("notification: event published")
}

func (p *NATSNotificationPublisher) Subject(eventType string) string {
	if p.prefix == "" {
		return eventType
	}
	return fmt.Sprintf("%s.%s", p.prefix, eventType)
}

// ConnectNATS dials the broker and keeps reconnecting in the background.
func ConnectNATS(url string, log zerolog.Logger) (*nats.Conn, error) {
	log = log.With().Str("component", "nats").Logger()
	return nats.Connect(url,
		nats.Name("fleet-maintenance"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("nats disconnected")
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info().Str("url", c.ConnectedUrl()).Msg("nats reconnected")
		}),
	)
}

// LogNotificationPublisher records notifications in the log when no broker is configured.
type LogNotificationPublisher struct {
	log zerolog.Logger
}

var _ interfaces.INotificationPublisher = (*LogNotificationPublisher)(nil)

func NewLogNotificationPublisher(log zerolog.Logger) *LogNotificationPublisher {
	return &LogNotificationPublisher{log: log.With().Str("component", "notifications").Logger()}
}

func (p *LogNotificationPublisher) Publish(_ context.Context, n entities.Notification) {
	p.log.Info().
		Str("event_type", n.EventType).
		Str("actor_id", n.ActorID).
		Str("work_order_id", n.WorkOrderID).
		Str("resource_type", n.ResourceType).
		Str("resource_id", n.ResourceID).
		Msg("notification")
}

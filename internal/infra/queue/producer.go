package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/alpha-site/internal/entity"
)

// LeadPayload is the message body on q.leads.
type LeadPayload struct {
	Lead       entity.Lead `json:"lead"`
	EnqueuedAt time.Time   `json:"enqueued_at"`
}

// Publisher is the part of *amqp.Channel the producer needs.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	Ch Publisher
}

func NewProducer(ch Publisher) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

// NotifyLead hands the lead to the delivery worker instead of sending inline.
func (p *RabbitMQProducer) NotifyLead(ctx context.Context, lead entity.Lead) error {
	body, err := json.Marshal(LeadPayload{Lead: lead, EnqueuedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("queue: encode lead: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    uuid.NewString(),
			Timestamp:    time.Now().UTC(),
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("queue: publish lead: %w", err)
	}
	return nil
}

package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/alpha-site/internal/entity"
	"github.com/xavierca1/alpha-site/pkg/logging"
)

// LeadSender is the synchronous delivery the worker drives, normally SMTP.
type LeadSender interface {
	NotifyLead(ctx context.Context, lead entity.Lead) error
}

// Consumer is the part of *amqp.Channel the worker needs.
type Consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

type Worker struct {
	Channel Consumer
	Sender  LeadSender
	Logger  *logging.Logger
}

func NewWorker(ch Consumer, sender LeadSender, logger *logging.Logger) *Worker {
	if logger == nil {
		logger = logging.Default()
	}
	return &Worker{
		Channel: ch,
		Sender:  sender,
		Logger:  logger.With("component", "lead_worker"),
	}
}

// Start consumes until ctx is done or the channel closes.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("queue: consume %s: %w", queueName, err)
	}

	w.Logger.Info("lead worker waiting", "queue", queueName)
	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("lead worker stopped")
			return nil
		case d, ok := <-msgs:
			if !ok {
				w.Logger.Warn("lead delivery channel closed")
				return nil
			}
			w.handle(ctx, d)
		}
	}
}

// handle never requeues: a failed lead goes to the DLQ for a human to look at.
func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	var payload LeadPayload
	if err := json.Unmarshal(d.Body, &payload); err != nil {
		w.Logger.Error("invalid lead message", "error", err, "message_id", d.MessageId)
		d.Nack(false, false)
		return
	}

	if err := w.Sender.NotifyLead(ctx, payload.Lead); err != nil {
		w.Logger.Error("queued lead delivery failed", "error", err, "message_id", d.MessageId)
		d.Nack(false, false)
		return
	}

	w.Logger.Info("queued lead delivered", "message_id", d.MessageId, "service_interest", payload.Lead.ServiceInterest)
	d.Ack(false)
}

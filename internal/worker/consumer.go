package worker

import (
	"context"
	"fmt"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// Consumer subscribes the worker to batch-run requests on the bus.
type Consumer struct {
	Subscriber message.Subscriber
	Topic      string
	Worker     *Worker
}

// NewConsumer creates a Consumer.
func NewConsumer(sub message.Subscriber, topic string, w *Worker) *Consumer {
	return &Consumer{Subscriber: sub, Topic: topic, Worker: w}
}

// Start subscribes and consumes in a background goroutine until ctx is
// cancelled. A batch setup failure Nacks the message so the bus
// redelivers it; per-client failures are already absorbed by the
// worker and Ack normally.
func (c *Consumer) Start(ctx context.Context) error {
	messages, err := c.Subscriber.Subscribe(ctx, c.Topic)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", c.Topic, err)
	}

	go func() {
		for msg := range messages {
			if err := c.Worker.Run(msg.Context(), msg.UUID); err != nil {
				log.Printf("[ERROR] batch run failed, requesting redelivery: %v", err)
				msg.Nack()
				continue
			}
			msg.Ack()
		}
	}()

	log.Printf("[INFO] batch consumer subscribed to %s", c.Topic)
	return nil
}

// RequestRun publishes a batch-run request on the bus. The payload
// names the requester for log correlation only.
func RequestRun(pub message.Publisher, topic, requestedBy string) error {
	msg := message.NewMessage(uuid.NewString(), []byte(requestedBy))
	if err := pub.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish batch run: %w", err)
	}
	return nil
}

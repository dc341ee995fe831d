// Package notify publishes best-effort booking notifications. The contract is
// one attempt per event: callers log and discard any error, nothing is
// retried, and a failed publish never fails the enclosing request.
package notify

import (
	"context"       // Context for publish calls
	"encoding/json" // Event payload encoding

	"github.com/ThreeDotsLabs/watermill"                    // Message ids and logging adapter
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka" // Kafka publisher backend
	"github.com/ThreeDotsLabs/watermill/message"            // Publisher interface and messages
	"github.com/sirupsen/logrus"                            // Logrus for structured logging
)

// Notifier publishes a text message to an out-of-band channel
type Notifier interface {
	Publish(ctx context.Context, subject, body string) error
}

// event is the wire payload for a notification
type event struct {
	Subject string `json:"subject"` // Notification subject line
	Message string `json:"message"` // Human-readable notification text
}

// Publisher sends notifications through a watermill message publisher
type Publisher struct {
	pub   message.Publisher // Backend publisher (Kafka in prod, gochannel in tests)
	topic string            // Destination topic
}

// NewPublisher wraps a watermill publisher for the given topic
func NewPublisher(pub message.Publisher, topic string) *Publisher {
	return &Publisher{pub: pub, topic: topic}
}

// Publish sends one notification; no retry on failure
func (p *Publisher) Publish(_ context.Context, subject, body string) error {
	payload, err := json.Marshal(event{Subject: subject, Message: body}) // Encode the event
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload) // Fresh message id per attempt
	msg.Metadata.Set("subject", subject)                    // Subject also travels as metadata
	return p.pub.Publish(p.topic, msg)                      // Single publish attempt
}

// Close shuts down the backend publisher
func (p *Publisher) Close() error {
	return p.pub.Close()
}

// NewKafkaPublisher builds the production Kafka backend
func NewKafkaPublisher(brokers []string) (message.Publisher, error) {
	return kafka.NewPublisher(
		kafka.PublisherConfig{
			Brokers:   brokers,                  // Kafka broker list
			Marshaler: kafka.DefaultMarshaler{}, // Default message marshaling
		},
		watermill.NewStdLogger(false, false), // Quiet watermill logging
	)
}

// LogNotifier writes notifications to the application log only. Used when no
// broker is configured, so local runs keep the booking flow intact.
type LogNotifier struct{}

// Publish logs the notification and always succeeds
func (LogNotifier) Publish(_ context.Context, subject, body string) error {
	logrus.WithField("subject", subject).Info(body) // Log instead of publishing
	return nil
}

// Package service holds the side channels of a page request. The audit
// publisher logs and returns its errors so callers can ignore them without
// interrupting the page.
package service

import (
	"context"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/iavo-ui/internal/model"
	"github.com/iliyamo/iavo-ui/internal/queue"
)

// AuditPublisher publishes profile submit attempts to RabbitMQ, one
// short-lived connection per event.
type AuditPublisher struct {
	URL string
}

func NewAuditPublisher(url string) *AuditPublisher { return &AuditPublisher{URL: url} }

// PublishProfileUpdate sends ev to the profile.update.submitted queue as a
// persistent JSON message.
func (p *AuditPublisher) PublishProfileUpdate(ctx context.Context, ev model.ProfileUpdateEvent) error {
	body, err := queue.EncodeEvent(ev)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	conn, err := amqp.Dial(p.URL)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// durable so messages survive broker restarts
	if _, err := ch.QueueDeclare(queue.ProfileUpdateQueue, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queue.ProfileUpdateQueue, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}

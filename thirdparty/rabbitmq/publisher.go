package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/pickup-inventory/model"
	"github.com/rabbitmq/amqp091-go"
)

const (
	expirationExchange   = "order_expiration_exchange"
	expirationQueue      = "order_expiration_queue"
	expirationRoutingKey = "order_expiration"

	auditExchange = "audit_exchange"
)

// Publisher sends audit events and delayed order expirations. A channel is not
// safe for concurrent publishes, so every publish holds mu.
type Publisher struct {
	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
	now     func() time.Time
}

func dsn(host string, port int, user, password string) string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, err := amqp091.Dial(dsn(host, port, user, password))
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := declareExpiration(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	// audit consumers bind their own queues by action, e.g. "audit.order.*"
	err = channel.ExchangeDeclare(
		auditExchange, // name
		"topic",       // type
		true,          // durable
		false,         // auto-delete
		false,         // internal
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel, now: time.Now}, nil
}

// declareExpiration sets up the delayed exchange and its queue. It needs the
// rabbitmq_delayed_message_exchange plugin on the broker.
func declareExpiration(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		expirationExchange,  // name
		"x-delayed-message", // type
		true,                // durable
		false,               // auto-delete
		false,               // internal
		false,               // no-wait
		amqp091.Table{"x-delayed-type": "direct"}, // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		expirationQueue, // name
		true,            // durable
		false,           // auto-delete
		false,           // exclusive
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		expirationQueue,      // queue name
		expirationRoutingKey, // routing key
		expirationExchange,   // exchange
		false,                // no-wait
		nil,                  // arguments
	)
}

func (p *Publisher) PublishOrderExpiration(ctx context.Context, msg model.OrderExpirationMessage) error {
	if msg.MessageID == "" {
		msg.MessageID = uuid.NewString()
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	delayMs := msg.ExpiresAt.Sub(p.now()).Milliseconds()
	if delayMs < 0 {
		delayMs = 0
	}

	return p.publish(ctx, expirationExchange, expirationRoutingKey, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    msg.MessageID,
		Body:         body,
		Headers: amqp091.Table{
			"x-delay": delayMs,
		},
	})
}

// PublishAuditEvent routes the event as audit.<entity>.<action>.
func (p *Publisher) PublishAuditEvent(ctx context.Context, event model.AuditEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.publish(ctx, auditExchange, AuditRoutingKey(event), amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.ID,
		Timestamp:    event.At,
		Body:         body,
	})
}

func AuditRoutingKey(event model.AuditEvent) string {
	return fmt.Sprintf("audit.%s.%s", event.Entity, event.Action)
}

func (p *Publisher) publish(ctx context.Context, exchange, key string, msg amqp091.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channel.PublishWithContext(
		ctx,
		exchange, // exchange
		key,      // routing key
		false,    // mandatory
		false,    // immediate
		msg,
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

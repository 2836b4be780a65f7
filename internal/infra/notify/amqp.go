package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"grab-service/internal/pkg/errs"
	"grab-service/internal/usecase/shared"

	"github.com/rabbitmq/amqp091-go"
)

const exchangeKind = "topic"

// Publisher sends every notification to a durable topic exchange with the
// event name as routing key.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

func sanitizeAMQPURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	if idx := strings.Index(strings.ToLower(clean), "amqp"); idx > 0 {
		clean = clean[idx:]
	}
	u, err := url.Parse(clean)
	if err != nil {
		return "", errs.Wrap(err, "invalid AMQP URL")
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errs.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}

func NewPublisher(rawURL, exchange string) (*Publisher, error) {
	cleanURL, err := sanitizeAMQPURL(rawURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp091.DialConfig(cleanURL, amqp091.Config{Dial: amqp091.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, errs.Wrap(err, "failed to dial AMQP broker")
	}

	p := &Publisher{conn: conn, exchange: exchange}
	if err := p.reopen(); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return p, nil
}

// reopen replaces the channel and declares the exchange on it. Callers hold mu
// or own p exclusively.
func (p *Publisher) reopen() error {
	ch, err := p.conn.Channel()
	if err != nil {
		return errs.Wrap(err, "failed to open AMQP channel")
	}
	if err := ch.ExchangeDeclare(p.exchange, exchangeKind, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return errs.Wrap(err, "failed to declare exchange")
	}
	if p.channel != nil {
		_ = p.channel.Close()
	}
	p.channel = ch
	return nil
}

func (p *Publisher) Notify(ctx context.Context, n shared.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification")
	}
	msg := amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    n.OccurredAt,
		MessageId:    n.ClaimID.String() + ":" + n.Event,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(ctx, p.exchange, n.Event, false, false, msg)
	if err == nil {
		return nil
	}

	slog.WarnContext(ctx, "publish failed; reopening channel",
		"exchange", p.exchange, "routing_key", n.Event, "error", err.Error())
	if rerr := p.reopen(); rerr != nil {
		return errs.Wrap(err, "failed to publish notification")
	}
	if err := p.channel.PublishWithContext(ctx, p.exchange, n.Event, false, false, msg); err != nil {
		return errs.Wrap(err, "failed to publish notification after reopening channel")
	}
	return nil
}

func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

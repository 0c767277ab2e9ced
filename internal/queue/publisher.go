package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// PublishTimeout 單次發佈的逾時
const PublishTimeout = 5 * time.Second

// Channel 為 *amqp.Channel 會用到的方法，方便測試替換
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher 發佈領域事件
type Publisher interface {
	Publish(ctx context.Context, eventType string, data any) error
	Close() error
}

// Message 是寫入佇列的 JSON 內容
type Message struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

type connection interface {
	Channel() (*amqp.Channel, error)
	Close() error
}

var (
	amqpDial = func(url string) (connection, error) { return amqp.Dial(url) }
	now      = time.Now
)

type AMQPPublisher struct {
	conn  connection
	ch    Channel
	queue string
}

// Connect 連線 RabbitMQ 並宣告持久化佇列
func Connect(url, queue string) (*AMQPPublisher, error) {
	conn, err := amqpDial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	p, err := NewAMQPPublisher(ch, queue)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func NewAMQPPublisher(ch Channel, queue string) (*AMQPPublisher, error) {
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}
	return &AMQPPublisher{ch: ch, queue: queue}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, eventType string, data any) error {
	body, err := json.Marshal(Message{Type: eventType, OccurredAt: now().UTC(), Data: data})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, PublishTimeout)
	defer cancel()

	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         eventType,
		Timestamp:    now(),
		Body:         body,
	}); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Nop 未設定 AMQP_URL 時使用
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }
func (Nop) Close() error                               { return nil }
